package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик игры
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// PlayQuiz возвращает случайный ещё не показанный вопрос
// POST /quizzes {"quiz_category": {"id": 0}, "previous_questions": [1, 2]}
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			handleError(c, fmt.Errorf("%w: Body is empty.", apperrors.ErrBadRequest))
			return
		}
		handleError(c, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		handleError(c, fmt.Errorf("%w: Both \"quiz_category\" and \"previous_questions\" are required.", apperrors.ErrBadRequest))
		return
	}

	// Категория без id не совпадает ни с одним вопросом
	if req.QuizCategory.ID == nil || *req.QuizCategory.ID < 0 {
		c.JSON(http.StatusOK, dto.QuizQuestionResponse{Question: nil})
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), uint(*req.QuizCategory.ID), req.PreviousIDs())
	if err != nil {
		handleError(c, err)
		return
	}

	resp := dto.QuizQuestionResponse{}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
	}
	c.JSON(http.StatusOK, resp)
}
