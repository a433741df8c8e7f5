package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// FlexibleInt принимает как JSON-число, так и строку с числом.
// Фронтенд отправляет значения из <select> строками ("1"), а id из API - числами.
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// CreateOrSearchRequest - тело POST /questions.
// Поля-указатели позволяют отличить отсутствующее поле от пустого значения.
type CreateOrSearchRequest struct {
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *FlexibleInt `json:"category"`
	Difficulty *FlexibleInt `json:"difficulty"`
	SearchTerm *string      `json:"searchTerm"`
}

// QuizCategory - категория, выбранная в режиме игры (id 0 - все категории)
type QuizCategory struct {
	ID   *FlexibleInt `json:"id"`
	Type string       `json:"type,omitempty"`
}

// PlayQuizRequest - тело POST /quizzes
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []FlexibleInt `json:"previous_questions"`
}

// PreviousIDs возвращает показанные id вопросов.
// Неположительные значения пропускаются: с id вопросов они всё равно не совпадут.
func (r *PlayQuizRequest) PreviousIDs() []uint {
	ids := make([]uint, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		if id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// CategoriesResponse - ответ GET /categories
type CategoriesResponse struct {
	Categories map[string]string `json:"categories"`
}

// QuestionListResponse - страница вопросов.
// Categories заполняется только для GET /questions.
type QuestionListResponse struct {
	Questions       []entity.FormattedQuestion `json:"questions"`
	Categories      map[string]string          `json:"categories,omitempty"`
	CurrentCategory string                     `json:"currentCategory"`
	TotalQuestions  int                        `json:"totalQuestions"`
}

// CreatedResponse - ответ на создание вопроса
type CreatedResponse struct {
	Created uint `json:"created"`
}

// DeletedResponse - ответ на удаление вопроса
type DeletedResponse struct {
	Deleted uint `json:"deleted"`
}

// QuizQuestionResponse - ответ POST /quizzes; Question == nil, когда вопросы закончились
type QuizQuestionResponse struct {
	Question *entity.FormattedQuestion `json:"question"`
}

// ErrorResponse - единый формат ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создаёт тело ошибки с кодом code
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: code, Message: message}
}
