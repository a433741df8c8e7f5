package service

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	"github.com/yourusername/trivia-questions-api/internal/service/quizpicker"
)

// QuizService выдаёт вопросы для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
	picker       *quizpicker.Picker
}

// NewQuizService создает новый сервис игры
func NewQuizService(questionRepo repository.QuestionRepository, picker *quizpicker.Picker) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		picker:       picker,
	}
}

// NextQuestion возвращает случайный ещё не показанный вопрос категории
// (categoryID == 0 - любой категории). Если вопросов не осталось, возвращает nil без ошибки.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*entity.Question, error) {
	candidates, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz candidates: %w", err)
	}
	return s.picker.Pick(candidates, previous), nil
}
