package repository

import (
	"context"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	Delete(ctx context.Context, id uint) error

	// List возвращает все вопросы, отсортированные по id
	List(ctx context.Context) ([]entity.Question, error)
	// ListByCategory возвращает вопросы категории; categoryID == 0 означает все категории
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// Search ищет вопросы по подстроке без учёта регистра
	Search(ctx context.Context, term string) ([]entity.Question, error)
}
