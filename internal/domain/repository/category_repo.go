package repository

import (
	"context"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории только читаются, наполнение выполняется миграциями.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	// First возвращает категорию с наименьшим id
	First(ctx context.Context) (*entity.Category, error)
}
