package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// categoriesCacheKey - ключ кеша со списком категорий
const categoriesCacheKey = "trivia:categories"

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий.
// Категории через API не изменяются, поэтому список кешируется целиком на cacheTTL.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает все категории в порядке id.
// Пустой список - ErrNotFound.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &categories)
	if err == nil && len(categories) > 0 {
		return categories, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		// Кеш недоступен - идём в базу, запрос не роняем
		log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
	}

	categories, err = s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", apperrors.ErrNotFound)
	}

	if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
		log.Printf("[CategoryService] Не удалось сохранить категории в кеш: %v", err)
	}

	return categories, nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return category, nil
}

// CurrentCategory возвращает тип категории с наименьшим id.
// Клиент показывает его как "текущую категорию" рядом со списком вопросов,
// хотя с самими вопросами он не связан. Если категорий нет, возвращается "".
func (s *CategoryService) CurrentCategory(ctx context.Context) (string, error) {
	category, err := s.categoryRepo.First(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get current category: %w", err)
	}
	return category.Type, nil
}
