package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/pkg/pagination"
)

// QuestionPage - страница вопросов вместе с общим количеством
type QuestionPage struct {
	Questions       []entity.FormattedQuestion
	TotalQuestions  int
	CurrentCategory string
}

// CreateQuestionInput - данные для создания вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryService *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу всех вопросов.
// Пустая страница - ErrNotFound.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: no questions on page %d", apperrors.ErrNotFound, page)
	}

	return &QuestionPage{
		Questions:      entity.FormatQuestions(current),
		TotalQuestions: len(questions),
	}, nil
}

// ListByCategory возвращает страницу вопросов категории.
// Несуществующая категория или пустая страница - ErrNotFound.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	category, err := s.categoryService.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: no questions in category %d on page %d", apperrors.ErrNotFound, categoryID, page)
	}

	return &QuestionPage{
		Questions:       entity.FormatQuestions(current),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// Search возвращает страницу вопросов, содержащих term (без учёта регистра).
// Пустой результат не считается ошибкой.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	currentCategory, err := s.categoryService.CurrentCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       entity.FormatQuestions(pagination.Paginate(questions, page)),
		TotalQuestions:  len(questions),
		CurrentCategory: currentCategory,
	}, nil
}

// CreateQuestion создает вопрос в существующей категории.
// Неизвестная категория - ErrBadRequest.
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.Question, error) {
	category, err := s.categoryService.GetCategory(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category is not correct", apperrors.ErrBadRequest)
		}
		return nil, err
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = entity.DefaultDifficulty
	}

	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		CategoryID: category.ID,
		Difficulty: difficulty,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Создан вопрос #%d в категории #%d", question.ID, question.CategoryID)
	return question, nil
}

// DeleteQuestion удаляет вопрос и возвращает его id.
// Отсутствующий вопрос - ErrNotFound, сбой хранилища - ErrDeleteFailed.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) (uint, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: question %d", apperrors.ErrNotFound, id)
		}
		return 0, fmt.Errorf("failed to get question %d: %w", id, err)
	}

	if err := s.questionRepo.Delete(ctx, question.ID); err != nil {
		log.Printf("[QuestionService] Error deleting question #%d: %v", question.ID, err)
		return 0, fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	return question.ID, nil
}

// AllQuestions возвращает все вопросы без пагинации (для экспорта)
func (s *QuestionService) AllQuestions(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
