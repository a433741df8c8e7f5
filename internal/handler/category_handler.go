package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	"github.com/yourusername/trivia-questions-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает все категории в виде словаря {"id": type}
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: entity.CategoryMap(categories)})
}

// GetCategoryQuestions возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}
