package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	"github.com/yourusername/trivia-questions-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// GetQuestions возвращает страницу вопросов вместе со списком категорий
// GET /questions?page=N
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	result, err := h.questionService.ListQuestions(ctx, page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Questions:  result.Questions,
		Categories: entity.CategoryMap(categories),
		// Текущей считается первая категория по id, независимо от вопросов на странице
		CurrentCategory: categories[0].Type,
		TotalQuestions:  result.TotalQuestions,
	})
}

// CreateOrSearchQuestions создаёт вопрос или ищет вопросы, в зависимости от формы тела.
// POST /questions
//
//	{"searchTerm": "..."}                                   - поиск (приоритетнее создания)
//	{"question", "answer", "category", "difficulty"}        - создание
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req dto.CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			handleError(c, fmt.Errorf("%w: Body is empty.", apperrors.ErrBadRequest))
			return
		}
		handleError(c, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	switch {
	case req.SearchTerm != nil:
		h.searchQuestions(c, *req.SearchTerm)
	case req.Question != nil && req.Answer != nil:
		h.createQuestion(c, req)
	default:
		handleError(c, fmt.Errorf("%w: expected either searchTerm or question and answer", apperrors.ErrUnprocessable))
	}
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.Search(c.Request.Context(), term, page)
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

func (h *QuestionHandler) createQuestion(c *gin.Context, req dto.CreateOrSearchRequest) {
	if req.Category == nil || *req.Category <= 0 {
		handleError(c, fmt.Errorf("%w: category is not correct", apperrors.ErrBadRequest))
		return
	}

	input := service.CreateQuestionInput{
		Question:   *req.Question,
		Answer:     *req.Answer,
		CategoryID: uint(*req.Category),
	}
	if req.Difficulty != nil {
		input.Difficulty = int(*req.Difficulty)
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{Created: question.ID})
}

// DeleteQuestion удаляет вопрос по id
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	deletedID, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{Deleted: deletedID})
}

// ExportQuestions выгружает все вопросы в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.AllQuestions(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	// Отсутствие категорий не мешает выгрузке: в столбце будет id категории
	categoryNames := make(map[uint]string)
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		handleError(c, err)
		return
	}
	for _, category := range categories {
		categoryNames[category.ID] = category.Type
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, categoryNames, filename)
	default:
		h.exportCSV(c, questions, categoryNames, filename)
	}
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, categories map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи BOM: %v", err)
		return
	}

	if err := helper.WriteQuestionsCSV(c.Writer, questions, categories); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи CSV: %v", err)
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, categories map[uint]string, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Printf("[QuestionHandler] Ошибка переименования листа: %v", err)
		handleError(c, err)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		handleError(c, err)
		return
	}

	headers := make([]interface{}, len(helper.QuestionExportHeaders))
	for i, name := range helper.QuestionExportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
		handleError(c, err)
		return
	}

	for i, q := range questions {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cells := helper.QuestionExportRow(q, categories)
		row := make([]interface{}, len(cells))
		for j, v := range cells {
			row[j] = v
		}
		// id и сложность пишем числами, чтобы по ним работала сортировка в Excel
		row[0] = q.ID
		row[4] = q.Difficulty

		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
			handleError(c, err)
			return
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
		handleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}
