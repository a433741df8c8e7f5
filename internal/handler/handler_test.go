package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	redisRepo "github.com/yourusername/trivia-questions-api/internal/repository/redis"
	"github.com/yourusername/trivia-questions-api/internal/service"
	"github.com/yourusername/trivia-questions-api/internal/service/quizpicker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryStore - in-memory реализация репозиториев вопросов и категорий
type memoryStore struct {
	mu         sync.Mutex
	categories []entity.Category
	questions  []entity.Question
	nextID     uint
	deleteErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1}
}

// seed заполняет хранилище стандартными категориями и count вопросами,
// распределёнными по категориям по кругу
func (s *memoryStore) seed(count int) *memoryStore {
	s.categories = []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
	for i := 0; i < count; i++ {
		s.questions = append(s.questions, entity.Question{
			ID:         s.nextID,
			Question:   "Question number " + string(rune('A'+i%26)),
			Answer:     "Answer",
			CategoryID: uint(i%6 + 1),
			Difficulty: i%5 + 1,
		})
		s.nextID++
	}
	return s
}

func (s *memoryStore) add(q entity.Question) {
	q.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, q)
}

// QuestionRepository

func (s *memoryStore) Create(ctx context.Context, question *entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	question.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, *question)
	return nil
}

func (s *memoryStore) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memoryStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memoryStore) List(ctx context.Context) ([]entity.Question, error) {
	return s.filter(func(entity.Question) bool { return true }), nil
}

func (s *memoryStore) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	return s.filter(func(q entity.Question) bool { return categoryID == 0 || q.CategoryID == categoryID }), nil
}

func (s *memoryStore) Search(ctx context.Context, term string) ([]entity.Question, error) {
	term = strings.ToLower(term)
	return s.filter(func(q entity.Question) bool { return strings.Contains(strings.ToLower(q.Question), term) }), nil
}

func (s *memoryStore) filter(keep func(entity.Question) bool) []entity.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []entity.Question{}
	for _, q := range s.questions {
		if keep(q) {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// categoryStore адаптирует memoryStore к repository.CategoryRepository
type categoryStore struct{ *memoryStore }

func (s categoryStore) List(ctx context.Context) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Category(nil), s.categories...), nil
}

func (s categoryStore) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s categoryStore) First(ctx context.Context) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	first := s.categories[0]
	return &first, nil
}

// fakePinger реализует Pinger
type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

// newTestRouter собирает gin.Engine со всеми обработчиками поверх store
func newTestRouter(store *memoryStore) *gin.Engine {
	categoryService := service.NewCategoryService(categoryStore{store}, redisRepo.NoOpCacheRepo{}, time.Minute)
	questionService := service.NewQuestionService(store, categoryService)
	quizService := service.NewQuizService(store, quizpicker.New())

	router := gin.New()
	r := &Router{
		Category: NewCategoryHandler(categoryService, questionService),
		Question: NewQuestionHandler(questionService, categoryService),
		Quiz:     NewQuizHandler(quizService),
		Health:   NewHealthHandler(fakePinger{}),
	}
	r.Register(router)
	return router
}

// doRequest выполняет запрос; body сериализуется в JSON, строка передаётся как есть
func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// requireErrorBody проверяет формат ошибки {success: false, error: code, message}
func requireErrorBody(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	resp := parseJSONResponse(t, w)
	require.Equal(t, false, resp["success"])
	require.Equal(t, float64(code), resp["error"])
	require.NotEmpty(t, resp["message"])
}

var errStorage = errors.New("storage failure")
