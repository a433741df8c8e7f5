package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/middleware"
)

// Router собирает обработчики API
type Router struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler

	// WriteLimit применяется к изменяющим запросам; nil - без ограничений
	WriteLimit gin.HandlerFunc
}

// Register настраивает маршруты API на router
func (r *Router) Register(router *gin.Engine) {
	// Неизвестный метод на существующем пути - 405, а не 404
	router.HandleMethodNotAllowed = true
	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)

	if r.Health != nil {
		router.GET("/healthz", r.Health.Health)
	}

	// Категории
	router.GET("/categories", r.Category.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		r.Category.GetCategoryQuestions,
	)

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", r.Question.GetQuestions)
		questions.GET("/export", r.Question.ExportQuestions)
		questions.POST("", r.limited(r.Question.CreateOrSearchQuestions)...)
		questions.DELETE("/:id", r.limited(
			middleware.ExtractUintParam("id", "questionID"),
			r.Question.DeleteQuestion,
		)...)
	}

	// Игра
	router.POST("/quizzes", r.limited(r.Quiz.PlayQuiz)...)
}

// limited добавляет WriteLimit перед обработчиками, если он задан
func (r *Router) limited(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	if r.WriteLimit == nil {
		return handlers
	}
	return append([]gin.HandlerFunc{r.WriteLimit}, handlers...)
}
