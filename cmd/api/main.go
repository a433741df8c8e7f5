package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-questions-api/internal/config"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	"github.com/yourusername/trivia-questions-api/internal/handler"
	"github.com/yourusername/trivia-questions-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-questions-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-questions-api/internal/repository/redis"
	"github.com/yourusername/trivia-questions-api/internal/service"
	"github.com/yourusername/trivia-questions-api/internal/service/quizpicker"
	"github.com/yourusername/trivia-questions-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), gin.Mode())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема и справочник категорий)
	migrationsURL := os.Getenv("MIGRATIONS_URL")
	if migrationsURL == "" {
		migrationsURL = database.DefaultMigrationsURL
	}
	if err := database.MigrateDB(db, migrationsURL); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		log.Printf("Failed to get sql.DB: %v", err)
		os.Exit(1)
	}

	// Redis нужен только для кеша и rate limiting
	var redisClient redis.UniversalClient
	if cfg.Cache.Enabled || cfg.RateLimit.Enabled {
		redisClient, err = database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	var cacheRepo repository.CacheRepository = redisRepo.NoOpCacheRepo{}
	if cfg.Cache.Enabled {
		redisCache, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = redisCache
	}

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo, quizpicker.New())

	// Инициализируем обработчики
	routes := &handler.Router{
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Question: handler.NewQuestionHandler(questionService, categoryService),
		Quiz:     handler.NewQuizHandler(quizService),
		Health:   handler.NewHealthHandler(sqlDB),
	}
	if cfg.RateLimit.Enabled {
		limitCfg := middleware.DefaultWriteRateLimitConfig()
		limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
		limitCfg.Window = cfg.RateLimit.Window
		routes.WriteLimit = middleware.NewRateLimiter(redisClient).Limit(limitCfg)
	}

	router := gin.Default()

	// В release не доверяем прокси-заголовкам (защита от подмены IP для rate limiting)
	trustedProxies := []string{"127.0.0.1", "::1"}
	if gin.Mode() == gin.ReleaseMode {
		trustedProxies = nil
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	routes.Register(router)

	// Настраиваем HTTP сервер с тайм-аутами
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited properly")
}

// corsConfig разрешает запросы с любого origin, если список пуст или содержит "*"
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
