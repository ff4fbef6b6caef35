package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/cache"
	"github.com/surveyhub/quiz-service/internal/config"
	"github.com/surveyhub/quiz-service/internal/handlers"
	"github.com/surveyhub/quiz-service/internal/middleware"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories/postgres"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
	"github.com/surveyhub/quiz-service/internal/validator"
	"github.com/surveyhub/quiz-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.AnswerOption{},
		&models.Answer{},
		&models.SelectedOption{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis; the service degrades to a pass-through cache when
	// Redis is unavailable.
	var cacheService cache.CacheService
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", "error", err)
		cacheService = cache.NoopCache{}
	} else {
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, slogger)
	}

	// Initialize event publisher
	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatal("Failed to create event publisher:", err)
	}
	defer publisher.Close()

	// Initialize repositories and services
	repo := postgres.NewRepository(db)
	v := validator.New()
	serviceManager := services.NewServiceManager(repo, slogger, v, cacheService, publisher)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(middleware.Identity(cfg.JWTSecret, repo.User()))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	// Start server
	logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
