// @title Quiz Forge API
// @version 1.0
// @description Turns uploaded documents into multiple choice and true/false quizzes using a generative model.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-forge/cmd/api/docs"
	"quiz-forge/internal/adapter/extractor"
	"quiz-forge/internal/adapter/llm"
	"quiz-forge/internal/adapter/session"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/export"
	"quiz-forge/internal/handler"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/scheduler"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Initialize text generator
	generator, err := llm.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closer.Close()
	}
	appLogger.Info("Text generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	// Initialize session store
	var sessions domain.SessionStore
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
		appLogger.Info("Redis session store initialized", zap.String("address", cfg.Redis.Address))
	default:
		memoryStore := session.NewMemoryStore(cfg.Session.TTL)
		sessions = memoryStore
		appLogger.Info("In-memory session store initialized", zap.Duration("ttl", cfg.Session.TTL))

		if cfg.Session.TTL > 0 && cfg.Session.SweepInterval > 0 {
			sweeper := scheduler.NewSessionSweeper(memoryStore, cfg.Session.SweepInterval)
			if err := sweeper.Start(); err != nil {
				appLogger.Fatal("Failed to start session sweeper", zap.Error(err))
			}
			defer sweeper.Stop()
		}
	}

	// Initialize services
	validator := validation.NewValidatorWithLimits(cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions)
	quizService := service.NewQuizService(extractor.NewDocumentExtractor(), generator, sessions, validator, cfg)

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(quizService, cfg.Upload.TempDir)
	quizHandler := handler.NewQuizHandler(quizService, export.NewExporter())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, documentHandler, quizHandler, middleware.NewValidationMiddleware(validator))

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
