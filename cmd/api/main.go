package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"learnbyte/internal/adapter"
	"learnbyte/internal/adapter/catalog"
	"learnbyte/internal/adapter/textgen"
	"learnbyte/internal/cache"
	"learnbyte/internal/config"
	"learnbyte/internal/database"
	"learnbyte/internal/domain"
	"learnbyte/internal/handler"
	"learnbyte/internal/logger"
	"learnbyte/internal/middleware"
	"learnbyte/internal/repository"
	"learnbyte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Text-generation backend
	var completer domain.TextCompleter
	switch cfg.TextGen.Source {
	case "ollama":
		appLogger.Info("Initializing Ollama completer",
			zap.String("server_url", cfg.TextGen.OllamaServerURL),
			zap.String("model", cfg.TextGen.OllamaModel))
		completer, err = textgen.NewOllamaCompleter(cfg.TextGen.OllamaServerURL, cfg.TextGen.OllamaModel)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama completer", zap.Error(err))
		}
	case "openai":
		appLogger.Info("Initializing OpenAI completer", zap.String("model", cfg.TextGen.OpenAIModel))
		completer, err = textgen.NewOpenAICompleter(cfg.TextGen.OpenAIAPIKey, cfg.TextGen.OpenAIModel)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI completer", zap.Error(err))
		}
	default:
		appLogger.Fatal("Unsupported textgen source; expected ollama or openai",
			zap.String("source", cfg.TextGen.Source))
	}

	// Database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Repositories
	courseRepository := repository.NewCourseDatabaseAdapter(db)
	moduleRepository := repository.NewModuleDatabaseAdapter(db)
	questionRepository := repository.NewQuizQuestionDatabaseAdapter(db)
	attemptRepository := repository.NewQuizAttemptDatabaseAdapter(db)
	userRepository := repository.NewUserDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis cache; the explanation cache degrades to direct generation when
	// redis is unavailable at startup.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, explanation caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Remote catalog is optional; the import endpoint reports it as not
	// configured when absent.
	var catalogClient domain.CatalogClient
	if cfg.Catalog.Configured() {
		catalogClient = catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Token)
		appLogger.Info("Catalog client initialized", zap.String("base_url", cfg.Catalog.BaseURL))
	}

	// Services
	generationService := service.NewGenerationService(completer)
	quizService := service.NewQuizService(moduleRepository, questionRepository, attemptRepository, txManager, generationService)
	explanationService := service.NewExplanationService(moduleRepository, generationService, cacheAdapter, cfg.Cache.Explanation)
	courseService := service.NewCourseService(courseRepository, moduleRepository)
	analyticsService := service.NewAnalyticsService(moduleRepository, attemptRepository)
	syncService := service.NewSyncService(catalogClient, courseRepository, moduleRepository, txManager)
	authService := service.NewAuthService(userRepository, cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService, analyticsService)
	quizHandler := handler.NewQuizHandler(quizService, explanationService)
	syncHandler := handler.NewSyncHandler(syncService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := middleware.Protected(authService)

	courseGroup := apiGroup.Group("/courses", protected)
	courseGroup.Post("/", courseHandler.CreateCourse)
	courseGroup.Get("/", courseHandler.ListCourses)
	courseGroup.Get("/:id", courseHandler.GetCourse)
	courseGroup.Post("/:id/modules", courseHandler.CreateModule)
	courseGroup.Get("/:id/modules", courseHandler.ListModules)
	courseGroup.Get("/:id/stats", courseHandler.GetCourseStats)

	moduleGroup := apiGroup.Group("/modules", protected)
	moduleGroup.Get("/:id", courseHandler.GetModule)
	moduleGroup.Get("/:id/stats", courseHandler.GetModuleStats)
	moduleGroup.Post("/:id/quiz/generate", quizHandler.GenerateQuiz)
	moduleGroup.Get("/:id/quiz", quizHandler.GetQuiz)
	moduleGroup.Post("/:id/quiz/submit", quizHandler.SubmitQuiz)
	moduleGroup.Post("/:id/explain", quizHandler.ExplainModule)

	apiGroup.Post("/catalog/import", protected, syncHandler.ImportCatalog)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
