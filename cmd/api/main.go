package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"trackrecord/cv-rater/internal/config"
	"trackrecord/cv-rater/internal/handlers"
	"trackrecord/cv-rater/internal/rating"
	"trackrecord/cv-rater/internal/repositories"
	"trackrecord/cv-rater/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor()

	// The rubric is the heart of the tool; refuse to start without it.
	rubricService, err := services.NewRubricService(cfg.Rating.RubricPath)
	if err != nil {
		log.Fatalf("❌ Failed to load scoring rubric from %s: %v", cfg.Rating.RubricPath, err)
	}
	log.Printf("✅ Scoring rubric loaded from %s\n", cfg.Rating.RubricPath)

	// Rating model provider
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	}

	var provider services.ChatProvider
	switch cfg.Rating.Provider {
	case "openrouter":
		if cfg.OpenRouter.APIKey == "" {
			log.Fatalf("❌ LLM_PROVIDER is openrouter but OPENROUTER_API_KEY is not set")
		}
		provider = services.NewOpenRouterService(cfg.OpenRouter.APIKey, cfg.OpenRouter.Model, cfg.OpenRouter.BaseURL)
		log.Printf("✅ OpenRouter provider initialized (%s)\n", cfg.OpenRouter.Model)
	default:
		if geminiService == nil {
			log.Fatalf("❌ GEMINI_API_KEY is not set")
		}
		provider = geminiService
	}

	// Qdrant guidance retrieval is optional; the rater degrades to rubric-only
	// prompts when it is unavailable.
	var embedder services.Embedder
	var guidanceStore services.GuidanceStore
	if geminiService != nil {
		qdrantService, err := services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Printf("⚠️  Qdrant unavailable, continuing without guidance retrieval: %v\n", err)
		} else if err := qdrantService.InitCollection(); err != nil {
			log.Printf("⚠️  Qdrant collection init failed, continuing without guidance retrieval: %v\n", err)
		} else {
			embedder = geminiService
			guidanceStore = qdrantService
			log.Println("✅ Qdrant initialized successfully")
		}
	}

	// Record appender: Google Sheets when configured, local workbook otherwise.
	var appender services.RecordAppender
	if cfg.Sheets.SpreadsheetID != "" && cfg.Sheets.CredentialsFile != "" {
		appender, err = services.NewSheetsService(
			context.Background(),
			cfg.Sheets.CredentialsFile,
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.SheetName,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Google Sheets: %v", err)
		}
		log.Printf("✅ Google Sheets appender initialized (sheet %q)\n", cfg.Sheets.SheetName)
	} else {
		appender = services.NewWorkbookService(cfg.Sheets.WorkbookPath)
		log.Printf("✅ Local workbook appender initialized (%s)\n", cfg.Sheets.WorkbookPath)
	}

	totalPolicy := rating.TotalPolicy(cfg.Rating.TotalPolicy)

	// Initialize rater
	raterService := services.NewRaterService(
		sessionRepo,
		docRepo,
		extractor,
		provider,
		embedder,
		guidanceStore,
		rubricService,
		appender,
		totalPolicy,
		cfg.Worker.RetryMaxAttempts,
	)
	log.Println("✅ Rater service initialized")

	// Initialize worker
	worker := services.NewWorker(
		sessionRepo,
		raterService,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg.Auth.AccessPassword)
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		sessionRepo,
		storageService,
		worker,
		cfg.Storage.MaxFileSize,
	)
	sessionHandler := handlers.NewSessionHandler(
		sessionRepo,
		rating.NewComposer(rating.DefaultVocabulary(), totalPolicy),
	)
	submitHandler := handlers.NewSubmitHandler(raterService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Track Record CV Rater API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Access-Token",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Unlock is the only open endpoint
	api.Post("/unlock", authHandler.HandleUnlock)

	// Everything else sits behind the shared password
	protected := api.Group("", authHandler.Middleware())
	protected.Post("/upload", uploadHandler.HandleUpload)
	protected.Get("/sessions/:id", sessionHandler.HandleGetSession)
	protected.Post("/sessions/:id/submit", submitHandler.HandleSubmit)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Track Record CV Rater API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/unlock",
				"POST /api/v1/upload",
				"GET /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/submit",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
