package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-actions/pkg/validator"

	"github.com/johnquangdev/meeting-actions/internal/adapter/handler"
	"github.com/johnquangdev/meeting-actions/internal/adapter/repository"
	"github.com/johnquangdev/meeting-actions/internal/domain/repositories"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/email"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-actions/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-actions/internal/usecase/share"
	"github.com/johnquangdev/meeting-actions/internal/usecase/upload"
	pkgai "github.com/johnquangdev/meeting-actions/pkg/ai"
	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// @title           Meeting Actions API
// @version         1.0
// @description     Extracts owners and tasks from meeting transcripts and shares them by link or email

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	m := metrics.New()

	memStore := cache.NewMemoryStore()
	defer memStore.Close()

	// Share links: PostgreSQL when enabled, process memory otherwise
	var shareRepo repositories.ShareRepository
	if cfg.Database.Enabled {
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		if cfg.Database.AutoMigrate {
			if _, err := database.Migrate(db, cfg.Database.Migrations); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		} else {
			log.Println("🔄 Skipping migrations; run `actions migrate` to apply them")
		}
		shareRepo = repository.NewShareRepository(db)
	} else {
		log.Println("⚠️  Database disabled, share links are kept in memory")
		shareRepo = repository.NewMemoryShareRepository()
	}

	// Email quota counter: Redis when enabled, process memory otherwise
	var counter repositories.CounterStore = memStore
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		counter = cache.NewRedisCounter(redisClient)
	}

	// Upload staging
	var stager upload.Stager
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		stager = minioClient
	}

	// Person detection
	log.Println("🤖 Initializing extraction...")
	var detector extraction.PersonDetector = extraction.NewLexiconDetector()
	if cfg.Extraction.PersonDetector == "groq" {
		groqClient := pkgai.NewGroqClient(&cfg.Groq)
		detector = extraction.NewRemoteDetector(groqClient, detector, memStore, 5*time.Second, cfg.Extraction.DetectorTTL, logger)
		log.Printf("✅ Person detection via Groq (%s)", cfg.Groq.Model)
	}
	extractor := extraction.NewExtractor(detector, logger)

	var transcriber upload.Transcriber
	if asm := pkgai.NewAssemblyAIClient(&cfg.Assembly, logger); asm != nil {
		transcriber = asm
		log.Println("✅ Audio transcription enabled")
	} else {
		log.Println("⚠️  ASSEMBLYAI_API_KEY not set, audio uploads are disabled")
	}

	var sender share.Sender
	if sg := email.NewSendGridSender(&cfg.SendGrid, logger); sg != nil {
		sender = sg
		log.Println("✅ Email sharing enabled")
	} else {
		log.Println("⚠️  SENDGRID_API_KEY not set, email sharing is disabled")
	}

	// Initialize services
	uploadService := upload.NewService(extractor, transcriber, stager, logger)
	linkService := share.NewLinkService(shareRepo, cfg.Server.BaseURL, cfg.Extraction.ShareTTL, logger)
	emailService := share.NewEmailService(sender, counter, cfg.SendGrid.DailyLimit, logger)

	if stager != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if n, err := uploadService.SweepStale(ctx); err != nil {
			logger.Warn("upload.sweep_failed", zap.Error(err))
		} else if n > 0 {
			log.Printf("🧹 Removed %d stale staged uploads", n)
		}
		cancel()
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg,
		handler.NewActionHandler(extractor, m, logger),
		handler.NewUploadHandler(uploadService, cfg.Server.UploadMaxBytes, m, logger),
		handler.NewShareHandler(linkService, emailService, m, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server forced to shutdown: %v\n", err)
		os.Exit(1)
	}

	log.Println("✅ Server stopped gracefully")
}
