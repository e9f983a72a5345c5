package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"sales-coach-assistant/config"
	_ "sales-coach-assistant/docs" // Swagger docs
	assistantUC "sales-coach-assistant/internal/assistant/usecase"
	callPostgre "sales-coach-assistant/internal/call/repository/postgre"
	callQdrant "sales-coach-assistant/internal/call/repository/qdrant"
	"sales-coach-assistant/internal/classifier"
	"sales-coach-assistant/internal/httpserver"
	rubricPostgre "sales-coach-assistant/internal/rubric/repository/postgre"
	rubricUC "sales-coach-assistant/internal/rubric/usecase"
	"sales-coach-assistant/pkg/datemath"
	"sales-coach-assistant/pkg/llmprovider"
	"sales-coach-assistant/pkg/log"
	"sales-coach-assistant/pkg/qdrant"
	"sales-coach-assistant/pkg/voyage"
)

// @title       Sales Coach Assistant API
// @description Conversational coaching assistant for sales call review: intent-driven chat, call analytics, and rubric-based call scoring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Sales Coach Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping Postgres: ", err)
		return
	}

	// 4. Qdrant + Voyage (semantic transcript search)
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	if err := qdrantClient.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: qdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		// The collection usually already exists; search still works.
		logger.Warnf(ctx, "Qdrant collection setup: %v", err)
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}

	// 5. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 2*time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 6. DateMath parser
	timezone := cfg.Coach.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 7. Repositories
	callRepo := callPostgre.New(db, logger)
	vectorRepo := callQdrant.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, logger)
	rubricRepo := rubricPostgre.New(db, logger)

	// 8. UseCases
	rubricUseCase := rubricUC.New(rubricRepo, logger)
	intentClassifier := classifier.New(llm, logger)
	assistantUseCase := assistantUC.New(logger, intentClassifier, llm,
		callRepo, vectorRepo, rubricUseCase, dateMathParser,
		assistantUC.Config{
			AgentCacheSize:     cfg.Coach.AgentCacheSize,
			MaxTranscriptChars: cfg.Coach.MaxTranscriptChars,
		})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		AssistantUC: assistantUseCase,
		RubricUC:    rubricUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
