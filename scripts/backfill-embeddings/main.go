package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"sales-coach-assistant/config"
	"sales-coach-assistant/internal/call/repository"
	callPostgre "sales-coach-assistant/internal/call/repository/postgre"
	callQdrant "sales-coach-assistant/internal/call/repository/qdrant"
	"sales-coach-assistant/pkg/log"
	pkgQdrant "sales-coach-assistant/pkg/qdrant"
	"sales-coach-assistant/pkg/voyage"
)

const backfillBatchLimit = 10000

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/backfill-embeddings/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/backfill-embeddings/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open Postgres connection: %v", err)
	}
	defer db.Close()
	callRepo := callPostgre.New(db, logger)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	vectorRepo := callQdrant.New(qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, logger)

	logger.Info(ctx, "Starting backfill process...")

	// Fetch all calls; transcript-less calls are skipped below.
	calls, err := callRepo.ListCalls(ctx, repository.ListCallsOptions{
		Limit: backfillBatchLimit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list calls: %v", err)
	}

	logger.Infof(ctx, "Found %d calls to backfill to Qdrant", len(calls))

	successCount := 0
	for i, call := range calls {
		if !call.HasTranscript {
			continue
		}

		transcript, err := callRepo.GetTranscript(ctx, call.ID)
		if err != nil {
			logger.Errorf(ctx, "Failed to get transcript for call %s: %v", call.ID, err)
			continue
		}
		if transcript.CallID == "" {
			continue
		}

		if err := vectorRepo.IndexTranscript(ctx, call, transcript); err != nil {
			logger.Errorf(ctx, "Failed to index call %s: %v", call.ID, err)
			continue
		}
		logger.Infof(ctx, "Indexed call %d/%d: %s", i+1, len(calls), call.ID)
		successCount++
	}

	logger.Infof(ctx, "Backfill complete! %d/%d calls successfully indexed.", successCount, len(calls))
}
