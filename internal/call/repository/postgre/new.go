package postgre

import (
	"database/sql"
	"fmt"

	"sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/pkg/log"
)

// similarityFloor is the pg_trgm cutoff below which a fuzzy name match is
// treated as no match.
const similarityFloor = 0.3

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the call domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("call/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("call/repository/postgre.%s", method)
}
