package repository

import "time"

// ListCallsOptions holds filter parameters for listing calls.
type ListCallsOptions struct {
	AgentID            string
	StartDate          time.Time
	EndDate            time.Time
	MinDurationMinutes int // >0 switches to cross-agent duration mode
	Limit              int
}

// PerformanceOptions holds parameters for aggregate queries.
type PerformanceOptions struct {
	AgentID   string // Ignored by GetTeamSummary
	StartDate time.Time
	EndDate   time.Time
}

// SearchTranscriptsOptions holds semantic search parameters.
type SearchTranscriptsOptions struct {
	Query string
	Limit int
}
