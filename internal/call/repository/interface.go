package repository

import (
	"context"

	"sales-coach-assistant/internal/model"
)

// Repository is the composed interface for the call domain data store.
type Repository interface {
	CallRepository
	AgentRepository
}

// CallRepository defines read access to recorded calls and aggregates.
type CallRepository interface {
	// ListCalls returns calls matching the options. When MinDurationMinutes
	// is set the query runs in cross-agent duration mode and agent scoping
	// is ignored.
	ListCalls(ctx context.Context, opt ListCallsOptions) ([]model.Call, error)

	// GetCall fetches one call by ID. Returns zero-value Call (ID == "")
	// when not found.
	GetCall(ctx context.Context, id string) (model.Call, error)

	// GetTranscript fetches the transcript for one call. Returns zero-value
	// Transcript (CallID == "") when none exists.
	GetTranscript(ctx context.Context, callID string) (model.Transcript, error)

	// GetAgentPerformance aggregates one agent's call statistics over a
	// date range.
	GetAgentPerformance(ctx context.Context, opt PerformanceOptions) (model.AgentPerformance, error)

	// GetTeamSummary aggregates performance across all agents over a date
	// range, best average score first.
	GetTeamSummary(ctx context.Context, opt PerformanceOptions) (model.TeamSummary, error)
}

// AgentRepository defines agent identity lookups.
type AgentRepository interface {
	// FindAgentByName fuzzy-matches a partial name to at most one agent.
	// Returns zero-value AgentMatch (Agent.ID == "") when nothing clears
	// the similarity floor.
	FindAgentByName(ctx context.Context, partialName string) (AgentMatch, error)
}

// VectorRepository handles transcript vector operations (Qdrant).
type VectorRepository interface {
	// IndexTranscript embeds a transcript and stores it for semantic search.
	IndexTranscript(ctx context.Context, call model.Call, transcript model.Transcript) error

	// SearchTranscripts performs semantic search over indexed transcripts.
	SearchTranscripts(ctx context.Context, opt SearchTranscriptsOptions) ([]model.TranscriptMatch, error)

	// DeleteTranscript removes an indexed transcript by call ID.
	DeleteTranscript(ctx context.Context, callID string) error
}

// AgentMatch is a fuzzy name-lookup result.
type AgentMatch struct {
	Agent      model.Agent
	Similarity float64
}
