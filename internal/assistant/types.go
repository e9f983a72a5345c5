package assistant

import (
	"time"

	"sales-coach-assistant/internal/classifier"
	"sales-coach-assistant/internal/rubric/prompt"
)

// ChatInput is one inbound user message.
type ChatInput struct {
	Message string
}

// ChatOutput is the uniform envelope returned for every chat request.
type ChatOutput struct {
	Intent     classifier.Intent `json:"intent"`
	Confidence float64           `json:"confidence"`
	Result     HandlerResult     `json:"result"`
}

// HandlerParams is the resolved, handler-ready form of a classification:
// agent name mapped to an ID, relative days mapped to absolute dates.
// Derived per request and short-lived.
type HandlerParams struct {
	Intent             classifier.Intent
	AgentID            string
	AgentName          string
	StartDate          time.Time
	EndDate            time.Time
	DaysBack           int
	CallID             string
	SearchQuery        string
	MinDurationMinutes int
}

// HandlerResult is the uniform contract every intent handler returns.
// Handlers never propagate failures past their own boundary; any internal
// error becomes {Success: false, Error: <message>}.
type HandlerResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// CoachingData is the coaching handler's payload: the parsed analysis plus
// the free-text summary and the rubric snapshot it was produced from.
type CoachingData struct {
	prompt.CoachingAnalysis
	Summary          string `json:"summary"`
	HasCriticalFlags bool   `json:"has_critical_flags"`
	RubricConfigID   string `json:"rubric_config_id,omitempty"`
	RubricVersion    int    `json:"rubric_version,omitempty"`
}
