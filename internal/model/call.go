package model

import "time"

// Agent represents a sales agent on the team.
type Agent struct {
	ID        string    // Internal agent ID
	Name      string    // Display name, e.g. "Bradley Nguyen"
	Email     string    // Work email
	Team      string    // Team name
	CreatedAt time.Time // Record creation time
}

// Call represents a recorded sales call.
type Call struct {
	ID              string    // Call ID
	AgentID         string    // Owning agent
	AgentName       string    // Denormalized agent name for listings
	CustomerName    string    // Customer display name
	CallDate        time.Time // When the call took place
	DurationSeconds int       // Call length in seconds
	Outcome         string    // e.g. "closed_won", "follow_up", "no_sale"
	Score           float64   // Overall coaching score (1.0-5.0), 0 if unscored
	HasTranscript   bool      // Whether a transcript is available
}

// DurationMinutes returns the call length rounded down to whole minutes.
func (c Call) DurationMinutes() int {
	return c.DurationSeconds / 60
}

// Transcript holds the full text of a call recording.
type Transcript struct {
	CallID    string    // Owning call
	Content   string    // Full transcript text, speaker-labeled
	WordCount int       // Word count of Content
	Language  string    // BCP-47 language tag, e.g. "en-US"
	CreatedAt time.Time // When the transcript was produced
}

// AgentPerformance aggregates call statistics for one agent over a date range.
type AgentPerformance struct {
	AgentID      string
	AgentName    string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalCalls   int
	ScoredCalls  int
	AvgScore     float64 // Average over scored calls, 0 when none scored
	AvgDurationS int     // Average call duration in seconds
	WinRate      float64 // closed_won / total, 0-1
	TopOutcome   string  // Most frequent outcome in the period
}

// TeamSummary aggregates performance across all agents over a date range.
type TeamSummary struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalCalls  int
	TotalAgents int
	AvgScore    float64
	WinRate     float64
	Agents      []AgentPerformance // Per-agent breakdown, best score first
}

// TranscriptMatch is a semantic search hit against indexed transcripts.
type TranscriptMatch struct {
	CallID    string
	AgentName string
	Excerpt   string  // Matching excerpt from the transcript
	Score     float64 // Similarity score, higher is better
}
