package classifier

// Intent represents what a user message is asking for. The set is closed;
// anything unrecognized maps to GENERAL.
type Intent string

const (
	IntentListCalls     Intent = "LIST_CALLS"
	IntentAgentStats    Intent = "AGENT_STATS"
	IntentTeamSummary   Intent = "TEAM_SUMMARY"
	IntentGetTranscript Intent = "GET_TRANSCRIPT"
	IntentSearchCalls   Intent = "SEARCH_CALLS"
	IntentCoaching      Intent = "COACHING"
	IntentGeneral       Intent = "GENERAL"
)

// AllIntents returns every member of the closed intent set.
func AllIntents() []Intent {
	return []Intent{
		IntentListCalls,
		IntentAgentStats,
		IntentTeamSummary,
		IntentGetTranscript,
		IntentSearchCalls,
		IntentCoaching,
		IntentGeneral,
	}
}

// Classification is the structured result of classifying one message.
// Produced once per message and never mutated. Confidence 0.0 marks a
// fallback classification (classifier failure), not a model judgment.
type Classification struct {
	Intent             Intent  `json:"intent"`
	AgentName          string  `json:"agent_name,omitempty"`
	DaysBack           int     `json:"days_back"` // >= 1, default 7
	CallID             string  `json:"call_id,omitempty"`
	SearchQuery        string  `json:"search_query,omitempty"`
	MinDurationMinutes float64 `json:"min_duration_minutes,omitempty"`
	Confidence         float64 `json:"confidence"` // [0, 1]
}

// classifyResponse is the untrusted wire shape returned by the model.
// Confidence arrives on the model's 0-100 scale.
type classifyResponse struct {
	Intent             string   `json:"intent"`
	AgentName          *string  `json:"agent_name"`
	DaysBack           *int     `json:"days_back"`
	CallID             *string  `json:"call_id"`
	SearchQuery        *string  `json:"search_query"`
	MinDurationMinutes *float64 `json:"min_duration_minutes"`
	Confidence         *float64 `json:"confidence"`
}
