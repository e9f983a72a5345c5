package prompt

// CallVariables carries the per-call facts interpolated into the analysis
// prompt.
type CallVariables struct {
	AgentName         string
	CallDate          string // Human-readable, e.g. "2026-08-12"
	Duration          string // Human-readable, e.g. "23m 40s"
	CustomerTalkRatio float64
	AgentTalkRatio    float64
	Transcript        string
}

// Compiled is the deterministic output of compiling one rubric config with
// one call's variables.
type Compiled struct {
	SystemPrompt   string
	AnalysisPrompt string
	ConfigID       string // Empty for the static fallback
	ConfigVersion  int    // 0 for the static fallback
}

// CoachingAnalysis is the typed result parsed back from the model's JSON
// response. Constructed fresh per coaching request; never cached.
type CoachingAnalysis struct {
	Scores           map[string]int  `json:"scores"` // category slug -> 1-5
	OverallScore     float64         `json:"overall_score"`
	PerformanceLevel string          `json:"performance_level"`
	Strengths        []string        `json:"strengths"`
	Improvements     []string        `json:"improvements"`
	ActionItems      []string        `json:"action_items"`
	RedFlags         RedFlagFindings `json:"red_flags"`
	NotableMoments   []NotableMoment `json:"notable_moments"`
}

// RedFlagFindings lists detected flag keys grouped by severity.
type RedFlagFindings struct {
	Critical []string `json:"critical"`
	High     []string `json:"high"`
	Medium   []string `json:"medium"`
}

// NotableMoment is one highlighted exchange from the call.
type NotableMoment struct {
	Type        string `json:"type"` // "positive" or "concern"
	Category    string `json:"category"`
	Description string `json:"description"`
	Quote       string `json:"quote,omitempty"`
}
