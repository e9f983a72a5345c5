package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptClassifySystem = `You are the intent router for a sales-call coaching assistant.
Classify the user's message into exactly one intent and extract parameters.`

	PromptClassifyUser = `Message: "%s"

Possible intents:
1. LIST_CALLS: show, list, or browse recorded calls
2. AGENT_STATS: how one named agent is performing
3. TEAM_SUMMARY: how the whole team is performing
4. GET_TRANSCRIPT: fetch the transcript of one call
5. SEARCH_CALLS: find calls where something was said or happened
6. COACHING: analyze, score, or coach a specific call
7. GENERAL: greetings, questions about the assistant, anything else

Return JSON with this format:
{
  "intent": "LIST_CALLS|AGENT_STATS|TEAM_SUMMARY|GET_TRANSCRIPT|SEARCH_CALLS|COACHING|GENERAL",
  "agent_name": "<agent first name if mentioned, else null>",
  "days_back": <days of history implied by the message, default 7>,
  "call_id": "<call id if mentioned, else null>",
  "search_query": "<what to search for, else null>",
  "min_duration_minutes": <minimum call length if mentioned, else null>,
  "confidence": <0-100>
}`
)

// Classifier configuration
const (
	ClassifyTemperature = 0.1 // low temperature for deterministic JSON output
	ClassifyMaxTokens   = 512
	DefaultDaysBack     = 7
)

// intentSynonyms maps common model-invented intent labels onto the closed set.
var intentSynonyms = map[string]Intent{
	"STATS":       IntentAgentStats,
	"AGENT":       IntentAgentStats,
	"PERFORMANCE": IntentAgentStats,
	"TEAM":        IntentTeamSummary,
	"SUMMARY":     IntentTeamSummary,
	"FIND":        IntentSearchCalls,
	"SEARCH":      IntentSearchCalls,
	"TRANSCRIPT":  IntentGetTranscript,
	"CALLS":       IntentListCalls,
	"LIST":        IntentListCalls,
	"COACH":       IntentCoaching,
	"ANALYZE":     IntentCoaching,
	"CHAT":        IntentGeneral,
}

// greetings are matched by case-insensitive prefix or equality.
var greetings = []string{
	"hello",
	"hi",
	"hey",
	"good morning",
	"good afternoon",
	"good evening",
}

// helpPhrases are matched by case-insensitive substring.
var helpPhrases = []string{
	"help",
	"what can you do",
	"how do i use",
	"how does this work",
	"what are you",
}
