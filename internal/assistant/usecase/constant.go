package usecase

// Log prefixes
const (
	LogPrefixChat     = "internal.assistant.Chat"
	LogPrefixResolve  = "internal.assistant.resolveParams"
	LogPrefixCoaching = "internal.assistant.handleCoaching"
)

// Canned replies for short-circuited messages.
const (
	GreetingReply = "Hello! I'm your sales coaching assistant. Ask me about recent calls, agent performance, or have me coach a specific call."

	HelpReply = `Here's what I can do:
- List recent calls ("show me this week's calls")
- Agent performance ("how is Bradley doing this month?")
- Team summary ("how did the team do last week?")
- Fetch a transcript ("show me the transcript for call 123")
- Search calls ("find calls where pricing came up")
- Coach a call ("analyze call 123")`
)

// Coaching summary prompt: the second, free-text model call seeded with the
// analysis JSON from the first call.
const (
	PromptCoachSummarySystem = `You are an expert sales call coach writing for a sales manager.
Given a structured call analysis, write a short, direct coaching summary in
plain prose. No JSON, no markdown headers.`

	PromptCoachSummaryUser = `Analysis of %s's call on %s:

%s

Write a 3-5 sentence coaching summary: the single biggest strength, the most
important improvement, and the first action to take.`

	CoachSummaryMaxTokens  = 1024
	CoachAnalysisMaxTokens = 4096
	CoachTemperature       = 0.2
)
