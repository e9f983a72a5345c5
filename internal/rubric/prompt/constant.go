package prompt

// Compiler limits
const (
	// CriteriaPerCategory is how many scoring criteria are shown to the
	// model per category, picked by highest score first.
	CriteriaPerCategory = 3

	// CriterionMaxChars is the truncation limit for one criterion
	// description.
	CriterionMaxChars = 150
)

// Prompt fragments
const (
	SystemFraming = `You are an expert sales call coach. You analyze recorded sales call transcripts
and score them against a weighted coaching rubric. Be specific, cite the
transcript, and respond with valid JSON only.`

	analysisHeader = `Analyze this sales call and score it against the rubric below.

Agent: %s
Call date: %s
Duration: %s
Customer talk ratio: %.0f%%
Agent talk ratio: %.0f%%`

	rubricHeader = "SCORING RUBRIC (score each category 1-5):"

	redFlagHeader = "RED FLAGS (report the flag key of every flag you detect):"

	schemaHeader = `Respond with JSON exactly matching this shape:`

	transcriptHeader = "TRANSCRIPT:"
)

// Performance level names, best first.
const (
	LevelTopPerformer     = "Top Performer"
	LevelSolidPerformer   = "Solid Performer"
	LevelDeveloping       = "Developing"
	LevelNeedsCoaching    = "Needs Coaching"
	LevelPerformanceIssue = "Performance Issue"
)
