package prompt

import "sales-coach-assistant/internal/rubric"

// StaticConfig is the built-in rubric used when no active config exists.
// It carries the same six category slugs the analysis shape expects, so
// parsing stays valid either way. ID is empty and version is 0 to mark the
// analysis as produced without a stored config.
func StaticConfig() rubric.Config {
	return rubric.Config{
		Name:       "Built-in default rubric",
		Categories: staticCategories(),
		RedFlags:   staticRedFlags(),
	}
}

// CompileStatic renders prompts from the built-in rubric.
func CompileStatic(vars CallVariables) Compiled {
	return Compile(StaticConfig(), vars)
}

func staticCategories() []rubric.Category {
	return []rubric.Category{
		{
			Slug: "rapport_building", Name: "Rapport Building", Weight: 15, SortOrder: 1, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "Cold, transactional open with no attempt to connect"},
				{Score: 2, Description: "Generic greeting, no personalization"},
				{Score: 3, Description: "Friendly open but rapport fades during the call"},
				{Score: 4, Description: "Warm, personalized open sustained through the call"},
				{Score: 5, Description: "Builds genuine connection the customer reciprocates"},
			},
		},
		{
			Slug: "needs_discovery", Name: "Needs Discovery", Weight: 20, SortOrder: 2, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "No discovery questions asked"},
				{Score: 2, Description: "Only surface-level or yes/no questions"},
				{Score: 3, Description: "Covers basic needs but misses follow-ups"},
				{Score: 4, Description: "Open questions that uncover the real need"},
				{Score: 5, Description: "Layered questioning that surfaces needs the customer had not articulated"},
			},
		},
		{
			Slug: "product_presentation", Name: "Product Presentation", Weight: 20, SortOrder: 3, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "Feature dump unrelated to the customer's situation"},
				{Score: 2, Description: "Accurate but generic pitch"},
				{Score: 3, Description: "Some tailoring to stated needs"},
				{Score: 4, Description: "Benefits tied directly to discovered needs"},
				{Score: 5, Description: "Compelling, need-anchored story the customer engages with"},
			},
		},
		{
			Slug: "objection_handling", Name: "Objection Handling", Weight: 15, SortOrder: 4, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "Ignores or argues with objections"},
				{Score: 2, Description: "Acknowledges but deflects without answering"},
				{Score: 3, Description: "Answers objections adequately"},
				{Score: 4, Description: "Acknowledges, clarifies, and resolves objections"},
				{Score: 5, Description: "Turns objections into reasons to move forward"},
			},
		},
		{
			Slug: "closing_effectiveness", Name: "Closing Effectiveness", Weight: 20, SortOrder: 5, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "No ask, call ends without direction"},
				{Score: 2, Description: "Vague next steps, nothing committed"},
				{Score: 3, Description: "Asks for the sale or next step once"},
				{Score: 4, Description: "Clear ask with a confirmed next step"},
				{Score: 5, Description: "Natural close with commitment and a scheduled follow-up"},
			},
		},
		{
			Slug: "call_professionalism", Name: "Call Professionalism", Weight: 10, SortOrder: 6, IsEnabled: true,
			ScoringCriteria: []rubric.Criterion{
				{Score: 1, Description: "Unprofessional tone or conduct"},
				{Score: 2, Description: "Frequent interruptions or filler"},
				{Score: 3, Description: "Generally professional with lapses"},
				{Score: 4, Description: "Consistently courteous and prepared"},
				{Score: 5, Description: "Exemplary conduct throughout"},
			},
		},
	}
}

func staticRedFlags() []rubric.RedFlag {
	pct := func(v float64) *float64 { return &v }
	return []rubric.RedFlag{
		{
			FlagKey: "compliance_violation", DisplayName: "Compliance Violation",
			Description: "Agent makes claims or promises that violate policy or regulation",
			Severity:    rubric.SeverityCritical, ThresholdType: rubric.ThresholdBoolean,
			IsEnabled: true, SortOrder: 1,
		},
		{
			FlagKey: "misleading_claim", DisplayName: "Misleading Claim",
			Description: "Agent states something factually wrong about the product or pricing",
			Severity:    rubric.SeverityCritical, ThresholdType: rubric.ThresholdBoolean,
			IsEnabled: true, SortOrder: 2,
		},
		{
			FlagKey: "rude_behavior", DisplayName: "Rude Behavior",
			Description: "Agent is dismissive, condescending, or argumentative with the customer",
			Severity:    rubric.SeverityHigh, ThresholdType: rubric.ThresholdBoolean,
			IsEnabled: true, SortOrder: 3,
		},
		{
			FlagKey: "no_next_steps", DisplayName: "No Next Steps",
			Description: "Call ends without any agreed follow-up or close attempt",
			Severity:    rubric.SeverityHigh, ThresholdType: rubric.ThresholdBoolean,
			IsEnabled: true, SortOrder: 4,
		},
		{
			FlagKey: "excessive_talking", DisplayName: "Excessive Talking",
			Description: "Agent dominates the conversation instead of listening",
			Severity:    rubric.SeverityMedium, ThresholdType: rubric.ThresholdPercentage,
			ThresholdValue: pct(70), IsEnabled: true, SortOrder: 5,
		},
	}
}
