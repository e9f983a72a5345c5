package prompt_test

import (
	"strings"
	"testing"

	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/internal/rubric/prompt"
)

func TestFormulaText(t *testing.T) {
	t.Run("Enabled Categories In Sort Order", func(t *testing.T) {
		cats := []rubric.Category{
			{Slug: "a", Weight: 60, SortOrder: 1, IsEnabled: true},
			{Slug: "b", Weight: 40, SortOrder: 2, IsEnabled: false},
			{Slug: "c", Weight: 40, SortOrder: 3, IsEnabled: true},
		}

		got := prompt.FormulaText(cats)
		want := "a × 0.60 + c × 0.40"
		if got != want {
			t.Errorf("FormulaText() = %q, want %q", got, want)
		}
	})

	t.Run("Sort Order Beats Slice Order", func(t *testing.T) {
		cats := []rubric.Category{
			{Slug: "closing", Weight: 30, SortOrder: 2, IsEnabled: true},
			{Slug: "discovery", Weight: 70, SortOrder: 1, IsEnabled: true},
		}

		got := prompt.FormulaText(cats)
		want := "discovery × 0.70 + closing × 0.30"
		if got != want {
			t.Errorf("FormulaText() = %q, want %q", got, want)
		}
	})

	t.Run("Fractional Weight", func(t *testing.T) {
		cats := []rubric.Category{
			{Slug: "a", Weight: 12.5, SortOrder: 1, IsEnabled: true},
			{Slug: "b", Weight: 87.5, SortOrder: 2, IsEnabled: true},
		}

		got := prompt.FormulaText(cats)
		want := "a × 0.13 + b × 0.88"
		if got != want {
			t.Errorf("FormulaText() = %q, want %q", got, want)
		}
	})
}

func TestPerformanceLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{5.0, "Top Performer"},
		{4.5, "Top Performer"},
		{4.49, "Solid Performer"},
		{3.5, "Solid Performer"},
		{3.49, "Developing"},
		{2.5, "Developing"},
		{2.49, "Needs Coaching"},
		{1.5, "Needs Coaching"},
		{1.49, "Performance Issue"},
		{1.0, "Performance Issue"},
	}

	for _, tt := range tests {
		if got := prompt.PerformanceLevel(tt.score); got != tt.want {
			t.Errorf("PerformanceLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCompile(t *testing.T) {
	longDesc := strings.Repeat("x", 200)

	cfg := rubric.Config{
		ID:      "cfg-1",
		Version: 3,
		Categories: []rubric.Category{
			{
				Slug: "discovery", Name: "Discovery", Weight: 60, SortOrder: 1, IsEnabled: true,
				ScoringCriteria: []rubric.Criterion{
					{Score: 1, Description: "no questions"},
					{Score: 2, Description: "few questions"},
					{Score: 3, Description: "basic questions"},
					{Score: 4, Description: "good questions"},
					{Score: 5, Description: longDesc},
				},
			},
			{
				Slug: "closing", Name: "Closing", Weight: 40, SortOrder: 2, IsEnabled: true,
				ScoringCriteria: []rubric.Criterion{
					{Score: 5, Description: "strong close"},
				},
			},
			{Slug: "disabled_cat", Name: "Off", Weight: 50, SortOrder: 3, IsEnabled: false},
		},
		RedFlags: []rubric.RedFlag{
			{FlagKey: "rude_behavior", DisplayName: "Rude", Description: "rude to customer", Severity: rubric.SeverityHigh, IsEnabled: true, SortOrder: 1},
			{FlagKey: "compliance_violation", DisplayName: "Compliance", Description: "policy breach", Severity: rubric.SeverityCritical, IsEnabled: true, SortOrder: 2},
			{FlagKey: "off_flag", DisplayName: "Off", Description: "disabled", Severity: rubric.SeverityMedium, IsEnabled: false, SortOrder: 3},
		},
	}

	vars := prompt.CallVariables{
		AgentName:         "Bradley",
		CallDate:          "2026-08-12",
		Duration:          "23m",
		CustomerTalkRatio: 0.55,
		AgentTalkRatio:    0.45,
		Transcript:        "AGENT: Hello...",
	}

	compiled := prompt.Compile(cfg, vars)

	t.Run("Carries Config Identity", func(t *testing.T) {
		if compiled.ConfigID != "cfg-1" || compiled.ConfigVersion != 3 {
			t.Errorf("config identity = %s v%d, want cfg-1 v3", compiled.ConfigID, compiled.ConfigVersion)
		}
	})

	t.Run("Formula Present", func(t *testing.T) {
		if !strings.Contains(compiled.AnalysisPrompt, "discovery × 0.60 + closing × 0.40") {
			t.Errorf("analysis prompt missing formula:\n%s", compiled.AnalysisPrompt)
		}
	})

	t.Run("Top Three Criteria Only", func(t *testing.T) {
		if strings.Contains(compiled.AnalysisPrompt, "few questions") {
			t.Errorf("score-2 criterion should have been dropped")
		}
		if strings.Contains(compiled.AnalysisPrompt, "no questions") {
			t.Errorf("score-1 criterion should have been dropped")
		}
		if !strings.Contains(compiled.AnalysisPrompt, "basic questions") {
			t.Errorf("score-3 criterion should be kept")
		}
	})

	t.Run("Long Criterion Truncated", func(t *testing.T) {
		if strings.Contains(compiled.AnalysisPrompt, longDesc) {
			t.Errorf("200-char criterion was not truncated")
		}
		if !strings.Contains(compiled.AnalysisPrompt, strings.Repeat("x", 150)+"...") {
			t.Errorf("truncated criterion missing ellipsis marker")
		}
	})

	t.Run("Red Flags Grouped Critical First", func(t *testing.T) {
		criticalIdx := strings.Index(compiled.AnalysisPrompt, "compliance_violation")
		highIdx := strings.Index(compiled.AnalysisPrompt, "rude_behavior")
		if criticalIdx == -1 || highIdx == -1 {
			t.Fatalf("missing red flag entries")
		}
		if criticalIdx > highIdx {
			t.Errorf("critical flag should be listed before high flag")
		}
		if strings.Contains(compiled.AnalysisPrompt, "off_flag") {
			t.Errorf("disabled flag should be omitted")
		}
	})

	t.Run("Schema Lists Enabled Slugs Only", func(t *testing.T) {
		if !strings.Contains(compiled.AnalysisPrompt, `"discovery": <1-5>`) {
			t.Errorf("schema missing discovery score field")
		}
		if strings.Contains(compiled.AnalysisPrompt, `"disabled_cat"`) {
			t.Errorf("schema should not list disabled categories")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again := prompt.Compile(cfg, vars)
		if again.AnalysisPrompt != compiled.AnalysisPrompt || again.SystemPrompt != compiled.SystemPrompt {
			t.Errorf("identical inputs produced different prompts")
		}
	})
}

func TestCompileOmitsEmptyRedFlagSection(t *testing.T) {
	cfg := rubric.Config{
		Categories: []rubric.Category{
			{Slug: "a", Weight: 100, SortOrder: 1, IsEnabled: true},
		},
	}

	compiled := prompt.Compile(cfg, prompt.CallVariables{})
	if strings.Contains(compiled.AnalysisPrompt, "RED FLAGS") {
		t.Errorf("red flag section should be omitted when no flags are enabled")
	}
}

func TestStaticConfig(t *testing.T) {
	cfg := prompt.StaticConfig()

	t.Run("Weights Total Hundred", func(t *testing.T) {
		v := rubric.ValidateCategoryWeights(cfg.Categories)
		if !v.IsValid {
			t.Errorf("static config weights invalid: %s", v.Message)
		}
	})

	t.Run("Six Categories", func(t *testing.T) {
		if len(cfg.Categories) != 6 {
			t.Errorf("static config has %d categories, want 6", len(cfg.Categories))
		}
	})

	t.Run("No Stored Identity", func(t *testing.T) {
		compiled := prompt.CompileStatic(prompt.CallVariables{Transcript: "hi"})
		if compiled.ConfigID != "" || compiled.ConfigVersion != 0 {
			t.Errorf("static compile should carry empty config identity")
		}
	})
}
