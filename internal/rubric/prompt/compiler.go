package prompt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sales-coach-assistant/internal/rubric"
)

// Compile deterministically renders the system and analysis prompts for one
// rubric config and one call. The same config and variables always produce
// byte-identical output.
func Compile(cfg rubric.Config, vars CallVariables) Compiled {
	enabled := cfg.EnabledCategories()

	sections := []string{
		fmt.Sprintf(analysisHeader,
			vars.AgentName, vars.CallDate, vars.Duration,
			vars.CustomerTalkRatio*100, vars.AgentTalkRatio*100),
		rubricSection(enabled),
		"Overall score = " + FormulaText(cfg.Categories),
		bandingSection(),
	}

	if flags := redFlagSection(cfg.RedFlags); flags != "" {
		sections = append(sections, flags)
	}

	sections = append(sections,
		schemaHeader+"\n"+schemaText(enabled),
		transcriptHeader+"\n"+vars.Transcript,
	)

	return Compiled{
		SystemPrompt:   SystemFraming,
		AnalysisPrompt: strings.Join(sections, "\n\n"),
		ConfigID:       cfg.ID,
		ConfigVersion:  cfg.Version,
	}
}

// FormulaText renders the weighted-average formula over enabled categories in
// sort_order, with weights as fractions of 1 to two decimal places,
// e.g. "discovery × 0.40 + closing × 0.60".
func FormulaText(categories []rubric.Category) string {
	enabled := make([]rubric.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.IsEnabled {
			enabled = append(enabled, cat)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].SortOrder < enabled[j].SortOrder
	})

	terms := make([]string, 0, len(enabled))
	for _, cat := range enabled {
		terms = append(terms, fmt.Sprintf("%s × %.2f", cat.Slug, cat.Weight/100))
	}
	return strings.Join(terms, " + ")
}

// PerformanceLevel maps an overall score to its fixed band. Scores outside
// [1.0, 5.0] are out of contract; anything below 1.5 reports the lowest band.
func PerformanceLevel(score float64) string {
	switch {
	case score >= 4.5:
		return LevelTopPerformer
	case score >= 3.5:
		return LevelSolidPerformer
	case score >= 2.5:
		return LevelDeveloping
	case score >= 1.5:
		return LevelNeedsCoaching
	default:
		return LevelPerformanceIssue
	}
}

// rubricSection renders the scoring rubric for the enabled categories,
// assumed already ordered by sort_order.
func rubricSection(enabled []rubric.Category) string {
	var b strings.Builder
	b.WriteString(rubricHeader)
	for _, cat := range enabled {
		fmt.Fprintf(&b, "\n\n%s (%s, weight %s%%):", cat.Slug, cat.Name, trimZeros(cat.Weight))
		for _, crit := range topCriteria(cat.ScoringCriteria) {
			fmt.Fprintf(&b, "\n  %d: %s", crit.Score, truncate(crit.Description))
		}
	}
	return b.String()
}

// topCriteria picks the highest-scored criteria, ties broken by original
// order.
func topCriteria(criteria []rubric.Criterion) []rubric.Criterion {
	picked := make([]rubric.Criterion, len(criteria))
	copy(picked, criteria)
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Score > picked[j].Score
	})
	if len(picked) > CriteriaPerCategory {
		picked = picked[:CriteriaPerCategory]
	}
	return picked
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= CriterionMaxChars {
		return s
	}
	return string(r[:CriterionMaxChars]) + "..."
}

// redFlagSection groups enabled flags critical first, then high, then medium.
// Empty groups are omitted; an empty result means no section at all.
func redFlagSection(flags []rubric.RedFlag) string {
	groups := map[rubric.Severity][]rubric.RedFlag{}
	for _, f := range flags {
		if f.IsEnabled {
			groups[f.Severity] = append(groups[f.Severity], f)
		}
	}
	if len(groups) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(redFlagHeader)
	for _, sev := range []rubric.Severity{rubric.SeverityCritical, rubric.SeverityHigh, rubric.SeverityMedium} {
		group := groups[sev]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortOrder < group[j].SortOrder
		})
		fmt.Fprintf(&b, "\n\n%s:", strings.ToUpper(string(sev)))
		for _, f := range group {
			fmt.Fprintf(&b, "\n- %s: %s. %s%s", f.FlagKey, f.DisplayName, f.Description, thresholdText(f))
		}
	}
	return b.String()
}

func thresholdText(f rubric.RedFlag) string {
	if f.ThresholdType == rubric.ThresholdPercentage && f.ThresholdValue != nil {
		return fmt.Sprintf(" (threshold: %s%%)", trimZeros(*f.ThresholdValue))
	}
	return ""
}

func bandingSection() string {
	return "Performance levels: " +
		"4.5-5.0 " + LevelTopPerformer + "; " +
		"3.5-4.49 " + LevelSolidPerformer + "; " +
		"2.5-3.49 " + LevelDeveloping + "; " +
		"1.5-2.49 " + LevelNeedsCoaching + "; " +
		"1.0-1.49 " + LevelPerformanceIssue + "."
}

// schemaText renders the exact JSON shape the model must return: one score
// field per enabled category slug plus the fixed analysis fields.
func schemaText(enabled []rubric.Category) string {
	scoreFields := make([]string, 0, len(enabled))
	for _, cat := range enabled {
		scoreFields = append(scoreFields, fmt.Sprintf("%q: <1-5>", cat.Slug))
	}

	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"scores\": {%s},\n", strings.Join(scoreFields, ", "))
	b.WriteString("  \"overall_score\": <weighted average, number>,\n")
	b.WriteString("  \"performance_level\": \"<band name>\",\n")
	b.WriteString("  \"strengths\": [\"...\"],\n")
	b.WriteString("  \"improvements\": [\"...\"],\n")
	b.WriteString("  \"action_items\": [\"...\"],\n")
	b.WriteString("  \"red_flags\": {\"critical\": [], \"high\": [], \"medium\": []},\n")
	b.WriteString("  \"notable_moments\": [{\"type\": \"positive|concern\", \"category\": \"<slug>\", \"description\": \"...\", \"quote\": \"...\"}]\n")
	b.WriteString("}")
	return b.String()
}

// trimZeros renders a weight or threshold without trailing zeros.
func trimZeros(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
