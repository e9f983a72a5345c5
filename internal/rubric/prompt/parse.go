package prompt

import (
	"errors"
	"fmt"

	"sales-coach-assistant/internal/rubric"
)

// ValidateAnalysis checks a decoded model response against the config it was
// compiled from. The response is untrusted input: every enabled category must
// carry an integer score 1-5 and the overall score must be in [1, 5]. The
// performance level is recomputed from the overall score so the band always
// matches the fixed table, whatever the model claimed. Nil list fields are
// normalized to empty slices.
func ValidateAnalysis(a *CoachingAnalysis, cfg rubric.Config) error {
	if a == nil {
		return errors.New("analysis is nil")
	}
	if a.Scores == nil {
		return errors.New("analysis missing scores object")
	}

	for _, cat := range cfg.EnabledCategories() {
		score, ok := a.Scores[cat.Slug]
		if !ok {
			return fmt.Errorf("analysis missing score for category %q", cat.Slug)
		}
		if score < 1 || score > 5 {
			return fmt.Errorf("score for category %q out of range: %d", cat.Slug, score)
		}
	}

	if a.OverallScore < 1 || a.OverallScore > 5 {
		return fmt.Errorf("overall score out of range: %g", a.OverallScore)
	}
	a.PerformanceLevel = PerformanceLevel(a.OverallScore)

	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	if a.Improvements == nil {
		a.Improvements = []string{}
	}
	if a.ActionItems == nil {
		a.ActionItems = []string{}
	}
	if a.RedFlags.Critical == nil {
		a.RedFlags.Critical = []string{}
	}
	if a.RedFlags.High == nil {
		a.RedFlags.High = []string{}
	}
	if a.RedFlags.Medium == nil {
		a.RedFlags.Medium = []string{}
	}
	if a.NotableMoments == nil {
		a.NotableMoments = []NotableMoment{}
	}
	return nil
}

// HasCriticalFlags reports whether any critical red flag was detected.
func (a CoachingAnalysis) HasCriticalFlags() bool {
	return len(a.RedFlags.Critical) > 0
}
