package rubric

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

const weightTolerance = 0.01

// ValidateCategoryWeights checks that the weights of enabled categories sum
// to 100 within a 0.01 tolerance. It is called before both create and update
// of a config and has no side effects. An empty (or fully disabled) category
// set always fails with 100% remaining.
func ValidateCategoryWeights(categories []Category) WeightValidation {
	var total float64
	for _, cat := range categories {
		if cat.IsEnabled {
			total += cat.Weight
		}
	}

	// Tolerance applies to the exact remainder; rounding is display-only.
	remaining := 100 - total

	v := WeightValidation{
		Total:     round2(total),
		Remaining: round2(remaining),
	}

	if math.Abs(remaining) < weightTolerance {
		v.IsValid = true
		return v
	}

	if remaining > 0 {
		v.Message = fmt.Sprintf("%s%% remaining to allocate", formatPercent(v.Remaining))
	} else {
		v.Message = fmt.Sprintf("%s%% over the limit", formatPercent(-v.Remaining))
	}
	return v
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// formatPercent renders a rounded percentage without trailing zeros,
// so 5.00 prints as "5" and 2.50 as "2.5".
func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortCategories(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].SortOrder < cats[j].SortOrder
	})
}
