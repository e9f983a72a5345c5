package rubric

import "time"

// Severity tiers for red flags, ordered critical > high > medium.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// ThresholdType describes how a red flag threshold is evaluated.
type ThresholdType string

const (
	ThresholdBoolean    ThresholdType = "boolean"
	ThresholdPercentage ThresholdType = "percentage"
)

// Criterion describes what a given integer score (1-5) means for a category.
type Criterion struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Category is one weighted scoring dimension of a rubric.
type Category struct {
	Slug            string      `json:"slug"`
	Name            string      `json:"name"`
	Weight          float64     `json:"weight"` // Percent, 0-100
	SortOrder       int         `json:"sort_order"`
	IsEnabled       bool        `json:"is_enabled"`
	ScoringCriteria []Criterion `json:"scoring_criteria"` // One per score 1-5
}

// RedFlag is a severity-tagged condition checked independently of the
// weighted score.
type RedFlag struct {
	FlagKey        string        `json:"flag_key"`
	DisplayName    string        `json:"display_name"`
	Description    string        `json:"description"`
	Severity       Severity      `json:"severity"`
	ThresholdType  ThresholdType `json:"threshold_type"`
	ThresholdValue *float64      `json:"threshold_value,omitempty"`
	IsEnabled      bool          `json:"is_enabled"`
	SortOrder      int           `json:"sort_order"`
}

// Config is one versioned rubric configuration. At most one config is
// active system-wide. A config is editable only while IsDraft; activation
// is a one-way transition that demotes the previously active version.
type Config struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Version     int        `json:"version"`
	IsActive    bool       `json:"is_active"`
	IsDraft     bool       `json:"is_draft"`
	Categories  []Category `json:"categories"`
	RedFlags    []RedFlag  `json:"red_flags"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"` // nil if never activated
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EnabledCategories returns the enabled categories ordered by SortOrder.
func (c Config) EnabledCategories() []Category {
	out := make([]Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.IsEnabled {
			out = append(out, cat)
		}
	}
	sortCategories(out)
	return out
}

// WeightValidation is the result of checking that enabled category weights
// total 100 percent.
type WeightValidation struct {
	IsValid   bool    `json:"is_valid"`
	Total     float64 `json:"total"`     // Rounded to 2 decimals
	Remaining float64 `json:"remaining"` // 100 - Total, rounded to 2 decimals
	Message   string  `json:"message,omitempty"`
}

// CreateInput is the input for creating a new draft config.
type CreateInput struct {
	Name       string
	Categories []Category
	RedFlags   []RedFlag
}

// UpdateInput is the input for editing an existing draft config.
type UpdateInput struct {
	ID         string
	Name       string
	Categories []Category
	RedFlags   []RedFlag
}
