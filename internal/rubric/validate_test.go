package rubric_test

import (
	"testing"

	"sales-coach-assistant/internal/rubric"
)

func cat(slug string, weight float64, enabled bool) rubric.Category {
	return rubric.Category{Slug: slug, Weight: weight, IsEnabled: enabled}
}

func TestValidateCategoryWeights(t *testing.T) {
	tests := []struct {
		name          string
		categories    []rubric.Category
		wantValid     bool
		wantTotal     float64
		wantRemaining float64
		wantMessage   string
	}{
		{
			name: "Exact Hundred",
			categories: []rubric.Category{
				cat("discovery", 40, true),
				cat("objections", 35, true),
				cat("closing", 25, true),
			},
			wantValid:     true,
			wantTotal:     100,
			wantRemaining: 0,
		},
		{
			name: "Five Percent Remaining",
			categories: []rubric.Category{
				cat("discovery", 40, true),
				cat("objections", 35, true),
				cat("closing", 20, true),
			},
			wantValid:     false,
			wantTotal:     95,
			wantRemaining: 5,
			wantMessage:   "5% remaining to allocate",
		},
		{
			name: "Over The Limit",
			categories: []rubric.Category{
				cat("discovery", 60, true),
				cat("objections", 50, true),
			},
			wantValid:     false,
			wantTotal:     110,
			wantRemaining: -10,
			wantMessage:   "10% over the limit",
		},
		{
			name: "Disabled Categories Ignored",
			categories: []rubric.Category{
				cat("discovery", 60, true),
				cat("objections", 99, false),
				cat("closing", 40, true),
			},
			wantValid:     true,
			wantTotal:     100,
			wantRemaining: 0,
		},
		{
			name: "Within Tolerance",
			categories: []rubric.Category{
				cat("discovery", 33.33, true),
				cat("objections", 33.33, true),
				cat("closing", 33.34, true),
			},
			wantValid:     true,
			wantTotal:     100,
			wantRemaining: 0,
		},
		{
			name: "Sub-Tolerance Shortfall Valid",
			categories: []rubric.Category{
				cat("discovery", 33.33, true),
				cat("objections", 33.33, true),
				cat("closing", 33.332, true),
			},
			wantValid:     true,
			wantTotal:     99.99,
			wantRemaining: 0.01,
		},
		{
			name: "Sub-Tolerance Overshoot Valid",
			categories: []rubric.Category{
				cat("discovery", 33.34, true),
				cat("objections", 33.34, true),
				cat("closing", 33.328, true),
			},
			wantValid:     true,
			wantTotal:     100.01,
			wantRemaining: -0.01,
		},
		{
			name: "Just Outside Tolerance Fails",
			categories: []rubric.Category{
				cat("discovery", 50, true),
				cat("objections", 49.98, true),
			},
			wantValid:     false,
			wantTotal:     99.98,
			wantRemaining: 0.02,
			wantMessage:   "0.02% remaining to allocate",
		},
		{
			name:          "Empty Set Always Fails",
			categories:    nil,
			wantValid:     false,
			wantTotal:     0,
			wantRemaining: 100,
			wantMessage:   "100% remaining to allocate",
		},
		{
			name: "Fractional Remaining",
			categories: []rubric.Category{
				cat("discovery", 50, true),
				cat("objections", 47.5, true),
			},
			wantValid:     false,
			wantTotal:     97.5,
			wantRemaining: 2.5,
			wantMessage:   "2.5% remaining to allocate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rubric.ValidateCategoryWeights(tt.categories)

			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.wantValid)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestEnabledCategories(t *testing.T) {
	cfg := rubric.Config{
		Categories: []rubric.Category{
			{Slug: "closing", Weight: 40, SortOrder: 3, IsEnabled: true},
			{Slug: "discovery", Weight: 60, SortOrder: 1, IsEnabled: true},
			{Slug: "filler", Weight: 40, SortOrder: 2, IsEnabled: false},
		},
	}

	got := cfg.EnabledCategories()
	if len(got) != 2 {
		t.Fatalf("expected 2 enabled categories, got %d", len(got))
	}
	if got[0].Slug != "discovery" || got[1].Slug != "closing" {
		t.Errorf("unexpected order: %s, %s", got[0].Slug, got[1].Slug)
	}
}
