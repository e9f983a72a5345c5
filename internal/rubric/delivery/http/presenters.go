package http

import (
	"time"

	"sales-coach-assistant/internal/rubric"
)

// --- Request DTOs ---

type criterionReq struct {
	Score       int    `json:"score"       binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"required,max=1000"`
}

type categoryReq struct {
	Slug            string         `json:"slug"       binding:"required,min=1,max=100"`
	Name            string         `json:"name"       binding:"required,min=1,max=255"`
	Weight          float64        `json:"weight"     binding:"min=0,max=100"`
	SortOrder       int            `json:"sort_order"`
	IsEnabled       *bool          `json:"is_enabled"` // default true
	ScoringCriteria []criterionReq `json:"scoring_criteria" binding:"omitempty,max=5,dive"`
}

func (r categoryReq) toCategory() rubric.Category {
	enabled := true
	if r.IsEnabled != nil {
		enabled = *r.IsEnabled
	}
	criteria := make([]rubric.Criterion, len(r.ScoringCriteria))
	for i, c := range r.ScoringCriteria {
		criteria[i] = rubric.Criterion{Score: c.Score, Description: c.Description}
	}
	return rubric.Category{
		Slug:            r.Slug,
		Name:            r.Name,
		Weight:          r.Weight,
		SortOrder:       r.SortOrder,
		IsEnabled:       enabled,
		ScoringCriteria: criteria,
	}
}

type redFlagReq struct {
	FlagKey        string   `json:"flag_key"       binding:"required,min=1,max=100"`
	DisplayName    string   `json:"display_name"   binding:"required,min=1,max=255"`
	Description    string   `json:"description"    binding:"max=1000"`
	Severity       string   `json:"severity"       binding:"required,oneof=critical high medium"`
	ThresholdType  string   `json:"threshold_type" binding:"required,oneof=boolean percentage"`
	ThresholdValue *float64 `json:"threshold_value"`
	IsEnabled      *bool    `json:"is_enabled"` // default true
	SortOrder      int      `json:"sort_order"`
}

func (r redFlagReq) toRedFlag() rubric.RedFlag {
	enabled := true
	if r.IsEnabled != nil {
		enabled = *r.IsEnabled
	}
	return rubric.RedFlag{
		FlagKey:        r.FlagKey,
		DisplayName:    r.DisplayName,
		Description:    r.Description,
		Severity:       rubric.Severity(r.Severity),
		ThresholdType:  rubric.ThresholdType(r.ThresholdType),
		ThresholdValue: r.ThresholdValue,
		IsEnabled:      enabled,
		SortOrder:      r.SortOrder,
	}
}

// ---

type createReq struct {
	Name       string        `json:"name"       binding:"required,min=1,max=255"`
	Categories []categoryReq `json:"categories" binding:"dive"`
	RedFlags   []redFlagReq  `json:"red_flags"  binding:"omitempty,dive"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() rubric.CreateInput {
	return rubric.CreateInput{
		Name:       r.Name,
		Categories: toCategories(r.Categories),
		RedFlags:   toRedFlags(r.RedFlags),
	}
}

type updateReq struct {
	ID         string        `json:"-"` // populated from URI param
	Name       string        `json:"name"       binding:"required,min=1,max=255"`
	Categories []categoryReq `json:"categories" binding:"dive"`
	RedFlags   []redFlagReq  `json:"red_flags"  binding:"omitempty,dive"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() rubric.UpdateInput {
	return rubric.UpdateInput{
		ID:         r.ID,
		Name:       r.Name,
		Categories: toCategories(r.Categories),
		RedFlags:   toRedFlags(r.RedFlags),
	}
}

type validateWeightsReq struct {
	Categories []categoryReq `json:"categories" binding:"dive"`
}

func (r validateWeightsReq) validate() error { return nil }

func toCategories(reqs []categoryReq) []rubric.Category {
	cats := make([]rubric.Category, len(reqs))
	for i, r := range reqs {
		cats[i] = r.toCategory()
	}
	return cats
}

func toRedFlags(reqs []redFlagReq) []rubric.RedFlag {
	flags := make([]rubric.RedFlag, len(reqs))
	for i, r := range reqs {
		flags[i] = r.toRedFlag()
	}
	return flags
}

// --- Response DTOs ---

type configResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Version     int               `json:"version"`
	IsActive    bool              `json:"is_active"`
	IsDraft     bool              `json:"is_draft"`
	Categories  []rubric.Category `json:"categories"`
	RedFlags    []rubric.RedFlag  `json:"red_flags"`
	ActivatedAt *time.Time        `json:"activated_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func newConfigResp(cfg rubric.Config) configResp {
	return configResp{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Version:     cfg.Version,
		IsActive:    cfg.IsActive,
		IsDraft:     cfg.IsDraft,
		Categories:  cfg.Categories,
		RedFlags:    cfg.RedFlags,
		ActivatedAt: cfg.ActivatedAt,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

type listResp struct {
	Configs []configResp `json:"configs"`
	Count   int          `json:"count"`
}

func (h *handler) newListResp(configs []rubric.Config) listResp {
	out := make([]configResp, len(configs))
	for i, cfg := range configs {
		out[i] = newConfigResp(cfg)
	}
	return listResp{Configs: out, Count: len(out)}
}

type weightValidationResp struct {
	IsValid   bool    `json:"is_valid"`
	Total     float64 `json:"total"`
	Remaining float64 `json:"remaining"`
	Message   string  `json:"message,omitempty"`
}

func newWeightValidationResp(v rubric.WeightValidation) weightValidationResp {
	return weightValidationResp{
		IsValid:   v.IsValid,
		Total:     v.Total,
		Remaining: v.Remaining,
		Message:   v.Message,
	}
}
