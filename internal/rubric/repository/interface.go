package repository

import (
	"context"

	"sales-coach-assistant/internal/rubric"
)

// Repository defines all data access methods for rubric configurations.
type Repository interface {
	// CreateConfig inserts a new draft config row.
	CreateConfig(ctx context.Context, opt CreateConfigOptions) (rubric.Config, error)

	// GetConfig fetches one config by ID. Returns zero-value Config
	// (ID == "") when not found.
	GetConfig(ctx context.Context, id string) (rubric.Config, error)

	// GetActiveConfig fetches the single active config. Returns zero-value
	// Config when none is active.
	GetActiveConfig(ctx context.Context) (rubric.Config, error)

	// ListConfigs returns all configs ordered by version descending.
	ListConfigs(ctx context.Context) ([]rubric.Config, error)

	// MaxVersion returns the highest version number across all configs,
	// 0 when the table is empty.
	MaxVersion(ctx context.Context) (int, error)

	// UpdateConfig replaces the mutable content of a config row.
	UpdateConfig(ctx context.Context, opt UpdateConfigOptions) (rubric.Config, error)

	// ActivateConfig atomically demotes the current active config and
	// promotes the given one. Returns the promoted config.
	ActivateConfig(ctx context.Context, id string) (rubric.Config, error)

	// DeleteConfig removes a config row by ID.
	DeleteConfig(ctx context.Context, id string) error
}
