package repository

import "sales-coach-assistant/internal/rubric"

// CreateConfigOptions holds parameters for inserting a new draft config.
type CreateConfigOptions struct {
	ID         string
	Name       string
	Version    int
	Categories []rubric.Category
	RedFlags   []rubric.RedFlag
}

// UpdateConfigOptions holds parameters for replacing a draft config's content.
type UpdateConfigOptions struct {
	ID         string
	Name       string
	Categories []rubric.Category
	RedFlags   []rubric.RedFlag
}
