package rubric

import "errors"

// Domain-specific errors for the rubric package.
var (
	ErrConfigNotFound   = errors.New("rubric config not found")
	ErrNotDraft         = errors.New("rubric config is not a draft")
	ErrAlreadyActivated = errors.New("rubric config was already activated")
	ErrNoActiveConfig   = errors.New("no active rubric config")
	ErrInvalidWeights   = errors.New("enabled category weights must total 100")
	ErrEmptyName        = errors.New("config name is empty")
)
