package rubric

import "context"

// UseCase defines the business logic interface for the rubric domain.
type UseCase interface {
	// CreateDraft validates weights and creates a new draft config with
	// version = prior max + 1.
	CreateDraft(ctx context.Context, input CreateInput) (Config, error)

	// UpdateDraft validates weights and replaces the content of an existing
	// draft config. Activated configs are immutable.
	UpdateDraft(ctx context.Context, input UpdateInput) (Config, error)

	// Activate promotes a draft config to active, demoting any previously
	// active version. Activation is terminal: the config can never be
	// edited or deleted afterwards.
	Activate(ctx context.Context, id string) (Config, error)

	// Delete removes a config that is still a draft and was never activated.
	Delete(ctx context.Context, id string) error

	// Get returns one config by ID.
	Get(ctx context.Context, id string) (Config, error)

	// List returns all configs, newest version first.
	List(ctx context.Context) ([]Config, error)

	// GetActive returns the currently active config, or ErrNoActiveConfig.
	GetActive(ctx context.Context) (Config, error)

	// ValidateWeights checks a category set without persisting anything.
	ValidateWeights(ctx context.Context, categories []Category) WeightValidation
}
