package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sales-coach-assistant/internal/rubric"
	repo "sales-coach-assistant/internal/rubric/repository"
)

// CreateDraft validates weights and creates a new draft config with
// version = prior max + 1.
func (uc *implUseCase) CreateDraft(ctx context.Context, input rubric.CreateInput) (rubric.Config, error) {
	if strings.TrimSpace(input.Name) == "" {
		return rubric.Config{}, rubric.ErrEmptyName
	}

	if v := rubric.ValidateCategoryWeights(input.Categories); !v.IsValid {
		return rubric.Config{}, fmt.Errorf("%w: %s", rubric.ErrInvalidWeights, v.Message)
	}

	maxVersion, err := uc.repo.MaxVersion(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateDraft MaxVersion: %v", err)
		return rubric.Config{}, err
	}

	cfg, err := uc.repo.CreateConfig(ctx, repo.CreateConfigOptions{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Version:    maxVersion + 1,
		Categories: input.Categories,
		RedFlags:   input.RedFlags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateDraft CreateConfig: %v", err)
		return rubric.Config{}, err
	}
	return cfg, nil
}

// UpdateDraft validates weights and replaces the content of a draft config.
func (uc *implUseCase) UpdateDraft(ctx context.Context, input rubric.UpdateInput) (rubric.Config, error) {
	if strings.TrimSpace(input.Name) == "" {
		return rubric.Config{}, rubric.ErrEmptyName
	}

	existing, err := uc.repo.GetConfig(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDraft GetConfig: %v", err)
		return rubric.Config{}, err
	}
	if existing.ID == "" {
		return rubric.Config{}, rubric.ErrConfigNotFound
	}
	if !existing.IsDraft {
		return rubric.Config{}, rubric.ErrNotDraft
	}

	if v := rubric.ValidateCategoryWeights(input.Categories); !v.IsValid {
		return rubric.Config{}, fmt.Errorf("%w: %s", rubric.ErrInvalidWeights, v.Message)
	}

	cfg, err := uc.repo.UpdateConfig(ctx, repo.UpdateConfigOptions{
		ID:         input.ID,
		Name:       input.Name,
		Categories: input.Categories,
		RedFlags:   input.RedFlags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDraft UpdateConfig: %v", err)
		return rubric.Config{}, err
	}
	return cfg, nil
}

// Activate promotes a draft config to active, demoting any previously active
// version. The config must still be a draft and must pass weight validation.
func (uc *implUseCase) Activate(ctx context.Context, id string) (rubric.Config, error) {
	existing, err := uc.repo.GetConfig(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Activate GetConfig: %v", err)
		return rubric.Config{}, err
	}
	if existing.ID == "" {
		return rubric.Config{}, rubric.ErrConfigNotFound
	}
	if existing.ActivatedAt != nil {
		return rubric.Config{}, rubric.ErrAlreadyActivated
	}
	if !existing.IsDraft {
		return rubric.Config{}, rubric.ErrNotDraft
	}

	if v := rubric.ValidateCategoryWeights(existing.Categories); !v.IsValid {
		return rubric.Config{}, fmt.Errorf("%w: %s", rubric.ErrInvalidWeights, v.Message)
	}

	cfg, err := uc.repo.ActivateConfig(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Activate ActivateConfig: %v", err)
		return rubric.Config{}, err
	}
	if cfg.ID == "" {
		return rubric.Config{}, rubric.ErrConfigNotFound
	}

	uc.l.Infof(ctx, "rubric config %s activated (version %d)", cfg.ID, cfg.Version)
	return cfg, nil
}

// Delete removes a config that is still a draft and was never activated.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetConfig(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetConfig: %v", err)
		return err
	}
	if existing.ID == "" {
		return rubric.ErrConfigNotFound
	}
	if existing.ActivatedAt != nil || !existing.IsDraft {
		return rubric.ErrAlreadyActivated
	}

	if err := uc.repo.DeleteConfig(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteConfig: %v", err)
		return err
	}
	return nil
}

// Get returns one config by ID.
func (uc *implUseCase) Get(ctx context.Context, id string) (rubric.Config, error) {
	cfg, err := uc.repo.GetConfig(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetConfig: %v", err)
		return rubric.Config{}, err
	}
	if cfg.ID == "" {
		return rubric.Config{}, rubric.ErrConfigNotFound
	}
	return cfg, nil
}

// List returns all configs, newest version first.
func (uc *implUseCase) List(ctx context.Context) ([]rubric.Config, error) {
	configs, err := uc.repo.ListConfigs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListConfigs: %v", err)
		return nil, err
	}
	return configs, nil
}

// GetActive returns the currently active config.
func (uc *implUseCase) GetActive(ctx context.Context) (rubric.Config, error) {
	cfg, err := uc.repo.GetActiveConfig(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetActive GetActiveConfig: %v", err)
		return rubric.Config{}, err
	}
	if cfg.ID == "" {
		return rubric.Config{}, rubric.ErrNoActiveConfig
	}
	return cfg, nil
}

// ValidateWeights checks a category set without persisting anything.
func (uc *implUseCase) ValidateWeights(_ context.Context, categories []rubric.Category) rubric.WeightValidation {
	return rubric.ValidateCategoryWeights(categories)
}
