package usecase

import (
	"context"
	"errors"
	"testing"

	"sales-coach-assistant/internal/rubric"
)

func validCategories() []rubric.Category {
	return []rubric.Category{
		{Slug: "discovery", Name: "Discovery", Weight: 40, SortOrder: 1, IsEnabled: true},
		{Slug: "objections", Name: "Objection Handling", Weight: 35, SortOrder: 2, IsEnabled: true},
		{Slug: "closing", Name: "Closing", Weight: 25, SortOrder: 3, IsEnabled: true},
	}
}

func TestCreateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns Next Version", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		first, err := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Q1 Rubric", Categories: validCategories()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Version != 1 {
			t.Errorf("first version = %d, want 1", first.Version)
		}
		if !first.IsDraft || first.IsActive {
			t.Errorf("new config should be a non-active draft")
		}

		second, err := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Q2 Rubric", Categories: validCategories()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Version != 2 {
			t.Errorf("second version = %d, want 2", second.Version)
		}
	})

	t.Run("Rejects Invalid Weights", func(t *testing.T) {
		uc := New(newFakeRepo(), mockLogger{})

		cats := validCategories()
		cats[2].Weight = 20 // total 95

		_, err := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Bad", Categories: cats})
		if !errors.Is(err, rubric.ErrInvalidWeights) {
			t.Fatalf("expected ErrInvalidWeights, got %v", err)
		}
	})

	t.Run("Rejects Empty Name", func(t *testing.T) {
		uc := New(newFakeRepo(), mockLogger{})

		_, err := uc.CreateDraft(ctx, rubric.CreateInput{Name: "  ", Categories: validCategories()})
		if !errors.Is(err, rubric.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
	})
}

func TestUpdateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("Updates Draft Content", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		created, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Draft", Categories: validCategories()})

		updated, err := uc.UpdateDraft(ctx, rubric.UpdateInput{
			ID:         created.ID,
			Name:       "Renamed",
			Categories: validCategories(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Renamed" {
			t.Errorf("name = %q, want Renamed", updated.Name)
		}
	})

	t.Run("Rejects Activated Config", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		created, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Draft", Categories: validCategories()})
		if _, err := uc.Activate(ctx, created.ID); err != nil {
			t.Fatalf("activate failed: %v", err)
		}

		_, err := uc.UpdateDraft(ctx, rubric.UpdateInput{ID: created.ID, Name: "X", Categories: validCategories()})
		if !errors.Is(err, rubric.ErrNotDraft) {
			t.Fatalf("expected ErrNotDraft, got %v", err)
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		uc := New(newFakeRepo(), mockLogger{})

		_, err := uc.UpdateDraft(ctx, rubric.UpdateInput{ID: "missing", Name: "X", Categories: validCategories()})
		if !errors.Is(err, rubric.ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
	})
}

func TestActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("Demotes Previous Active", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		first, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "V1", Categories: validCategories()})
		second, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "V2", Categories: validCategories()})

		if _, err := uc.Activate(ctx, first.ID); err != nil {
			t.Fatalf("activate v1: %v", err)
		}
		if _, err := uc.Activate(ctx, second.ID); err != nil {
			t.Fatalf("activate v2: %v", err)
		}

		active, err := uc.GetActive(ctx)
		if err != nil {
			t.Fatalf("GetActive: %v", err)
		}
		if active.ID != second.ID {
			t.Errorf("active config = %s, want %s", active.ID, second.ID)
		}

		demoted, _ := uc.Get(ctx, first.ID)
		if demoted.IsActive {
			t.Errorf("previous active config was not demoted")
		}
	})

	t.Run("Activation Is Terminal", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		cfg, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "V1", Categories: validCategories()})
		other, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "V2", Categories: validCategories()})

		if _, err := uc.Activate(ctx, cfg.ID); err != nil {
			t.Fatalf("activate: %v", err)
		}
		if _, err := uc.Activate(ctx, other.ID); err != nil {
			t.Fatalf("activate other: %v", err)
		}

		// cfg was demoted but remains activated-once; it can never go again.
		_, err := uc.Activate(ctx, cfg.ID)
		if !errors.Is(err, rubric.ErrAlreadyActivated) {
			t.Fatalf("expected ErrAlreadyActivated, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes Never Activated Draft", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		cfg, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Draft", Categories: validCategories()})

		if err := uc.Delete(ctx, cfg.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Get(ctx, cfg.ID)
		if !errors.Is(err, rubric.ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound after delete, got %v", err)
		}
	})

	t.Run("Rejects Activated Config", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, mockLogger{})

		cfg, _ := uc.CreateDraft(ctx, rubric.CreateInput{Name: "Draft", Categories: validCategories()})
		if _, err := uc.Activate(ctx, cfg.ID); err != nil {
			t.Fatalf("activate: %v", err)
		}

		err := uc.Delete(ctx, cfg.ID)
		if !errors.Is(err, rubric.ErrAlreadyActivated) {
			t.Fatalf("expected ErrAlreadyActivated, got %v", err)
		}
	})
}

func TestGetActiveNone(t *testing.T) {
	uc := New(newFakeRepo(), mockLogger{})

	_, err := uc.GetActive(context.Background())
	if !errors.Is(err, rubric.ErrNoActiveConfig) {
		t.Fatalf("expected ErrNoActiveConfig, got %v", err)
	}
}
