package usecase

import (
	"context"
	"sort"
	"time"

	"sales-coach-assistant/internal/rubric"
	repo "sales-coach-assistant/internal/rubric/repository"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

// fakeRepo is an in-memory rubric repository for tests.
type fakeRepo struct {
	configs map[string]rubric.Config
	failErr error // when set, every method fails with this error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{configs: map[string]rubric.Config{}}
}

func (f *fakeRepo) CreateConfig(_ context.Context, opt repo.CreateConfigOptions) (rubric.Config, error) {
	if f.failErr != nil {
		return rubric.Config{}, f.failErr
	}
	now := time.Now()
	cfg := rubric.Config{
		ID:         opt.ID,
		Name:       opt.Name,
		Version:    opt.Version,
		IsDraft:    true,
		Categories: opt.Categories,
		RedFlags:   opt.RedFlags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.configs[cfg.ID] = cfg
	return cfg, nil
}

func (f *fakeRepo) GetConfig(_ context.Context, id string) (rubric.Config, error) {
	if f.failErr != nil {
		return rubric.Config{}, f.failErr
	}
	return f.configs[id], nil
}

func (f *fakeRepo) GetActiveConfig(_ context.Context) (rubric.Config, error) {
	if f.failErr != nil {
		return rubric.Config{}, f.failErr
	}
	for _, cfg := range f.configs {
		if cfg.IsActive {
			return cfg, nil
		}
	}
	return rubric.Config{}, nil
}

func (f *fakeRepo) ListConfigs(_ context.Context) ([]rubric.Config, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := make([]rubric.Config, 0, len(f.configs))
	for _, cfg := range f.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

func (f *fakeRepo) MaxVersion(_ context.Context) (int, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	max := 0
	for _, cfg := range f.configs {
		if cfg.Version > max {
			max = cfg.Version
		}
	}
	return max, nil
}

func (f *fakeRepo) UpdateConfig(_ context.Context, opt repo.UpdateConfigOptions) (rubric.Config, error) {
	if f.failErr != nil {
		return rubric.Config{}, f.failErr
	}
	cfg, ok := f.configs[opt.ID]
	if !ok {
		return rubric.Config{}, nil
	}
	cfg.Name = opt.Name
	cfg.Categories = opt.Categories
	cfg.RedFlags = opt.RedFlags
	cfg.UpdatedAt = time.Now()
	f.configs[opt.ID] = cfg
	return cfg, nil
}

func (f *fakeRepo) ActivateConfig(_ context.Context, id string) (rubric.Config, error) {
	if f.failErr != nil {
		return rubric.Config{}, f.failErr
	}
	cfg, ok := f.configs[id]
	if !ok {
		return rubric.Config{}, nil
	}
	for otherID, other := range f.configs {
		if other.IsActive {
			other.IsActive = false
			f.configs[otherID] = other
		}
	}
	now := time.Now()
	cfg.IsActive = true
	cfg.IsDraft = false
	cfg.ActivatedAt = &now
	cfg.UpdatedAt = now
	f.configs[id] = cfg
	return cfg, nil
}

func (f *fakeRepo) DeleteConfig(_ context.Context, id string) error {
	if f.failErr != nil {
		return f.failErr
	}
	delete(f.configs, id)
	return nil
}
