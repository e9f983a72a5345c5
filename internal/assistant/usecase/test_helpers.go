package usecase

import (
	"context"
	"encoding/json"
	"time"

	callRepo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/classifier"
	"sales-coach-assistant/internal/model"
	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/pkg/llmprovider"
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

// fakeClassifier returns a fixed classification.
type fakeClassifier struct {
	result classifier.Classification
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) classifier.Classification {
	return f.result
}

// fakeGenerator scripts sequential LLM responses. jsonPayloads feed
// GenerateJSON calls in order; textResponses feed GenerateContent calls.
type fakeGenerator struct {
	jsonPayloads  []string
	jsonErrs      []error
	textResponses []string
	textErrs      []error

	jsonCalls int
	textCalls int
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, _ *llmprovider.Request, out any) error {
	i := f.jsonCalls
	f.jsonCalls++
	if i < len(f.jsonErrs) && f.jsonErrs[i] != nil {
		return f.jsonErrs[i]
	}
	if i >= len(f.jsonPayloads) {
		return llmprovider.ErrEmptyResponse
	}
	return json.Unmarshal([]byte(f.jsonPayloads[i]), out)
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
	i := f.textCalls
	f.textCalls++
	if i < len(f.textErrs) && f.textErrs[i] != nil {
		return nil, f.textErrs[i]
	}
	if i >= len(f.textResponses) {
		return nil, llmprovider.ErrEmptyResponse
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: f.textResponses[i]}},
		},
	}, nil
}

// fakeCallRepo is an in-memory call store.
type fakeCallRepo struct {
	agents      map[string]callRepo.AgentMatch // keyed by partial name
	calls       map[string]model.Call
	transcripts map[string]model.Transcript
	performance model.AgentPerformance
	team        model.TeamSummary

	listErr     error
	lastListOpt callRepo.ListCallsOptions
	lookups     int
}

func newFakeCallRepo() *fakeCallRepo {
	return &fakeCallRepo{
		agents:      map[string]callRepo.AgentMatch{},
		calls:       map[string]model.Call{},
		transcripts: map[string]model.Transcript{},
	}
}

func (f *fakeCallRepo) ListCalls(_ context.Context, opt callRepo.ListCallsOptions) ([]model.Call, error) {
	f.lastListOpt = opt
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Call
	for _, c := range f.calls {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCallRepo) GetCall(_ context.Context, id string) (model.Call, error) {
	return f.calls[id], nil
}

func (f *fakeCallRepo) GetTranscript(_ context.Context, callID string) (model.Transcript, error) {
	return f.transcripts[callID], nil
}

func (f *fakeCallRepo) GetAgentPerformance(_ context.Context, _ callRepo.PerformanceOptions) (model.AgentPerformance, error) {
	return f.performance, nil
}

func (f *fakeCallRepo) GetTeamSummary(_ context.Context, _ callRepo.PerformanceOptions) (model.TeamSummary, error) {
	return f.team, nil
}

func (f *fakeCallRepo) FindAgentByName(_ context.Context, partialName string) (callRepo.AgentMatch, error) {
	f.lookups++
	return f.agents[partialName], nil
}

// fakeVectorRepo scripts semantic search results.
type fakeVectorRepo struct {
	matches []model.TranscriptMatch
	err     error
}

func (f *fakeVectorRepo) IndexTranscript(_ context.Context, _ model.Call, _ model.Transcript) error {
	return nil
}

func (f *fakeVectorRepo) SearchTranscripts(_ context.Context, _ callRepo.SearchTranscriptsOptions) ([]model.TranscriptMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

func (f *fakeVectorRepo) DeleteTranscript(_ context.Context, _ string) error {
	return nil
}

// fakeRubricUC serves a fixed active config, or ErrNoActiveConfig.
type fakeRubricUC struct {
	active    rubric.Config
	hasActive bool
	err       error
}

func (f *fakeRubricUC) GetActive(_ context.Context) (rubric.Config, error) {
	if f.err != nil {
		return rubric.Config{}, f.err
	}
	if !f.hasActive {
		return rubric.Config{}, rubric.ErrNoActiveConfig
	}
	return f.active, nil
}

func (f *fakeRubricUC) CreateDraft(_ context.Context, _ rubric.CreateInput) (rubric.Config, error) {
	return rubric.Config{}, nil
}

func (f *fakeRubricUC) UpdateDraft(_ context.Context, _ rubric.UpdateInput) (rubric.Config, error) {
	return rubric.Config{}, nil
}

func (f *fakeRubricUC) Activate(_ context.Context, _ string) (rubric.Config, error) {
	return rubric.Config{}, nil
}

func (f *fakeRubricUC) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeRubricUC) Get(_ context.Context, _ string) (rubric.Config, error) {
	return rubric.Config{}, nil
}

func (f *fakeRubricUC) List(_ context.Context) ([]rubric.Config, error) { return nil, nil }

func (f *fakeRubricUC) ValidateWeights(_ context.Context, cats []rubric.Category) rubric.WeightValidation {
	return rubric.ValidateCategoryWeights(cats)
}

// fixedTime pins the clock for deterministic date ranges.
var fixedTime = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
