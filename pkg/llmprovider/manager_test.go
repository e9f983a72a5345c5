package llmprovider_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sales-coach-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)   {}

// fakeProvider is a scriptable Provider implementation.
type fakeProvider struct {
	name      string
	responses []string
	errs      []error
	calls     int
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	text := "ok"
	if i < len(f.responses) {
		text = f.responses[i]
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: f.name,
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

func newManager(cfg *llmprovider.Config, providers ...llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(providers, cfg, &mockLogger{})
}

func TestGenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("No Providers", func(t *testing.T) {
		m := newManager(&llmprovider.Config{RetryAttempts: 1})
		_, err := m.GenerateContent(ctx, &llmprovider.Request{})
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		bad := &fakeProvider{name: "primary", errs: []error{errors.New("boom")}}
		good := &fakeProvider{name: "secondary", responses: []string{"answer"}}
		m := newManager(&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, bad, good)

		resp, err := m.GenerateContent(ctx, &llmprovider.Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "answer" {
			t.Errorf("expected answer from secondary, got %q", resp.Text())
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		bad := &fakeProvider{name: "primary", errs: []error{errors.New("boom")}}
		good := &fakeProvider{name: "secondary"}
		m := newManager(&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1}, bad, good)

		_, err := m.GenerateContent(ctx, &llmprovider.Request{})
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if good.calls != 0 {
			t.Errorf("secondary should not have been called, got %d calls", good.calls)
		}
	})

	t.Run("Retry Within Provider", func(t *testing.T) {
		flaky := &fakeProvider{name: "flaky", errs: []error{errors.New("transient"), nil}, responses: []string{"", "recovered"}}
		m := newManager(&llmprovider.Config{RetryAttempts: 2}, flaky)

		resp, err := m.GenerateContent(ctx, &llmprovider.Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "recovered" {
			t.Errorf("expected retried response, got %q", resp.Text())
		}
		if flaky.calls != 2 {
			t.Errorf("expected 2 calls, got %d", flaky.calls)
		}
	})
}

func TestGenerateJSON(t *testing.T) {
	ctx := context.Background()

	type payload struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}

	t.Run("Plain JSON", func(t *testing.T) {
		p := &fakeProvider{name: "p", responses: []string{`{"intent": "COACHING", "confidence": 0.9}`}}
		m := newManager(&llmprovider.Config{RetryAttempts: 1}, p)

		var out payload
		if err := m.GenerateJSON(ctx, &llmprovider.Request{}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != "COACHING" || out.Confidence != 0.9 {
			t.Errorf("unexpected payload: %+v", out)
		}
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		p := &fakeProvider{name: "p", responses: []string{"```json\n{\"intent\": \"GENERAL\", \"confidence\": 0.5}\n```"}}
		m := newManager(&llmprovider.Config{RetryAttempts: 1}, p)

		var out payload
		if err := m.GenerateJSON(ctx, &llmprovider.Request{}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != "GENERAL" {
			t.Errorf("unexpected payload: %+v", out)
		}
	})

	t.Run("Invalid JSON Includes Raw Content", func(t *testing.T) {
		p := &fakeProvider{name: "p", responses: []string{"definitely not json"}}
		m := newManager(&llmprovider.Config{RetryAttempts: 1}, p)

		var out payload
		err := m.GenerateJSON(ctx, &llmprovider.Request{}, &out)
		if err == nil {
			t.Fatal("expected parse error")
		}
		var parseErr *llmprovider.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %T", err)
		}
		if !strings.Contains(err.Error(), "definitely not json") {
			t.Errorf("error should carry raw content: %v", err)
		}
	})

	t.Run("Empty Response", func(t *testing.T) {
		p := &fakeProvider{name: "p", responses: []string{"   "}}
		m := newManager(&llmprovider.Config{RetryAttempts: 1}, p)

		var out payload
		if err := m.GenerateJSON(ctx, &llmprovider.Request{}, &out); !errors.Is(err, llmprovider.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})
}

func TestSanitizeJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n[1,2]\n```", `[1,2]`},
		{"prose around object", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := llmprovider.SanitizeJSON(tc.in); got != tc.want {
				t.Errorf("SanitizeJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
