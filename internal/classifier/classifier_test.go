package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sales-coach-assistant/pkg/llmprovider"
)

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

// fakeGenerator returns a scripted JSON payload or an error.
type fakeGenerator struct {
	payload  string
	err      error
	lastReq  *llmprovider.Request
	numCalls int
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, req *llmprovider.Request, out any) error {
	f.numCalls++
	f.lastReq = req
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func wantFallback(t *testing.T, got Classification) {
	t.Helper()
	want := Classification{Intent: IntentGeneral, DaysBack: 7, Confidence: 0.0}
	if got != want {
		t.Errorf("fallback classification = %+v, want %+v", got, want)
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Full Extraction", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{
			"intent": "AGENT_STATS",
			"agent_name": "Bradley",
			"days_back": 30,
			"confidence": 92
		}`}
		c := New(gen, mockLogger{})

		got := c.Classify(ctx, "How is Bradley doing this month?")

		if got.Intent != IntentAgentStats {
			t.Errorf("intent = %s, want AGENT_STATS", got.Intent)
		}
		if got.AgentName != "Bradley" {
			t.Errorf("agent_name = %q, want Bradley", got.AgentName)
		}
		if got.DaysBack != 30 {
			t.Errorf("days_back = %d, want 30", got.DaysBack)
		}
		if got.Confidence != 0.92 {
			t.Errorf("confidence = %v, want 0.92", got.Confidence)
		}
	})

	t.Run("Uses Low Temperature And JSON Request", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{"intent": "GENERAL"}`}
		c := New(gen, mockLogger{})

		c.Classify(ctx, "hello")

		if gen.lastReq.Temperature != 0.1 {
			t.Errorf("temperature = %v, want 0.1", gen.lastReq.Temperature)
		}
		if gen.lastReq.SystemInstruction == nil {
			t.Errorf("expected system instruction to be set")
		}
	})

	t.Run("Upstream Error Falls Back", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("provider down")}
		c := New(gen, mockLogger{})

		wantFallback(t, c.Classify(ctx, "show me calls"))
	})

	t.Run("Parse Error Falls Back", func(t *testing.T) {
		gen := &fakeGenerator{err: &llmprovider.ParseError{RawContent: "not json", Err: errors.New("bad")}}
		c := New(gen, mockLogger{})

		wantFallback(t, c.Classify(ctx, "show me calls"))
	})

	t.Run("Empty Message Never Panics", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("boom")}
		c := New(gen, mockLogger{})

		wantFallback(t, c.Classify(ctx, ""))
		wantFallback(t, c.Classify(ctx, "   \t  "))
	})

	t.Run("Defaults For Missing Fields", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{"intent": "LIST_CALLS"}`}
		c := New(gen, mockLogger{})

		got := c.Classify(ctx, "show my calls")

		if got.DaysBack != 7 {
			t.Errorf("days_back = %d, want default 7", got.DaysBack)
		}
		if got.Confidence != 0 {
			t.Errorf("confidence = %v, want 0", got.Confidence)
		}
		if got.AgentName != "" || got.CallID != "" || got.SearchQuery != "" {
			t.Errorf("optional fields should stay empty: %+v", got)
		}
	})

	t.Run("Invalid Days Back Replaced", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{"intent": "LIST_CALLS", "days_back": -3}`}
		c := New(gen, mockLogger{})

		if got := c.Classify(ctx, "calls"); got.DaysBack != 7 {
			t.Errorf("days_back = %d, want 7", got.DaysBack)
		}
	})

	t.Run("Confidence Clamped", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{"intent": "COACHING", "confidence": 250}`}
		c := New(gen, mockLogger{})

		if got := c.Classify(ctx, "coach call 42"); got.Confidence != 1.0 {
			t.Errorf("confidence = %v, want clamped 1.0", got.Confidence)
		}
	})

	t.Run("Synonym Intent Mapped", func(t *testing.T) {
		gen := &fakeGenerator{payload: `{"intent": "stats", "confidence": 80}`}
		c := New(gen, mockLogger{})

		if got := c.Classify(ctx, "stats please"); got.Intent != IntentAgentStats {
			t.Errorf("intent = %s, want AGENT_STATS", got.Intent)
		}
	})
}

func TestNormalizeIntent(t *testing.T) {
	tests := []struct {
		raw  string
		want Intent
	}{
		{"AGENT_STATS", IntentAgentStats},
		{"stats", IntentAgentStats},
		{"STATS!", IntentAgentStats},
		{"Stats", IntentAgentStats},
		{"team", IntentTeamSummary},
		{"FIND", IntentSearchCalls},
		{"list_calls", IntentListCalls},
		{"  COACHING  ", IntentCoaching},
		{"nonsense", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		if got := NormalizeIntent(tt.raw); got != tt.want {
			t.Errorf("NormalizeIntent(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}

	t.Run("Idempotent", func(t *testing.T) {
		for _, intent := range AllIntents() {
			if got := NormalizeIntent(string(intent)); got != intent {
				t.Errorf("NormalizeIntent(%s) = %s, not idempotent", intent, got)
			}
		}
	})
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Hello there", true},
		{"hi", true},
		{"Hey, coach", true},
		{"Good morning team", true},
		{"well hello", false}, // not a prefix or equality match
		{"show me calls", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsGreeting(tt.message); got != tt.want {
			t.Errorf("IsGreeting(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestIsHelpRequest(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"What can you do?", true},
		{"I need some help with this", true},
		{"how does this work exactly", true},
		{"How is Bradley doing?", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHelpRequest(tt.message); got != tt.want {
			t.Errorf("IsHelpRequest(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
