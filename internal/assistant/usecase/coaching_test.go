package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sales-coach-assistant/internal/assistant"
	"sales-coach-assistant/internal/classifier"
	"sales-coach-assistant/internal/model"
	"sales-coach-assistant/internal/rubric"
)

const analysisPayload = `{
	"scores": {
		"rapport_building": 4,
		"needs_discovery": 3,
		"product_presentation": 4,
		"objection_handling": 3,
		"closing_effectiveness": 4,
		"call_professionalism": 5
	},
	"overall_score": 3.8,
	"performance_level": "Solid Performer",
	"strengths": ["good rapport"],
	"improvements": ["probe deeper"],
	"action_items": ["review discovery questions"],
	"red_flags": {"critical": [], "high": [], "medium": ["excessive_talking"]},
	"notable_moments": []
}`

func coachingRepo() *fakeCallRepo {
	repo := newFakeCallRepo()
	repo.calls["123"] = model.Call{
		ID: "123", AgentID: "agent-1", AgentName: "Bradley",
		CallDate: time.Date(2026, 8, 12, 14, 0, 0, 0, time.UTC), DurationSeconds: 1420,
		HasTranscript: true,
	}
	repo.transcripts["123"] = model.Transcript{
		CallID:  "123",
		Content: "AGENT: Hi, this is Bradley.\nCUSTOMER: Hi Bradley, thanks for calling.",
	}
	return repo
}

func coachingClassification() classifier.Classification {
	return classifier.Classification{
		Intent:     classifier.IntentCoaching,
		CallID:     "123",
		DaysBack:   7,
		Confidence: 0.95,
	}
}

func TestHandleCoaching(t *testing.T) {
	ctx := context.Background()

	t.Run("Static Fallback Succeeds", func(t *testing.T) {
		gen := &fakeGenerator{
			jsonPayloads:  []string{analysisPayload},
			textResponses: []string{"Bradley ran a solid call. Focus next on deeper discovery."},
		}

		uc := newTestUseCase(t, coachingClassification(), coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, gen)

		out, err := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Result.Success {
			t.Fatalf("result not successful: %s", out.Result.Error)
		}

		data, ok := out.Result.Data.(assistant.CoachingData)
		if !ok {
			t.Fatalf("data type = %T, want CoachingData", out.Result.Data)
		}
		if data.RubricConfigID != "" || data.RubricVersion != 0 {
			t.Errorf("static fallback should carry empty rubric identity, got %s v%d", data.RubricConfigID, data.RubricVersion)
		}
		if data.Summary == "" {
			t.Errorf("summary should be populated from the second call")
		}
		if data.PerformanceLevel != "Solid Performer" {
			t.Errorf("performance level = %q, want Solid Performer", data.PerformanceLevel)
		}
		if data.HasCriticalFlags {
			t.Errorf("no critical flags were reported")
		}
		if gen.jsonCalls != 1 || gen.textCalls != 1 {
			t.Errorf("calls = %d json, %d text; want 1 and 1", gen.jsonCalls, gen.textCalls)
		}
	})

	t.Run("Active Rubric Snapshot Used", func(t *testing.T) {
		active := rubric.Config{
			ID: "cfg-9", Version: 4, IsActive: true,
			Categories: []rubric.Category{
				{Slug: "rapport_building", Weight: 50, SortOrder: 1, IsEnabled: true},
				{Slug: "needs_discovery", Weight: 50, SortOrder: 2, IsEnabled: true},
			},
		}
		gen := &fakeGenerator{
			jsonPayloads: []string{`{
				"scores": {"rapport_building": 4, "needs_discovery": 3},
				"overall_score": 3.5
			}`},
			textResponses: []string{"Short summary."},
		}

		uc := newTestUseCase(t, coachingClassification(), coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{active: active, hasActive: true}, gen)

		out, err := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Result.Success {
			t.Fatalf("result not successful: %s", out.Result.Error)
		}

		data := out.Result.Data.(assistant.CoachingData)
		if data.RubricConfigID != "cfg-9" || data.RubricVersion != 4 {
			t.Errorf("rubric identity = %s v%d, want cfg-9 v4", data.RubricConfigID, data.RubricVersion)
		}
	})

	t.Run("Missing Call", func(t *testing.T) {
		cls := coachingClassification()
		cls.CallID = "999"

		uc := newTestUseCase(t, cls, coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, &fakeGenerator{})

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 999"})
		if out.Result.Success {
			t.Fatalf("expected failure")
		}
		if !strings.Contains(out.Result.Error, "999") || !strings.Contains(out.Result.Error, "not found") {
			t.Errorf("error = %q, want call-not-found message", out.Result.Error)
		}
	})

	t.Run("Missing Transcript Distinct Error", func(t *testing.T) {
		repo := coachingRepo()
		delete(repo.transcripts, "123")

		uc := newTestUseCase(t, coachingClassification(), repo, &fakeVectorRepo{}, &fakeRubricUC{}, &fakeGenerator{})

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if out.Result.Success {
			t.Fatalf("expected failure")
		}
		if !strings.Contains(out.Result.Error, "no transcript") {
			t.Errorf("error = %q, want transcript-specific message", out.Result.Error)
		}
	})

	t.Run("Missing Call ID", func(t *testing.T) {
		cls := coachingClassification()
		cls.CallID = ""

		uc := newTestUseCase(t, cls, coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, &fakeGenerator{})

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "coach my last call"})
		if out.Result.Success {
			t.Fatalf("expected failure")
		}
	})

	t.Run("Analysis Failure Fails Handler", func(t *testing.T) {
		gen := &fakeGenerator{jsonErrs: []error{errors.New("provider down")}}

		uc := newTestUseCase(t, coachingClassification(), coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, gen)

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if out.Result.Success {
			t.Fatalf("expected failure")
		}
		if !strings.Contains(out.Result.Error, "Failed to analyze call 123") {
			t.Errorf("error = %q", out.Result.Error)
		}
	})

	t.Run("Invalid Analysis Shape Fails Handler", func(t *testing.T) {
		// Missing scores for most categories.
		gen := &fakeGenerator{jsonPayloads: []string{`{"scores": {"rapport_building": 4}, "overall_score": 4}`}}

		uc := newTestUseCase(t, coachingClassification(), coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, gen)

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if out.Result.Success {
			t.Fatalf("expected failure for incomplete scores")
		}
	})

	t.Run("Summary Failure Fails Whole Handler", func(t *testing.T) {
		gen := &fakeGenerator{
			jsonPayloads: []string{analysisPayload},
			textErrs:     []error{errors.New("provider down")},
		}

		uc := newTestUseCase(t, coachingClassification(), coachingRepo(), &fakeVectorRepo{}, &fakeRubricUC{}, gen)

		out, _ := uc.Chat(ctx, assistant.ChatInput{Message: "analyze call 123"})
		if out.Result.Success {
			t.Fatalf("no partial success: summary failure must fail the handler")
		}
		if !strings.Contains(out.Result.Error, "Failed to summarize") {
			t.Errorf("error = %q", out.Result.Error)
		}
	})
}

func TestTalkRatios(t *testing.T) {
	t.Run("Labeled Lines", func(t *testing.T) {
		content := "AGENT: aaaa\nCUSTOMER: bbbbbbbbbbbb"
		customer, agent := talkRatios(content)
		if customer <= agent {
			t.Errorf("customer ratio %v should exceed agent ratio %v", customer, agent)
		}
		if diff := customer + agent - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ratios should sum to 1, got %v", customer+agent)
		}
	})

	t.Run("Unlabeled Transcript", func(t *testing.T) {
		customer, agent := talkRatios("just some prose with no speaker labels")
		if customer != 0 || agent != 0 {
			t.Errorf("unlabeled transcript should report 0/0")
		}
	})
}
