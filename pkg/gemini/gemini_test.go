package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-coach-assistant/pkg/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (gemini.IGemini, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	client, err := gemini.New(gemini.Config{
		APIKey: "test-key",
		Model:  "gemini-test",
		APIURL: ts.URL,
	})
	if err != nil {
		ts.Close()
		t.Fatalf("failed to create client: %v", err)
	}
	return client, ts
}

func TestGenerateContent(t *testing.T) {
	t.Run("Success With Usage", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "gemini-test") {
				t.Errorf("expected model in path, got %s", r.URL.Path)
			}
			w.Write([]byte(`{
				"candidates": [{"content": {"role": "model", "parts": [{"text": "hello"}]}}],
				"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
			}`))
		})
		defer ts.Close()

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "hello" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.InputTokens != 10 || resp.Usage.OutputTokens != 5 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("JSON Mode Sets Response MIME Type", func(t *testing.T) {
		var captured map[string]any
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&captured)
			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "{}"}]}}]}`))
		})
		defer ts.Close()

		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Parts: []gemini.Part{{Text: "classify"}}}},
			JSONMode: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		genCfg, ok := captured["generationConfig"].(map[string]any)
		if !ok {
			t.Fatalf("expected generationConfig in request, got %v", captured)
		}
		if genCfg["responseMimeType"] != "application/json" {
			t.Errorf("expected application/json MIME type, got %v", genCfg["responseMimeType"])
		}
	})

	t.Run("API Error", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
		})
		defer ts.Close()

		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error for non-200 status")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("error should include status code, got: %v", err)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		})
		defer ts.Close()

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 0 {
			t.Errorf("expected empty content, got %+v", resp.Content)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	if err == nil {
		t.Error("expected error for missing API key")
	}
}
