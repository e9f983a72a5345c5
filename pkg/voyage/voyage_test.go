package voyage_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-coach-assistant/pkg/voyage"
)

func TestEmbed(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer test-key" {
				t.Errorf("missing auth header")
			}
			w.Write([]byte(`{
				"object": "list",
				"data": [
					{"object": "embedding", "embedding": [0.1, 0.2], "index": 0},
					{"object": "embedding", "embedding": [0.3, 0.4], "index": 1}
				],
				"model": "voyage-3",
				"usage": {"total_tokens": 8}
			}`))
		}))
		defer ts.Close()

		client, err := voyage.New("test-key")
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		client.SetEndpoint(ts.URL)

		embeddings, err := client.Embed(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(embeddings) != 2 || len(embeddings[0]) != 2 {
			t.Errorf("unexpected embeddings shape: %v", embeddings)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		client, _ := voyage.New("test-key")
		if _, err := client.Embed(context.Background(), nil); err == nil {
			t.Error("expected error for empty input")
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := voyage.New(""); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "bad key"}}`))
		}))
		defer ts.Close()

		client, _ := voyage.New("test-key")
		client.SetEndpoint(ts.URL)

		if _, err := client.Embed(context.Background(), []string{"a"}); err == nil {
			t.Error("expected error for 401 response")
		}
	})
}

func TestCosine(t *testing.T) {
	t.Run("Identical Vectors", func(t *testing.T) {
		sim, err := voyage.Cosine([]float32{1, 2, 3}, []float32{1, 2, 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(sim-1.0) > 1e-9 {
			t.Errorf("expected similarity 1.0, got %f", sim)
		}
	})

	t.Run("Orthogonal Vectors", func(t *testing.T) {
		sim, err := voyage.Cosine([]float32{1, 0}, []float32{0, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(sim) > 1e-9 {
			t.Errorf("expected similarity 0, got %f", sim)
		}
	})

	t.Run("Length Mismatch", func(t *testing.T) {
		if _, err := voyage.Cosine([]float32{1, 2}, []float32{1, 2, 3}); err == nil {
			t.Error("expected error for mismatched lengths")
		}
	})

	t.Run("Zero Vector", func(t *testing.T) {
		sim, err := voyage.Cosine([]float32{0, 0}, []float32{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim != 0 {
			t.Errorf("expected 0 for zero vector, got %f", sim)
		}
	})
}
