package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	repo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/model"
	pkgLog "sales-coach-assistant/pkg/log"
	pkgQdrant "sales-coach-assistant/pkg/qdrant"
	"sales-coach-assistant/pkg/voyage"
)

// excerptMaxChars bounds how much transcript text is stored in the point
// payload for display in search results.
const excerptMaxChars = 300

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       *voyage.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed VectorRepository for call transcripts.
func New(client *pkgQdrant.Client, embedder *voyage.Client, collectionName string, l pkgLog.Logger) repo.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// IndexTranscript embeds the transcript text and upserts it as one point.
// Qdrant requires point IDs to be UUIDs or uint64, so the call ID is mapped
// to a deterministic UUID and kept in the payload.
func (r *implRepository) IndexTranscript(ctx context.Context, call model.Call, transcript model.Transcript) error {
	vector, err := r.embedder.EmbedOne(ctx, transcript.Content)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embedding: %v", err)
		return fmt.Errorf("failed to generate embedding: %w", err)
	}

	point := pkgQdrant.Point{
		ID:     callIDToUUID(call.ID),
		Vector: vector,
		Payload: map[string]interface{}{
			"call_id":   call.ID,
			"agent":     call.AgentName,
			"call_date": call.CallDate.Format("2006-01-02"),
			"excerpt":   excerpt(transcript.Content),
		},
	}

	req := pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert point: %v", err)
		return repo.ErrFailedToIndex
	}

	r.l.Infof(ctx, "qdrant repository: indexed transcript for call %s", call.ID)
	return nil
}

// SearchTranscripts embeds the query and searches the collection.
func (r *implRepository) SearchTranscripts(ctx context.Context, opt repo.SearchTranscriptsOptions) ([]model.TranscriptMatch, error) {
	queryVector, err := r.embedder.EmbedOne(ctx, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 10
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, repo.ErrFailedToSearch
	}

	matches := make([]model.TranscriptMatch, 0, len(resp.Result))
	for _, scored := range resp.Result {
		callID, ok := payloadString(scored.Payload, "call_id")
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: call_id missing or invalid in payload for point %v", scored.ID)
			continue
		}
		agent, _ := payloadString(scored.Payload, "agent")
		text, _ := payloadString(scored.Payload, "excerpt")

		matches = append(matches, model.TranscriptMatch{
			CallID:    callID,
			AgentName: agent,
			Excerpt:   text,
			Score:     scored.Score,
		})
	}
	return matches, nil
}

// DeleteTranscript removes the indexed point for a call.
func (r *implRepository) DeleteTranscript(ctx context.Context, callID string) error {
	ids := []string{callIDToUUID(callID)}
	if err := r.client.DeletePoints(ctx, r.collectionName, ids); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to delete point: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// callIDToUUID maps an arbitrary call ID to a stable UUID (v5 over the ID
// bytes) so re-indexing the same call overwrites its point.
func callIDToUUID(callID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(callID)).String()
}

func excerpt(content string) string {
	r := []rune(content)
	if len(r) <= excerptMaxChars {
		return content
	}
	return string(r[:excerptMaxChars]) + "..."
}

func payloadString(payload map[string]interface{}, key string) (string, bool) {
	raw, exists := payload[key]
	if !exists {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}
