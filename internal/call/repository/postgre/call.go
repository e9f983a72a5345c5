package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/model"
)

const callColumns = `c.id, c.agent_id, a.name, c.customer_name, c.call_date, c.duration_seconds, c.outcome, COALESCE(c.score, 0), c.has_transcript`

// ListCalls returns calls matching the options. When MinDurationMinutes is
// set, agent scoping is dropped and the query filters by duration only.
func (r *implRepository) ListCalls(ctx context.Context, opt repo.ListCallsOptions) ([]model.Call, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`
		SELECT %s
		FROM calls c
		JOIN agents a ON a.id = c.agent_id
		%s`, callColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalls"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var calls []model.Call
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalls"), err)
			return nil, repo.ErrFailedToList
		}
		calls = append(calls, call)
	}
	return calls, nil
}

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListCalls.
// Duration mode takes precedence and ignores agent targeting.
func (r *implRepository) buildListQuery(opt repo.ListCallsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.MinDurationMinutes > 0 {
		conditions = append(conditions, fmt.Sprintf("c.duration_seconds >= $%d", idx))
		args = append(args, opt.MinDurationMinutes*60)
		idx++
	} else if opt.AgentID != "" {
		conditions = append(conditions, fmt.Sprintf("c.agent_id = $%d", idx))
		args = append(args, opt.AgentID)
		idx++
	}

	if !opt.StartDate.IsZero() {
		conditions = append(conditions, fmt.Sprintf("c.call_date >= $%d", idx))
		args = append(args, opt.StartDate)
		idx++
	}
	if !opt.EndDate.IsZero() {
		conditions = append(conditions, fmt.Sprintf("c.call_date <= $%d", idx))
		args = append(args, opt.EndDate)
		idx++
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY c.call_date DESC")

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, limit)

	return strings.Join(parts, " "), args
}

// GetCall retrieves a single call by ID.
// Returns zero-value Call (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetCall(ctx context.Context, id string) (model.Call, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM calls c
		JOIN agents a ON a.id = c.agent_id
		WHERE c.id = $1`, callColumns)

	call, err := scanCall(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Call{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCall"), err)
		return model.Call{}, repo.ErrFailedToGet
	}
	return call, nil
}

// GetTranscript retrieves the transcript for a call, zero-value when none.
func (r *implRepository) GetTranscript(ctx context.Context, callID string) (model.Transcript, error) {
	const query = `
		SELECT call_id, content, word_count, language, created_at
		FROM call_transcripts
		WHERE call_id = $1`

	var t model.Transcript
	err := r.db.QueryRowContext(ctx, query, callID).Scan(
		&t.CallID, &t.Content, &t.WordCount, &t.Language, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Transcript{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTranscript"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}
	return t, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCall(row rowScanner) (model.Call, error) {
	var c model.Call
	err := row.Scan(
		&c.ID, &c.AgentID, &c.AgentName, &c.CustomerName, &c.CallDate,
		&c.DurationSeconds, &c.Outcome, &c.Score, &c.HasTranscript,
	)
	return c, err
}
