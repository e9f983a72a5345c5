package postgre

import (
	"context"
	"database/sql"

	repo "sales-coach-assistant/internal/call/repository"
)

// FindAgentByName fuzzy-matches a partial name against the agents table using
// pg_trgm similarity. At most one best match is returned; anything below the
// similarity floor counts as no match (zero-value AgentMatch, no error).
func (r *implRepository) FindAgentByName(ctx context.Context, partialName string) (repo.AgentMatch, error) {
	const query = `
		SELECT id, name, email, team, created_at, similarity(name, $1) AS sim
		FROM agents
		WHERE similarity(name, $1) > $2
		ORDER BY sim DESC
		LIMIT 1`

	var m repo.AgentMatch
	err := r.db.QueryRowContext(ctx, query, partialName, similarityFloor).Scan(
		&m.Agent.ID, &m.Agent.Name, &m.Agent.Email, &m.Agent.Team, &m.Agent.CreatedAt, &m.Similarity,
	)
	if err == sql.ErrNoRows {
		return repo.AgentMatch{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindAgentByName"), err)
		return repo.AgentMatch{}, repo.ErrFailedToGet
	}
	return m, nil
}
