package postgre

import (
	"context"
	"database/sql"

	repo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/model"
)

// aggregateColumns computes the shared per-agent aggregate set. The outcome
// "closed_won" defines a win for win-rate purposes.
const aggregateColumns = `
	COUNT(*) AS total_calls,
	COUNT(*) FILTER (WHERE c.score > 0) AS scored_calls,
	COALESCE(AVG(c.score) FILTER (WHERE c.score > 0), 0) AS avg_score,
	COALESCE(AVG(c.duration_seconds), 0)::int AS avg_duration,
	COALESCE(COUNT(*) FILTER (WHERE c.outcome = 'closed_won')::float / NULLIF(COUNT(*), 0), 0) AS win_rate,
	COALESCE(MODE() WITHIN GROUP (ORDER BY c.outcome), '') AS top_outcome`

// GetAgentPerformance aggregates one agent's calls over a date range.
// A zero-value result (AgentID == "") means the agent had no calls in range.
func (r *implRepository) GetAgentPerformance(ctx context.Context, opt repo.PerformanceOptions) (model.AgentPerformance, error) {
	query := `
		SELECT c.agent_id, a.name, ` + aggregateColumns + `
		FROM calls c
		JOIN agents a ON a.id = c.agent_id
		WHERE c.agent_id = $1 AND c.call_date >= $2 AND c.call_date <= $3
		GROUP BY c.agent_id, a.name`

	p := model.AgentPerformance{PeriodStart: opt.StartDate, PeriodEnd: opt.EndDate}
	err := r.db.QueryRowContext(ctx, query, opt.AgentID, opt.StartDate, opt.EndDate).Scan(
		&p.AgentID, &p.AgentName, &p.TotalCalls, &p.ScoredCalls,
		&p.AvgScore, &p.AvgDurationS, &p.WinRate, &p.TopOutcome,
	)
	if err == sql.ErrNoRows {
		return model.AgentPerformance{PeriodStart: opt.StartDate, PeriodEnd: opt.EndDate}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAgentPerformance"), err)
		return model.AgentPerformance{}, repo.ErrFailedToGet
	}
	return p, nil
}

// GetTeamSummary aggregates performance across all agents in a date range,
// best average score first.
func (r *implRepository) GetTeamSummary(ctx context.Context, opt repo.PerformanceOptions) (model.TeamSummary, error) {
	query := `
		SELECT c.agent_id, a.name, ` + aggregateColumns + `
		FROM calls c
		JOIN agents a ON a.id = c.agent_id
		WHERE c.call_date >= $1 AND c.call_date <= $2
		GROUP BY c.agent_id, a.name
		ORDER BY avg_score DESC`

	rows, err := r.db.QueryContext(ctx, query, opt.StartDate, opt.EndDate)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTeamSummary"), err)
		return model.TeamSummary{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	summary := model.TeamSummary{PeriodStart: opt.StartDate, PeriodEnd: opt.EndDate}

	var scoredAgents int
	for rows.Next() {
		p := model.AgentPerformance{PeriodStart: opt.StartDate, PeriodEnd: opt.EndDate}
		err := rows.Scan(
			&p.AgentID, &p.AgentName, &p.TotalCalls, &p.ScoredCalls,
			&p.AvgScore, &p.AvgDurationS, &p.WinRate, &p.TopOutcome,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetTeamSummary"), err)
			return model.TeamSummary{}, repo.ErrFailedToGet
		}

		summary.Agents = append(summary.Agents, p)
		summary.TotalCalls += p.TotalCalls
		summary.WinRate += p.WinRate * float64(p.TotalCalls)
		if p.ScoredCalls > 0 {
			summary.AvgScore += p.AvgScore
			scoredAgents++
		}
	}

	summary.TotalAgents = len(summary.Agents)
	if summary.TotalCalls > 0 {
		summary.WinRate /= float64(summary.TotalCalls)
	}
	if scoredAgents > 0 {
		summary.AvgScore /= float64(scoredAgents)
	}
	return summary, nil
}
