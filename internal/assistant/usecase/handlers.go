package usecase

import (
	"context"
	"fmt"

	"sales-coach-assistant/internal/assistant"
	callRepo "sales-coach-assistant/internal/call/repository"
)

// handleListCalls lists calls for an agent/date range, or switches to
// cross-agent duration mode when a minimum duration was extracted.
func (uc *implUseCase) handleListCalls(ctx context.Context, params assistant.HandlerParams, _ string) assistant.HandlerResult {
	opt := callRepo.ListCallsOptions{
		AgentID:            params.AgentID,
		StartDate:          params.StartDate,
		EndDate:            params.EndDate,
		MinDurationMinutes: params.MinDurationMinutes,
	}

	calls, err := uc.callRepo.ListCalls(ctx, opt)
	if err != nil {
		return failure(fmt.Sprintf("Failed to list calls: %v", err))
	}

	mode := "date_range"
	if params.MinDurationMinutes > 0 {
		mode = "duration"
	}

	return assistant.HandlerResult{
		Success: true,
		Data: map[string]any{
			"calls":      calls,
			"count":      len(calls),
			"mode":       mode,
			"start_date": params.StartDate.Format("2006-01-02"),
			"end_date":   params.EndDate.Format("2006-01-02"),
		},
	}
}

// handleAgentStats aggregates one agent's performance over the date range.
func (uc *implUseCase) handleAgentStats(ctx context.Context, params assistant.HandlerParams, _ string) assistant.HandlerResult {
	perf, err := uc.callRepo.GetAgentPerformance(ctx, callRepo.PerformanceOptions{
		AgentID:   params.AgentID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return failure(fmt.Sprintf("Failed to get stats for %s: %v", params.AgentName, err))
	}

	return assistant.HandlerResult{
		Success: true,
		Data: map[string]any{
			"agent_name":  params.AgentName,
			"performance": perf,
			"days_back":   params.DaysBack,
		},
	}
}

// handleTeamSummary aggregates performance across all agents.
func (uc *implUseCase) handleTeamSummary(ctx context.Context, params assistant.HandlerParams, _ string) assistant.HandlerResult {
	summary, err := uc.callRepo.GetTeamSummary(ctx, callRepo.PerformanceOptions{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return failure(fmt.Sprintf("Failed to get team summary: %v", err))
	}

	return assistant.HandlerResult{
		Success: true,
		Data: map[string]any{
			"summary":   summary,
			"days_back": params.DaysBack,
		},
	}
}

// handleGetTranscript fetches the transcript for one call.
func (uc *implUseCase) handleGetTranscript(ctx context.Context, params assistant.HandlerParams, _ string) assistant.HandlerResult {
	if params.CallID == "" {
		return failure("Please tell me which call you want the transcript for, e.g. \"show me the transcript for call 123\"")
	}

	call, err := uc.callRepo.GetCall(ctx, params.CallID)
	if err != nil {
		return failure(fmt.Sprintf("Failed to get call %s: %v", params.CallID, err))
	}
	if call.ID == "" {
		return failure(fmt.Sprintf("Call %s not found", params.CallID))
	}

	transcript, err := uc.callRepo.GetTranscript(ctx, params.CallID)
	if err != nil {
		return failure(fmt.Sprintf("Failed to get transcript for call %s: %v", params.CallID, err))
	}
	if transcript.CallID == "" {
		return failure(fmt.Sprintf("No transcript is available for call %s", params.CallID))
	}

	return assistant.HandlerResult{
		Success: true,
		Data: map[string]any{
			"call":       call,
			"transcript": transcript,
		},
	}
}

// handleSearchCalls performs semantic search over indexed transcripts. When
// the classifier extracted no query, the raw message is used.
func (uc *implUseCase) handleSearchCalls(ctx context.Context, params assistant.HandlerParams, message string) assistant.HandlerResult {
	query := params.SearchQuery
	if query == "" {
		query = message
	}

	matches, err := uc.vectorRepo.SearchTranscripts(ctx, callRepo.SearchTranscriptsOptions{
		Query: query,
		Limit: 10,
	})
	if err != nil {
		return failure(fmt.Sprintf("Failed to search calls: %v", err))
	}

	return assistant.HandlerResult{
		Success: true,
		Data: map[string]any{
			"query":   query,
			"matches": matches,
			"count":   len(matches),
		},
	}
}

// handleGeneral answers anything that is not a data request.
func (uc *implUseCase) handleGeneral(_ context.Context, _ assistant.HandlerParams, _ string) assistant.HandlerResult {
	return assistant.HandlerResult{
		Success: true,
		Data:    map[string]any{"reply": HelpReply},
	}
}
