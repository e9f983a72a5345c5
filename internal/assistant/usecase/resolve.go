package usecase

import (
	"context"
	"fmt"
	"strings"

	"sales-coach-assistant/internal/assistant"
	callRepo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/classifier"
)

// resolveParams normalizes a classification into handler-ready parameters:
// relative days become an absolute inclusive [start, end] range and a fuzzy
// agent name becomes an agent ID. A failed name lookup is terminal for
// name-dependent intents and returns a user-facing result instead of params.
func (uc *implUseCase) resolveParams(ctx context.Context, cls classifier.Classification) (assistant.HandlerParams, *assistant.HandlerResult) {
	start, end := uc.dateMath.DaysBackRange(cls.DaysBack, uc.now())

	params := assistant.HandlerParams{
		Intent:             cls.Intent,
		AgentName:          strings.TrimSpace(cls.AgentName),
		StartDate:          start,
		EndDate:            end,
		DaysBack:           cls.DaysBack,
		CallID:             strings.TrimSpace(cls.CallID),
		SearchQuery:        strings.TrimSpace(cls.SearchQuery),
		MinDurationMinutes: int(cls.MinDurationMinutes),
	}

	// Duration filters are cross-agent: they switch LIST_CALLS to a
	// duration-filtered mode and drop agent targeting entirely.
	if params.MinDurationMinutes > 0 && cls.Intent == classifier.IntentListCalls {
		if params.AgentName != "" {
			uc.l.Infof(ctx, "%s: duration filter (%dm) overrides agent scoping for %q",
				LogPrefixResolve, params.MinDurationMinutes, params.AgentName)
		}
		params.AgentName = ""
		return params, nil
	}

	if params.AgentName != "" && needsAgentID(cls.Intent) {
		match, err := uc.lookupAgent(ctx, params.AgentName)
		if err != nil {
			uc.l.Errorf(ctx, "%s: agent lookup: %v", LogPrefixResolve, err)
			r := failure(fmt.Sprintf("Failed to look up agent %q: %v", params.AgentName, err))
			return assistant.HandlerParams{}, &r
		}
		if match.Agent.ID == "" {
			r := failure(fmt.Sprintf("Agent %q not found. Check the spelling or use their first name.", params.AgentName))
			return assistant.HandlerParams{}, &r
		}
		params.AgentID = match.Agent.ID
		params.AgentName = match.Agent.Name
	}

	if cls.Intent == classifier.IntentAgentStats && params.AgentID == "" {
		r := failure("Please tell me which agent you want stats for, e.g. \"How is Bradley doing?\"")
		return assistant.HandlerParams{}, &r
	}

	return params, nil
}

// needsAgentID reports whether an intent requires a resolved agent identity
// when a name was extracted.
func needsAgentID(intent classifier.Intent) bool {
	return intent == classifier.IntentListCalls || intent == classifier.IntentAgentStats
}

// lookupAgent resolves a partial name to an agent through the fuzzy store
// lookup, memoized in an LRU cache keyed by the lowercased name.
func (uc *implUseCase) lookupAgent(ctx context.Context, partialName string) (callRepo.AgentMatch, error) {
	key := strings.ToLower(partialName)
	if match, ok := uc.agentCache.Get(key); ok {
		return match, nil
	}

	match, err := uc.callRepo.FindAgentByName(ctx, partialName)
	if err != nil {
		return callRepo.AgentMatch{}, err
	}

	// Negative results are not cached so a newly added agent is found
	// without waiting for eviction.
	if match.Agent.ID != "" {
		uc.agentCache.Add(key, match)
	}
	return match, nil
}
