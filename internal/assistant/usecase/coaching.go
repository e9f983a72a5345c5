package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sales-coach-assistant/internal/assistant"
	"sales-coach-assistant/internal/model"
	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/internal/rubric/prompt"
	"sales-coach-assistant/pkg/llmprovider"
)

// handleCoaching scores one call against the rubric. Preconditions: the call
// and its transcript must both exist, each missing piece reported with its
// own message. The active rubric is resolved once and that snapshot is used
// for the whole request, so a concurrent activation is never observed
// mid-analysis. Two sequential model calls follow: a JSON-constrained
// analysis, then a free-text summary seeded with the analysis JSON. The
// second call failing fails the whole handler.
func (uc *implUseCase) handleCoaching(ctx context.Context, params assistant.HandlerParams, _ string) assistant.HandlerResult {
	if params.CallID == "" {
		return failure("Please tell me which call to coach, e.g. \"analyze call 123\"")
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
		return failure(fmt.Sprintf("Cannot coach call %s: no transcript is available", params.CallID))
	}

	// Rubric snapshot, resolved exactly once per request.
	cfg, usedStatic, err := uc.rubricSnapshot(ctx)
	if err != nil {
		return failure(fmt.Sprintf("Failed to load rubric: %v", err))
	}
	if usedStatic {
		uc.l.Infof(ctx, "%s: no active rubric, using built-in fallback", LogPrefixCoaching)
	}

	compiled := prompt.Compile(cfg, uc.buildCallVariables(call, transcript))

	analysis, err := uc.runAnalysis(ctx, compiled, cfg)
	if err != nil {
		uc.l.Errorf(ctx, "%s: analysis: %v", LogPrefixCoaching, err)
		return failure(fmt.Sprintf("Failed to analyze call %s: %v", params.CallID, err))
	}

	summary, err := uc.runSummary(ctx, call, analysis)
	if err != nil {
		uc.l.Errorf(ctx, "%s: summary: %v", LogPrefixCoaching, err)
		return failure(fmt.Sprintf("Failed to summarize analysis for call %s: %v", params.CallID, err))
	}

	return assistant.HandlerResult{
		Success: true,
		Data: assistant.CoachingData{
			CoachingAnalysis: analysis,
			Summary:          summary,
			HasCriticalFlags: analysis.HasCriticalFlags(),
			RubricConfigID:   compiled.ConfigID,
			RubricVersion:    compiled.ConfigVersion,
		},
	}
}

// rubricSnapshot returns the active config, or the built-in static config
// when none is active. Only a genuine lookup failure is an error.
func (uc *implUseCase) rubricSnapshot(ctx context.Context) (rubric.Config, bool, error) {
	cfg, err := uc.rubricUC.GetActive(ctx)
	if err == nil {
		return cfg, false, nil
	}
	if errors.Is(err, rubric.ErrNoActiveConfig) {
		return prompt.StaticConfig(), true, nil
	}
	return rubric.Config{}, false, err
}

func (uc *implUseCase) buildCallVariables(call model.Call, transcript model.Transcript) prompt.CallVariables {
	customerRatio, agentRatio := talkRatios(transcript.Content)
	return prompt.CallVariables{
		AgentName:         call.AgentName,
		CallDate:          call.CallDate.Format("2006-01-02"),
		Duration:          fmt.Sprintf("%dm %ds", call.DurationSeconds/60, call.DurationSeconds%60),
		CustomerTalkRatio: customerRatio,
		AgentTalkRatio:    agentRatio,
		Transcript:        uc.truncateTranscript(transcript.Content),
	}
}

// runAnalysis is the first model call: JSON-constrained scoring against the
// compiled rubric, validated as untrusted input before use.
func (uc *implUseCase) runAnalysis(ctx context.Context, compiled prompt.Compiled, cfg rubric.Config) (prompt.CoachingAnalysis, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: compiled.SystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: compiled.AnalysisPrompt}},
			},
		},
		Temperature: CoachTemperature,
		MaxTokens:   CoachAnalysisMaxTokens,
	}

	var analysis prompt.CoachingAnalysis
	if err := uc.llm.GenerateJSON(ctx, req, &analysis); err != nil {
		return prompt.CoachingAnalysis{}, err
	}
	if err := prompt.ValidateAnalysis(&analysis, cfg); err != nil {
		return prompt.CoachingAnalysis{}, err
	}
	return analysis, nil
}

// runSummary is the second model call: free-text prose seeded with the
// analysis JSON from the first call.
func (uc *implUseCase) runSummary(ctx context.Context, call model.Call, analysis prompt.CoachingAnalysis) (string, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return "", err
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptCoachSummarySystem}},
		},
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Parts: []llmprovider.Part{{
					Text: fmt.Sprintf(PromptCoachSummaryUser,
						call.AgentName, call.CallDate.Format("2006-01-02"), analysisJSON),
				}},
			},
		},
		Temperature: CoachTemperature,
		MaxTokens:   CoachSummaryMaxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", llmprovider.ErrEmptyResponse
	}
	return summary, nil
}

func (uc *implUseCase) truncateTranscript(content string) string {
	r := []rune(content)
	if len(r) <= uc.maxTranscriptChars {
		return content
	}
	return string(r[:uc.maxTranscriptChars]) + "\n[transcript truncated]"
}

// talkRatios estimates speaker share from "AGENT:"/"CUSTOMER:" labeled lines.
// Unlabeled transcripts report 0/0 and the prompt simply shows zeros.
func talkRatios(content string) (customer, agent float64) {
	var customerChars, agentChars int
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)
		switch {
		case strings.HasPrefix(upper, "CUSTOMER:"):
			customerChars += len(trimmed)
		case strings.HasPrefix(upper, "AGENT:"):
			agentChars += len(trimmed)
		}
	}

	total := customerChars + agentChars
	if total == 0 {
		return 0, 0
	}
	return float64(customerChars) / float64(total), float64(agentChars) / float64(total)
}
