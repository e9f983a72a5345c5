package classifier

import (
	"context"
	"fmt"

	"sales-coach-assistant/pkg/llmprovider"
)

// Classify determines the user's intent from one message. It never returns
// an error: any model failure, empty response, or malformed JSON falls back
// to GENERAL with confidence 0.0.
func (c *Classifier) Classify(ctx context.Context, message string) Classification {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptClassifySystem}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: fmt.Sprintf(PromptClassifyUser, message)}},
			},
		},
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	}

	var raw classifyResponse
	if err := c.llm.GenerateJSON(ctx, req, &raw); err != nil {
		c.l.Warnf(ctx, "%s: falling back to GENERAL: %v", LogPrefixClassify, err)
		return fallbackClassification()
	}

	out := c.normalize(raw)
	c.l.Infof(ctx, "%s: classified as %s (confidence %.2f)", LogPrefixClassify, out.Intent, out.Confidence)
	return out
}

// normalize converts the untrusted wire response into a Classification,
// applying defaults for missing fields and clamping out-of-range values.
func (c *Classifier) normalize(raw classifyResponse) Classification {
	out := Classification{
		Intent:   NormalizeIntent(raw.Intent),
		DaysBack: DefaultDaysBack,
	}

	if raw.AgentName != nil {
		out.AgentName = *raw.AgentName
	}
	if raw.DaysBack != nil && *raw.DaysBack >= 1 {
		out.DaysBack = *raw.DaysBack
	}
	if raw.CallID != nil {
		out.CallID = *raw.CallID
	}
	if raw.SearchQuery != nil {
		out.SearchQuery = *raw.SearchQuery
	}
	if raw.MinDurationMinutes != nil && *raw.MinDurationMinutes > 0 {
		out.MinDurationMinutes = *raw.MinDurationMinutes
	}
	if raw.Confidence != nil {
		out.Confidence = clamp01(*raw.Confidence / 100)
	}
	return out
}

func fallbackClassification() Classification {
	return Classification{
		Intent:     IntentGeneral,
		DaysBack:   DefaultDaysBack,
		Confidence: 0.0,
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
