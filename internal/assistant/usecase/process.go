package usecase

import (
	"context"
	"strings"

	"sales-coach-assistant/internal/assistant"
	"sales-coach-assistant/internal/classifier"
)

// Chat runs one message through the pipeline: short-circuit checks, intent
// classification, parameter resolution, then dispatch to exactly one
// handler. The result is always a uniform envelope; handler failures never
// escape as errors.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	// Greeting/help short-circuit: skip the model call entirely.
	if classifier.IsGreeting(message) {
		return cannedOutput(GreetingReply), nil
	}
	if classifier.IsHelpRequest(message) {
		return cannedOutput(HelpReply), nil
	}

	cls := uc.classifier.Classify(ctx, message)

	params, terminal := uc.resolveParams(ctx, cls)
	if terminal != nil {
		return assistant.ChatOutput{
			Intent:     cls.Intent,
			Confidence: cls.Confidence,
			Result:     *terminal,
		}, nil
	}

	result := uc.dispatch(ctx, params, message)

	uc.l.Infof(ctx, "%s: intent=%s success=%v", LogPrefixChat, cls.Intent, result.Success)
	return assistant.ChatOutput{
		Intent:     cls.Intent,
		Confidence: cls.Confidence,
		Result:     result,
	}, nil
}

// dispatch invokes the handler registered for the intent. The map is total
// over the intent set (validated at construction). A handler panic is the
// only failure mode left, and it is converted to a failed result here so no
// failure ever reaches the caller unwrapped.
func (uc *implUseCase) dispatch(ctx context.Context, params assistant.HandlerParams, message string) (result assistant.HandlerResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: handler panic for intent %s: %v", LogPrefixChat, params.Intent, r)
			result = failure("Failed to handle request: internal error")
		}
	}()

	return uc.handlers[params.Intent](ctx, params, message)
}

func cannedOutput(reply string) assistant.ChatOutput {
	return assistant.ChatOutput{
		Intent:     classifier.IntentGeneral,
		Confidence: 1.0,
		Result: assistant.HandlerResult{
			Success: true,
			Data:    map[string]any{"reply": reply},
		},
	}
}

func failure(message string) assistant.HandlerResult {
	return assistant.HandlerResult{
		Success: false,
		Data:    nil,
		Error:   message,
	}
}
