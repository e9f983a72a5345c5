package http

import (
	"strings"

	"sales-coach-assistant/internal/assistant"
)

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return assistant.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Message: r.Message,
	}
}

type chatResp struct {
	Intent     string                  `json:"intent"`
	Confidence float64                 `json:"confidence"`
	Result     assistant.HandlerResult `json:"result"`
}

func newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{
		Intent:     string(out.Intent),
		Confidence: out.Confidence,
		Result:     out.Result,
	}
}
