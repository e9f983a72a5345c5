package classifier

import (
	"context"

	"sales-coach-assistant/pkg/llmprovider"
	"sales-coach-assistant/pkg/log"
)

// Generator is the LLM surface the classifier needs.
type Generator interface {
	GenerateJSON(ctx context.Context, req *llmprovider.Request, out any) error
}

// Classifier maps free-text messages to intents using an LLM.
type Classifier struct {
	llm Generator
	l   log.Logger
}

// New creates a new Classifier.
func New(llm Generator, l log.Logger) *Classifier {
	return &Classifier{
		llm: llm,
		l:   l,
	}
}
