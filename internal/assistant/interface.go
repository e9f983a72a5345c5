package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain:
// classify a message, resolve parameters, and dispatch to the matching
// intent handler.
type UseCase interface {
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
