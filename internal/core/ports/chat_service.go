package ports

import "context"

// CompletionRequest is a single-prompt request to the completion service.
type CompletionRequest struct {
	Model       string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// CompletionClient talks to the hosted language model.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Ping(ctx context.Context) error
}

// ChatService decides how to answer a chat message.
type ChatService interface {
	GenerateResponse(ctx context.Context, input string) (string, error)
}
