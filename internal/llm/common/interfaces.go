package common

import "context"

// LLM is the client interface; the invoker depends on this rather than a concrete client
type LLM interface {
	Generate(ctx context.Context, messages []Message, modelName string, options ...GenerateOption) (*ChatResponse, error)
}
