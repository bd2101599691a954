package common

// GenerateOptions contains the sampling parameters sent with a chat request
// a nil field is left out of the request; a set field is always sent, zero included
type GenerateOptions struct {
	Temperature       *float64 // randomness (0.0-2.0)
	TopP              *float64 // nucleus sampling threshold (0.0-1.0)
	TopK              *int     // top-k sampling; 0 disables it
	FrequencyPenalty  *float64 // -2.0 to 2.0
	PresencePenalty   *float64 // -2.0 to 2.0
	RepetitionPenalty *float64 // 0.0 to 2.0; 1 is neutral
}

// GenerateOption configures generation parameters using the functional options pattern
type GenerateOption func(*GenerateOptions)

// NewGenerateOptions creates a new GenerateOptions with functional options applied
func NewGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	config := &GenerateOptions{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithTemperature sets response randomness
func WithTemperature(temp float64) GenerateOption {
	return func(c *GenerateOptions) {
		c.Temperature = &temp
	}
}

// WithTopP sets nucleus sampling threshold (0.0-1.0)
func WithTopP(topP float64) GenerateOption {
	return func(c *GenerateOptions) {
		c.TopP = &topP
	}
}

// WithTopK limits sampling to the k most likely tokens
func WithTopK(topK int) GenerateOption {
	return func(c *GenerateOptions) {
		c.TopK = &topK
	}
}

// WithFrequencyPenalty sets frequency penalty (-2.0 to 2.0)
func WithFrequencyPenalty(penalty float64) GenerateOption {
	return func(c *GenerateOptions) {
		c.FrequencyPenalty = &penalty
	}
}

// WithPresencePenalty sets presence penalty (-2.0 to 2.0)
func WithPresencePenalty(penalty float64) GenerateOption {
	return func(c *GenerateOptions) {
		c.PresencePenalty = &penalty
	}
}

// WithRepetitionPenalty sets repetition penalty
// supported by: openrouter
func WithRepetitionPenalty(penalty float64) GenerateOption {
	return func(c *GenerateOptions) {
		c.RepetitionPenalty = &penalty
	}
}
