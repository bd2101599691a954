package app

import "github.com/chriscorrea/orcall/internal/llm/common"

// the request is fixed at compile time; none of these are user-configurable
const (
	Model  = "perplexity/llama-3.1-sonar-small-128k-online"
	Prompt = "What is the meaning of life?"

	TopP              = 1.0
	Temperature       = 1.0
	FrequencyPenalty  = 0.0
	PresencePenalty   = 0.0
	RepetitionPenalty = 1.0
	TopK              = 0
)

// Messages returns the conversation sent on every invocation: a single user message
func Messages() []common.Message {
	return []common.Message{
		{Role: common.RoleUser, Content: Prompt},
	}
}

// SamplingOptions returns the fixed sampling parameters
func SamplingOptions() []common.GenerateOption {
	return []common.GenerateOption{
		common.WithTopP(TopP),
		common.WithTemperature(Temperature),
		common.WithFrequencyPenalty(FrequencyPenalty),
		common.WithPresencePenalty(PresencePenalty),
		common.WithRepetitionPenalty(RepetitionPenalty),
		common.WithTopK(TopK),
	}
}
