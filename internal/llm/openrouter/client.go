package openrouter

import "github.com/chriscorrea/orcall/internal/llm/common"

// ChatRequest represents the request payload for OpenRouter's chat completions API
// sampling fields are pointers so that an explicit zero is still sent
type ChatRequest struct {
	Model             string           `json:"model"`
	Messages          []common.Message `json:"messages"`
	TopP              *float64         `json:"top_p,omitempty"`
	Temperature       *float64         `json:"temperature,omitempty"`
	FrequencyPenalty  *float64         `json:"frequency_penalty,omitempty"`
	PresencePenalty   *float64         `json:"presence_penalty,omitempty"`
	RepetitionPenalty *float64         `json:"repetition_penalty,omitempty"`
	TopK              *int             `json:"top_k,omitempty"`
}
