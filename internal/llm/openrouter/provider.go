// Package openrouter provides the OpenRouter chat completions adapter.
//
// API Reference: https://openrouter.ai/docs/api-reference/chat-completion
// Authentication: OPENROUTER_API_KEY environment variable (or a .env file)
//
// Example usage:
//
//	client, err := openrouter.New().CreateClient(cfg, logger)
//	resp, err := client.Generate(ctx, messages, Model, common.WithTemperature(1))
package openrouter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chriscorrea/orcall/internal/config"
	"github.com/chriscorrea/orcall/internal/llm/common"
)

// DefaultBaseURL is the OpenRouter API root; requests go to its /chat/completions
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Provider implements common.ProviderAdapter for OpenRouter
type Provider struct{}

var _ common.ProviderAdapter = (*Provider)(nil)

func New() *Provider {
	return &Provider{}
}

// CreateClient creates an OpenRouter client from the loaded configuration
func (p *Provider) CreateClient(cfg *config.Config, logger *slog.Logger, opts ...common.ClientOption) (*common.AdapterClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := append([]common.ClientOption{common.WithLogger(logger)}, opts...)
	return common.NewAdapterClient(p, cfg.APIKey, DefaultBaseURL, clientOpts...), nil
}

// ProviderName returns the name of this provider
func (p *Provider) ProviderName() string {
	return "OpenRouter"
}

// BuildRequest creates an OpenRouter request from messages and sampling options
func (p *Provider) BuildRequest(messages []common.Message, modelName string, options *common.GenerateOptions) (any, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}

	req := &ChatRequest{
		Model:    modelName,
		Messages: messages,
	}

	if options != nil {
		req.TopP = options.TopP
		req.Temperature = options.Temperature
		req.FrequencyPenalty = options.FrequencyPenalty
		req.PresencePenalty = options.PresencePenalty
		req.RepetitionPenalty = options.RepetitionPenalty
		req.TopK = options.TopK
	}

	return req, nil
}

// ParseResponse decodes a successful response body
// a body without choices is an error; callers never see an empty ChatResponse
func (p *Provider) ParseResponse(body []byte) (*common.ChatResponse, error) {
	var resp common.ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenRouter returned model %q: %w", resp.Model, common.ErrNoChoices)
	}

	return &resp, nil
}

// HandleError extracts error.message from the body, or falls back to the status code
func (p *Provider) HandleError(statusCode int, body []byte) error {
	return common.NewAPIError(statusCode, body)
}

// HandleConnectionError wraps transport failures
func (p *Provider) HandleConnectionError(err error) error {
	return fmt.Errorf("failed to reach OpenRouter: %w", err)
}

// CustomizeRequest is a no-op; the common bearer and JSON headers are all OpenRouter needs
func (p *Provider) CustomizeRequest(req *http.Request) error {
	return nil
}
