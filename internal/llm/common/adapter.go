package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ProviderAdapter holds the provider-specific half of a chat call
// AdapterClient does the HTTP exchange and logging and delegates everything else here
type ProviderAdapter interface {
	// ProviderName returns the human-facing provider name (e.g. "OpenRouter")
	ProviderName() string

	// BuildRequest creates the request payload that will be JSON marshaled
	BuildRequest(messages []Message, modelName string, options *GenerateOptions) (any, error)

	// ParseResponse decodes a 2xx response body
	ParseResponse(body []byte) (*ChatResponse, error)

	// HandleError turns a non-2xx response into an error
	HandleError(statusCode int, body []byte) error

	// HandleConnectionError wraps transport failures; may return err unchanged
	HandleConnectionError(err error) error

	// CustomizeRequest adds provider headers to the outgoing request
	CustomizeRequest(req *http.Request) error
}

// AdapterClient sends exactly one request per Generate call; there is no retry
type AdapterClient struct {
	*BaseClient
	adapter ProviderAdapter
}

var _ LLM = (*AdapterClient)(nil)

// NewAdapterClient creates a new client around the given adapter
func NewAdapterClient(adapter ProviderAdapter, apiKey, baseURL string, opts ...ClientOption) *AdapterClient {
	return &AdapterClient{
		BaseClient: NewBaseClient(apiKey, baseURL, opts...),
		adapter:    adapter,
	}
}

// Generate sends one chat completion request and returns the parsed response
func (c *AdapterClient) Generate(ctx context.Context, messages []Message, modelName string, options ...GenerateOption) (*ChatResponse, error) {
	genOpts := NewGenerateOptions(options...)

	request, err := c.adapter.BuildRequest(messages, modelName, genOpts)
	if err != nil {
		return nil, err
	}
	LogAPIRequest(c.Logger, c.adapter.ProviderName(), modelName, messages, genOpts)

	response, err := c.executeRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := c.readResponseBody(response)
	if err != nil {
		return nil, err
	}

	if !IsSuccess(response.StatusCode) {
		return nil, c.adapter.HandleError(response.StatusCode, body)
	}

	parsed, err := c.adapter.ParseResponse(body)
	if err != nil {
		LogJSONUnmarshalError(c.Logger, err, string(body))
		return nil, err
	}

	LogTokenUsage(c.Logger, parsed.ID, parsed.Usage)
	LogRequestCompletion(c.Logger, parsed.Model, len(parsed.Choices))

	return parsed, nil
}

// executeRequest marshals the payload and performs the single HTTP round trip
func (c *AdapterClient) executeRequest(ctx context.Context, request any) (*http.Response, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", c.adapter.ProviderName(), err)
	}

	url := BuildChatCompletionsURL(c.BaseURL)
	LogRequestExecution(c.Logger, url)

	req, err := CreateJSONRequest(ctx, url, c.APIKey, jsonData)
	if err != nil {
		return nil, err
	}

	if err := c.adapter.CustomizeRequest(req); err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		LogRequestFailure(c.Logger, err)
		return nil, c.adapter.HandleConnectionError(err)
	}

	return resp, nil
}

// readResponseBody reads and logs the HTTP response body
func (c *AdapterClient) readResponseBody(response *http.Response) ([]byte, error) {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: %w", c.adapter.ProviderName(), err)
	}

	LogHTTPResponse(c.Logger, response.StatusCode, len(body))
	LogRawResponse(c.Logger, string(body), response.StatusCode)

	return body, nil
}
