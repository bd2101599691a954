package common

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContentTypeJSON is the content type of every request body we send
const ContentTypeJSON = "application/json"

// CreateJSONRequest creates a POST request carrying a JSON body and bearer auth
func CreateJSONRequest(ctx context.Context, url, apiKey string, jsonData []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("Authorization", "Bearer "+apiKey)

	return req, nil
}

// BuildChatCompletionsURL appends the chat completions path to an API base URL
func BuildChatCompletionsURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/chat/completions"
}

// IsSuccess reports whether a status code is in the 2xx range
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
