package common

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx reply from the remote API
// its message is taken from the error body when one can be parsed
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError from a status code and raw error body
// falls back to a status-code message when the body has no usable error.message
func NewAPIError(statusCode int, body []byte) *APIError {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return &APIError{StatusCode: statusCode, Message: errResp.Error.Message}
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("API request failed with status %d", statusCode),
	}
}
