package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   string
	}{
		{
			name:       "message from error body",
			statusCode: http.StatusUnauthorized,
			body:       `{"error": {"message": "invalid key", "code": 401}}`,
			expected:   "invalid key",
		},
		{
			name:       "unparsable body",
			statusCode: http.StatusInternalServerError,
			body:       "<html>bad gateway</html>",
			expected:   "API request failed with status 500",
		},
		{
			name:       "empty body",
			statusCode: http.StatusBadGateway,
			body:       "",
			expected:   "API request failed with status 502",
		},
		{
			name:       "error field missing",
			statusCode: http.StatusBadRequest,
			body:       `{"detail": "nope"}`,
			expected:   "API request failed with status 400",
		},
		{
			name:       "empty message",
			statusCode: http.StatusTooManyRequests,
			body:       `{"error": {"message": ""}}`,
			expected:   "API request failed with status 429",
		},
		{
			name:       "error is a string",
			statusCode: http.StatusForbidden,
			body:       `{"error": "forbidden"}`,
			expected:   "API request failed with status 403",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.statusCode, []byte(tt.body))
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, tt.statusCode, err.StatusCode)

			// usable through errors.As once wrapped
			var apiErr *APIError
			assert.True(t, errors.As(error(err), &apiErr))
		})
	}
}

func TestChatResponse_Content(t *testing.T) {
	resp := &ChatResponse{Choices: []Choice{{Message: Message{Content: "42"}}, {Message: Message{Content: "41"}}}}
	content, err := resp.Content()
	assert.NoError(t, err)
	assert.Equal(t, "42", content)

	_, err = (&ChatResponse{Model: "m"}).Content()
	assert.ErrorIs(t, err, ErrNoChoices)

	var nilResp *ChatResponse
	_, err = nilResp.Content()
	assert.ErrorIs(t, err, ErrNoChoices)
}
