package common

import (
	"fmt"
	"log/slog"
)

// LogAPIRequest logs standardized API request information
func LogAPIRequest(logger *slog.Logger, providerName, modelName string, messages []Message, config *GenerateOptions) {
	if logger == nil {
		return
	}

	args := []any{
		"model", modelName,
		"message_count", len(messages),
	}

	// only parameters that will be sent
	if config != nil {
		if config.Temperature != nil {
			args = append(args, "temperature", *config.Temperature)
		}
		if config.TopP != nil {
			args = append(args, "top_p", *config.TopP)
		}
		if config.TopK != nil {
			args = append(args, "top_k", *config.TopK)
		}
		if config.FrequencyPenalty != nil {
			args = append(args, "frequency_penalty", *config.FrequencyPenalty)
		}
		if config.PresencePenalty != nil {
			args = append(args, "presence_penalty", *config.PresencePenalty)
		}
		if config.RepetitionPenalty != nil {
			args = append(args, "repetition_penalty", *config.RepetitionPenalty)
		}
	}

	logger.Debug(fmt.Sprintf("Sending request to %s API", providerName), args...)
}

// LogHTTPResponse logs basic HTTP response information
func LogHTTPResponse(logger *slog.Logger, statusCode int, bodyLength int) {
	if logger == nil {
		return
	}
	logger.Debug("Received API response",
		"status_code", statusCode,
		"body_length", bodyLength)
}

// LogRawResponse logs the raw API response body for debugging
func LogRawResponse(logger *slog.Logger, body string, statusCode int) {
	if logger == nil {
		return
	}
	logger.Debug("Raw API response",
		"body", body,
		"status_code", statusCode)
}

// LogTokenUsage logs token consumption when the provider reported it
func LogTokenUsage(logger *slog.Logger, responseID string, usage *Usage) {
	if logger == nil || usage == nil {
		return
	}
	logger.Debug("Parsed API response",
		"response_id", responseID,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens)
}

// LogRequestCompletion logs successful request completion
func LogRequestCompletion(logger *slog.Logger, model string, choiceCount int) {
	if logger == nil {
		return
	}
	logger.Debug("API request completed successfully",
		"model", model,
		"choice_count", choiceCount)
}

// LogRequestExecution logs request execution details
func LogRequestExecution(logger *slog.Logger, url string) {
	if logger == nil {
		return
	}
	logger.Debug("Executing API request", "url", url)
}

// LogRequestFailure logs transport failures
func LogRequestFailure(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("API request failed", "error", err)
}

// LogJSONUnmarshalError logs JSON parsing errors with context
func LogJSONUnmarshalError(logger *slog.Logger, err error, responseBody string) {
	if logger == nil {
		return
	}
	logger.Error("Failed to unmarshal JSON response",
		"error", err,
		"response_body", responseBody)
}
