package app

import (
	"errors"

	"github.com/chriscorrea/orcall/internal/config"
)

// process exit codes
const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitMissingCredential = 1
	ExitAPIFailure        = 2
)

// InvocationError marks a failure of the API call itself, as opposed to a startup failure
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ExitCode maps the outcome of a run to a process exit code
// a failed API call only yields a non-zero code when failOnError is set
func ExitCode(err error, failOnError bool) int {
	var invocationErr *InvocationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrMissingAPIKey):
		return ExitMissingCredential
	case errors.As(err, &invocationErr):
		if failOnError {
			return ExitAPIFailure
		}
		return ExitSuccess
	default:
		return ExitFailure
	}
}
