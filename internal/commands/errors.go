package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// failure is the go-errors category, message and text code given to an
// uncategorised error at one stage of Execute.
type failure struct {
	category goerrors.Category
	message  string
	code     string
}

var (
	validationFailure = failure{goerrors.CategoryValidation, "command validation failed", "COMMAND_VALIDATION_FAILED"}
	executeFailure    = failure{goerrors.CategoryCommand, "command execution failed", "COMMAND_EXECUTION_FAILED"}
)

var contextFailures = []struct {
	target error
	failure
}{
	{context.Canceled, failure{goerrors.CategoryCommand, "command execution cancelled", "COMMAND_CONTEXT_CANCELED"}},
	{context.DeadlineExceeded, failure{goerrors.CategoryCommand, "command execution deadline exceeded", "COMMAND_CONTEXT_TIMEOUT"}},
}

func contextFailure(err error) failure {
	for _, candidate := range contextFailures {
		if errors.Is(err, candidate.target) {
			return candidate.failure
		}
	}
	return failure{goerrors.CategoryCommand, "command context error", "COMMAND_CONTEXT_ERROR"}
}

// classify wraps err with f. Errors the markdown service already categorised
// pass through so their text codes reach the caller.
func classify(err error, f failure) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, f.category, f.message).WithTextCode(f.code)
}
