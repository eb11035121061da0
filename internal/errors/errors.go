// Package errors defines sentinel errors shared across reposearch.
// The CLI maps them to exit codes.
package errors

import "errors"

var (
	// ErrEmptyQuery indicates a search was requested without query text.
	// Maps to exit code 2.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrSearchFailed indicates the search use case finished with an error.
	// Maps to exit code 3.
	ErrSearchFailed = errors.New("repository search failed")

	// ErrConfigInvalid indicates the configuration failed validation.
	// Maps to exit code 2.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrConfigInvalid):
		return 2
	case errors.Is(err, ErrSearchFailed):
		return 3
	default:
		return 1
	}
}
