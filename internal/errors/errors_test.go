package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"empty query", ErrEmptyQuery, 2},
		{"wrapped config", fmt.Errorf("failed to load: %w", ErrConfigInvalid), 2},
		{"wrapped search", fmt.Errorf("query %q: %w", "go", ErrSearchFailed), 3},
		{"other", errors.New("something else"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
