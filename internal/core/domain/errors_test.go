package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownCity", ErrUnknownCity},
		{"ErrNoMatches", ErrNoMatches},
		{"ErrOutOfBounds", ErrOutOfBounds},
		{"ErrMissingColumn", ErrMissingColumn},
		{"ErrUnsupportedSource", ErrUnsupportedSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNoMatches(t *testing.T) {
	assert.Equal(t, "no matching entries", ErrNoMatches.Error())
	assert.False(t, errors.Is(ErrNoMatches, ErrOutOfBounds))
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("window [10, 15) of 12 rows: %w", ErrOutOfBounds)

	assert.True(t, errors.Is(wrapped, ErrOutOfBounds))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Contains(t, wrapped.Error(), "out of bounds")
}
