package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrInvalidName, ErrValidation},
		{ErrInvalidText, ErrValidation},
		{ErrInvalidPriority, ErrValidation},
		{ErrInvalidUsername, ErrValidation},
		{ErrInvalidPassword, ErrValidation},
		{ErrUsernameTaken, ErrAuth},
		{ErrUserNotFound, ErrAuth},
		{ErrInvalidCredentials, ErrAuth},
		{ErrForbidden, ErrAuth},
		{ErrListNotFound, ErrNotFound},
		{ErrTaskNotFound, ErrNotFound},
	}

	categories := []error{ErrValidation, ErrAuth, ErrNotFound, ErrCorruptState}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			for _, c := range categories {
				assert.Equal(t, c == tt.kind, errors.Is(wrapped, c), "category %v", c)
			}
		})
	}
}

func TestErrorTaxonomy_MessagesAreStable(t *testing.T) {
	assert.Equal(t, "task not found", ErrTaskNotFound.Error())
	assert.Equal(t, "username already exists", ErrUsernameTaken.Error())
}
