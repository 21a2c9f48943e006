package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorIsValidationClass(t *testing.T) {
	err := error(NewValidationError("email", "must be a valid email address"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "validation failed: email: must be a valid email address", err.Error())
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"password": "cannot be blank",
		"email":    "cannot be blank",
	}}

	assert.Equal(t, "validation failed: email: cannot be blank; password: cannot be blank", err.Error())
}

func TestWrappedClassAndReason(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenRevoked)

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.True(t, errors.Is(err, ErrTokenRevoked))
	assert.False(t, errors.Is(err, ErrNotFound))
}
