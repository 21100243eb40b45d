package errors

import (
	"net/http"
	"testing"

	"wayfinder/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	err := ErrInvalidInstanceSet.WithDetails("Restroom")

	assert.True(t, errors.Is(err, ErrInvalidInstanceSet))
	assert.False(t, errors.Is(err, ErrDestinationNotFound))
	assert.Equal(t, "destination has no physical instances: Restroom", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrAnchorNotFound.WrapMessage("relocalize")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "ANCHOR_NOT_FOUND", appErr.ErrorCode())
}
