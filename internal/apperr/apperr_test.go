package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/breathe/internal/apperr"
)

var errExample = &apperr.Error{
	Message: "unknown exercise: %s",
}

func TestFmt(t *testing.T) {
	err := errExample.Fmt("Box")

	assert.Equal(t, "unknown exercise: Box", err.Error())
	assert.ErrorIs(t, err, errExample)
	assert.Equal(t, "unknown exercise: %s", errExample.Message)
}

func TestWrap(t *testing.T) {
	err := errExample.Fmt("Box").Wrap(io.EOF)

	assert.Equal(t, "unknown exercise: Box: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errExample)
}

func TestIsDifferentErrors(t *testing.T) {
	other := &apperr.Error{Message: "something else"}

	assert.False(t, errors.Is(errExample.Fmt("x"), other))
	assert.False(t, errors.Is(errExample, io.EOF))
}
