package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "failed to find config")

	assert.EqualError(t, err, "failed to find config")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestNewf_Wrapped(t *testing.T) {
	err := fmt.Errorf("analysis failed: %w", Newf(ErrInvalidInput, "%s is empty", "project"))

	assert.EqualError(t, err, "analysis failed: project is empty")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var fe *Error
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "project is empty", fe.Msg)
}
