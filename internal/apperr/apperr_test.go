package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"pasar/internal/apperr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("user not found")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("duplicate")))
	assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(apperr.InvalidOperation("no such item")))
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(apperr.InvalidArgument("empty input")))

	// Untyped errors default to internal.
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(fmt.Errorf("socket closed")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(apperr.Internal("store fault", fmt.Errorf("socket closed"))))
}

func TestInternalPreservesCause(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := apperr.Internal("store fault", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store fault")
	assert.Contains(t, err.Error(), "socket closed")
}

func TestWrapKeepsTypedErrors(t *testing.T) {
	typed := apperr.NotFound("order not found")

	wrapped := apperr.Wrap("unable to update order", typed)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(wrapped))

	var appErr *apperr.Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "order not found", appErr.Message)

	// Fetch faults get wrapped as internal.
	wrapped = apperr.Wrap("unable to update order", fmt.Errorf("timeout"))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(wrapped))
}
