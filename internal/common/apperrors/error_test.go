package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChains(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrChild := ErrBase.New("child error")
	assert.Equal(t, "child error", ErrChild.Error())
	assert.ErrorIs(t, ErrChild, ErrBase)

	ErrGrandchild := ErrChild.New("grandchild error")
	assert.ErrorIs(t, ErrGrandchild, ErrChild)
	assert.ErrorIs(t, ErrGrandchild, ErrBase)

	ErrOther := New("other error")
	assert.NotErrorIs(t, ErrGrandchild, ErrOther)
}

func TestMsg(t *testing.T) {
	ErrBase := New("base error")
	wrapped := ErrBase.Msg("something specific went wrong")
	assert.Equal(t, "something specific went wrong", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
}

func TestMsgErr(t *testing.T) {
	ErrBase := New("base error")
	cause := errors.New("underlying cause")
	another := fmt.Errorf("another cause")

	wrapped := ErrBase.MsgErr("operation failed", cause, another)
	assert.Equal(t, "operation failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, another)
}

func TestStatusCode(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, 0, ErrBase.StatusCode())

	ErrLimited := ErrBase.New("limited").SetStatusCode(http.StatusTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, ErrLimited.StatusCode())

	// Derivation keeps the parent's status code.
	assert.Equal(t, http.StatusTooManyRequests, ErrLimited.New("derived").StatusCode())
	assert.Equal(t, http.StatusTooManyRequests, ErrLimited.Msg("wrapped").StatusCode())

	// SetStatusCode does not mutate the original.
	ErrLimited.SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusTooManyRequests, ErrLimited.StatusCode())
}

func TestWrapStdlibError(t *testing.T) {
	ErrBase := New("base error")
	cause := errors.Wrap(errors.New("inner"), "outer")

	wrapped := ErrBase.MsgErr("request failed", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, errors.Cause(cause))
}
