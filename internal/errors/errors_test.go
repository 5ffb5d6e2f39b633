package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestWrapKeepsCause(t *testing.T) {
	base := New("boom")
	wrapped := Wrapf(Wrap(base, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Cause(wrapped))
	assert.Equal(t, "outer 1: inner: boom", wrapped.Error())
}

func TestHas(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "context")

	assert.True(t, Has[*codedError](err))
	assert.False(t, Has[*codedError](New("plain")))

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
}
