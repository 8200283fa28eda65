package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsCause(t *testing.T) {
	wrapped := Wrap(errSentinel, "loading company")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "loading company: sentinel", wrapped.Error())
}

func TestWithStackFormatsStackTrace(t *testing.T) {
	err := WithStack(errSentinel)

	assert.True(t, Is(err, errSentinel))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackFormatsStackTrace")
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsFindsTypedError(t *testing.T) {
	err := Wrapf(&codedError{code: 7}, "call %s", "backend")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
}

func TestJoin(t *testing.T) {
	other := New("other")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}
