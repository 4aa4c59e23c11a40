package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("boom")
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())

	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "boom"))
	assert.Contains(t, verbose, "error_stack_test.go")
}

func TestWrapErrorStack(t *testing.T) {
	require.NoError(t, WrapErrorStack(nil))

	err := WrapErrorStack(errSentinel)
	require.Error(t, err)
	require.True(t, errors.Is(err, errSentinel))
	require.Equal(t, "sentinel", err.Error())
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	require.NoError(t, WrapErrorStackWithMessage(nil, ""))

	err := WrapErrorStackWithMessage(errSentinel, "outer")
	require.Error(t, err)
	require.True(t, errors.Is(err, errSentinel))
	require.Equal(t, "outer: sentinel", err.Error())

	err = WrapErrorStackWithMessage(nil, "only message")
	require.Error(t, err)
	require.Equal(t, "only message", err.Error())
}

func TestOrderedKeyCompare(t *testing.T) {
	require.Equal(t, int64(0), OrderedKeyCompare(7, 7))
	require.Equal(t, int64(-1), OrderedKeyCompare(3, 7))
	require.Equal(t, int64(1), OrderedKeyCompare("b", "a"))
	require.Equal(t, int64(-1), OrderedKeyCompare(1.5, 2.5))
}
