package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/environment"
)

func TestDefineAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Define("a", float64(1))
	v, err := env.Get("a", 1)
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
}

func TestGetUndefinedIsRuntimeError(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Get("missing", 7)
	require.Error(t, err)
}

func TestChildShadowsParent(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("a", "outer")
	inner := environment.New(outer)
	inner.Define("a", "inner")

	v, err := inner.Get("a", 1)
	require.NoError(t, err)
	assert.Equal(t, "inner", v)

	v2, err := outer.Get("a", 1)
	require.NoError(t, err)
	assert.Equal(t, "outer", v2)
}

func TestAssignUpdatesDefiningScope(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", float64(10))
	inner := environment.New(outer)

	err := inner.Assign("x", float64(20), 1)
	require.NoError(t, err)

	v, err := outer.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, float64(20), v)
}

func TestAssignUndefinedIsRuntimeError(t *testing.T) {
	env := environment.New(nil)
	err := env.Assign("nope", float64(1), 1)
	assert.Error(t, err)
}
