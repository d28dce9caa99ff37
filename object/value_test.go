package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/object"
)

func TestTruthy(t *testing.T) {
	assert.False(t, object.Truthy(nil))
	assert.False(t, object.Truthy(false))
	assert.True(t, object.Truthy(true))
	assert.True(t, object.Truthy(float64(0)))
	assert.True(t, object.Truthy(""))
}

func TestEqualTotalAndSymmetric(t *testing.T) {
	assert.True(t, object.Equal(nil, nil))
	assert.False(t, object.Equal(nil, false))
	assert.False(t, object.Equal(float64(1), "1"))
	assert.True(t, object.Equal(float64(2), float64(2)))
	assert.True(t, object.Equal("a", "a"))
	assert.False(t, object.Equal(true, false))
}

func TestStringifyDropsTrailingDotZero(t *testing.T) {
	assert.Equal(t, "3", object.Stringify(float64(3)))
	assert.Equal(t, "3.5", object.Stringify(3.5))
	assert.Equal(t, "nil", object.Stringify(nil))
	assert.Equal(t, "true", object.Stringify(true))
	assert.Equal(t, "false", object.Stringify(false))
	assert.Equal(t, "hi", object.Stringify("hi"))
}

func TestUninitializedSentinel(t *testing.T) {
	assert.True(t, object.IsUninitialized(object.Uninitialized))
	assert.False(t, object.IsUninitialized(nil))
	assert.False(t, object.IsUninitialized(float64(0)))
}
