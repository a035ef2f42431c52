package id

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestUUIDFromString(t *testing.T) {
	a := UUIDFromString("loan-btc-alice-100-50")
	b := UUIDFromString("loan-btc-alice-100-50")
	c := UUIDFromString("loan-btc-alice-100-51")

	assert.Equal(t, a, b, "same text must yield the same id")
	assert.NotEqual(t, a, c, "different text must yield different ids")
	assert.Equal(t, 36, len(a))
}

func TestGenTraceID(t *testing.T) {
	a := GenTraceID()
	b := GenTraceID()

	assert.Equal(t, 36, len(a))
	assert.NotEqual(t, a, b)
}
