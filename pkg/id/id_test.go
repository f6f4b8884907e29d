package id

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestTraceIDFrom(t *testing.T) {
	a := TraceIDFrom("withdraw-alice-pool-cash-1000")
	b := TraceIDFrom("withdraw-alice-pool-cash-1000")
	c := TraceIDFrom("withdraw-alice-pool-cash-2000")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 36, len(a))
}
