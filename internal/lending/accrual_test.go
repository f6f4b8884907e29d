package lending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccrueOneYear(t *testing.T) {
	// principal × rate/10000 × 1, integer division at each stage
	assert.Equal(t, uint64(4000), Accrue(100000, 400, SecondsPerYear))
	assert.Equal(t, uint64(3), Accrue(99, 400, SecondsPerYear))
	assert.Equal(t, uint64(0), Accrue(24, 400, SecondsPerYear))
}

func TestAccrueUnderOneYear(t *testing.T) {
	// the year fraction truncates to zero for any span under one year
	assert.Equal(t, uint64(0), Accrue(100000, 400, SecondsPerYear-1))
	assert.Equal(t, uint64(0), Accrue(1<<40, 8100, SecondsPerYear/2))
}

func TestAccrueMultiYear(t *testing.T) {
	assert.Equal(t, uint64(8000), Accrue(100000, 400, 2*SecondsPerYear))
	// two and a half years counts as two
	assert.Equal(t, uint64(8000), Accrue(100000, 400, 2*SecondsPerYear+SecondsPerYear/2))
}

func TestAccrueZeroInputs(t *testing.T) {
	assert.Equal(t, uint64(0), Accrue(0, 400, SecondsPerYear))
	assert.Equal(t, uint64(0), Accrue(100000, 0, SecondsPerYear))
	assert.Equal(t, uint64(0), Accrue(100000, 400, 0))
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, uint64(10), Elapsed(100, 110))
	assert.Equal(t, uint64(0), Elapsed(100, 100))
	// a timestamp running backwards never accrues negative interest
	assert.Equal(t, uint64(0), Elapsed(100, 90))
}
