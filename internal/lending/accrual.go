package lending

import (
	"math"

	"github.com/holiman/uint256"
)

// Accrue computes simple interest owed on principal at rateBps over elapsed
// seconds, in a widened 256-bit domain truncating toward zero at each stage.
//
// The annual amount is fixed first, then multiplied by the whole number of
// elapsed years: spans shorter than SecondsPerYear accrue nothing. This is
// the defined behavior of the upstream ledger and is reproduced exactly so
// replayed histories stay identical; it is not a rounding bug to fix here.
func Accrue(principal, rateBps, elapsedSeconds uint64) uint64 {
	years := elapsedSeconds / SecondsPerYear
	if principal == 0 || rateBps == 0 || years == 0 {
		return 0
	}

	z := new(uint256.Int).SetUint64(principal)
	z.Mul(z, uint256.NewInt(rateBps))
	z.Div(z, uint256.NewInt(10000))
	z.Mul(z, uint256.NewInt(years))

	if !z.IsUint64() {
		return math.MaxUint64
	}

	return z.Uint64()
}

// Elapsed seconds between a position's last accrual and the supplied
// timestamp; zero when the timestamp does not move forward.
func Elapsed(lastAccruedAt, timestamp int64) uint64 {
	if timestamp <= lastAccruedAt {
		return 0
	}

	return uint64(timestamp - lastAccruedAt)
}
