package lending

import (
	"github.com/holiman/uint256"
)

// Interest model constants, basis-point arithmetic throughout.
const (
	// BaseRateBps base borrow rate, 2% per year
	BaseRateBps uint64 = 200
	// Slope1Bps rate climb over the first slope, 4% per year
	Slope1Bps uint64 = 400
	// Slope2Bps rate climb past the optimal point, 75% per year
	Slope2Bps uint64 = 7500
	// OptimalUtilizationPct the kink of the two-slope curve
	OptimalUtilizationPct uint64 = 80
	// ReserveFactorBps share of borrow interest withheld from depositors, 10%
	ReserveFactorBps uint64 = 1000
	// MinCollateralRatioPct floor for pool collateral ratios
	MinCollateralRatioPct uint64 = 150
	// LiquidationThresholdPct collateral ratio below which a borrow is seizable
	LiquidationThresholdPct uint64 = 125
	// LiquidationBonusPct seized collateral per repaid unit, 10% liquidator bonus
	LiquidationBonusPct uint64 = 110
	// SecondsPerYear accrual year length
	SecondsPerYear uint64 = 31536000
)

// UtilizationPct borrowed share of the pool in whole percent, clamped to [0, 100].
func UtilizationPct(totalSupplied, totalBorrowed uint64) uint64 {
	if totalSupplied == 0 {
		return 0
	}

	u := new(uint256.Int).SetUint64(totalBorrowed)
	u.Mul(u, uint256.NewInt(100))
	u.Div(u, uint256.NewInt(totalSupplied))
	if u.CmpUint64(100) > 0 {
		return 100
	}

	return u.Uint64()
}

// Rates borrow and deposit rates for the given utilization.
//
// An idle pool keeps the zero-utilization defaults so that created and fully
// repaid pools always quote BASE for deposits and BASE+SLOPE1 for borrows.
func Rates(utilizationPct uint64) (borrowRateBps, depositRateBps uint64) {
	if utilizationPct > 100 {
		utilizationPct = 100
	}

	if utilizationPct == 0 {
		return BaseRateBps + Slope1Bps, BaseRateBps
	}

	if utilizationPct <= OptimalUtilizationPct {
		borrowRateBps = BaseRateBps + Slope1Bps*utilizationPct/OptimalUtilizationPct
	} else {
		borrowRateBps = BaseRateBps + Slope1Bps +
			Slope2Bps*(utilizationPct-OptimalUtilizationPct)/(100-OptimalUtilizationPct)
	}

	// deposit rate = borrow rate × utilization × (1 − reserve factor),
	// one truncating division at the end
	depositRateBps = borrowRateBps * utilizationPct * (100 - ReserveFactorBps/100) / 10000
	return borrowRateBps, depositRateBps
}

// MeetsCollateralRatio reports whether collateralValue covers debt at ratioPct.
func MeetsCollateralRatio(collateralValue, debt, ratioPct uint64) bool {
	l := new(uint256.Int).SetUint64(collateralValue)
	l.Mul(l, uint256.NewInt(100))

	r := new(uint256.Int).SetUint64(debt)
	r.Mul(r, uint256.NewInt(ratioPct))

	return l.Cmp(r) >= 0
}

// Liquidatable reports whether a position with the given collateral value and
// debt sits strictly below the liquidation threshold.
func Liquidatable(collateralValue, debt uint64) bool {
	if debt == 0 {
		return false
	}

	return !MeetsCollateralRatio(collateralValue, debt, LiquidationThresholdPct)
}

// Seizure collateral owed to a liquidator for repaying repayAmount, bonus
// included. ok is false when the seizure would exceed heldCollateral.
func Seizure(repayAmount, heldCollateral uint64) (seized uint64, ok bool) {
	z := new(uint256.Int).SetUint64(repayAmount)
	z.Mul(z, uint256.NewInt(LiquidationBonusPct))
	z.Div(z, uint256.NewInt(100))

	if z.CmpUint64(heldCollateral) > 0 {
		return 0, false
	}

	return z.Uint64(), true
}
