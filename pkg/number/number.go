package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Percent renders a basis-point rate as a decimal percentage, 144 -> 1.44.
func Percent(bps uint64) decimal.Decimal {
	return decimal.New(int64(bps), -2)
}

// WholePercent truncated integer percent of a basis-point rate, 144 -> 1.
func WholePercent(bps uint64) uint64 {
	return bps / 100
}
