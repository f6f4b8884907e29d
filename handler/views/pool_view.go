package views

import (
	"lendpool/core"
	"lendpool/pkg/number"

	"github.com/shopspring/decimal"
)

// Pool pool view
type Pool struct {
	core.Pool
	UtilizationPct uint64          `json:"utilization_pct"`
	BorrowRate     uint64          `json:"borrow_rate"`
	DepositRate    uint64          `json:"deposit_rate"`
	BorrowAPY      decimal.Decimal `json:"borrow_apy"`
	DepositAPY     decimal.Decimal `json:"deposit_apy"`
	Suppliers      int64           `json:"suppliers"`
	Borrowers      int64           `json:"borrowers"`
}

// NewPool renders a pool with whole-percent rates alongside the exact
// decimal APY.
func NewPool(pool *core.Pool, suppliers, borrowers int64) *Pool {
	return &Pool{
		Pool:           *pool,
		UtilizationPct: pool.Utilization(),
		BorrowRate:     number.WholePercent(pool.BorrowRateBps),
		DepositRate:    number.WholePercent(pool.DepositRateBps),
		BorrowAPY:      number.Percent(pool.BorrowRateBps),
		DepositAPY:     number.Percent(pool.DepositRateBps),
		Suppliers:      suppliers,
		Borrowers:      borrowers,
	}
}
