package core

import (
	"context"

	"lendpool/internal/lending"

	"github.com/fox-one/pkg/store/db"
)

// Pool lending pool info, one per (admin, asset type)
type Pool struct {
	ID        uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	PoolID    string `sql:"size:36;unique_index:pool_idx" json:"pool_id"`
	AssetType string `sql:"size:32" json:"asset_type"`
	Admin     string `sql:"size:36" json:"admin"`
	// supplied and borrowed track principal only; position interest
	// stays on the positions until it is withdrawn or repaid
	TotalSupplied uint64 `json:"total_supplied"`
	TotalBorrowed uint64 `json:"total_borrowed"`
	// asset amount held in custody for this pool
	ReserveBalance     uint64 `json:"reserve_balance"`
	BorrowRateBps      uint64 `json:"borrow_rate_bps"`
	DepositRateBps     uint64 `json:"deposit_rate_bps"`
	CollateralRatioPct uint64 `json:"collateral_ratio_pct"`
	Version            int64  `sql:"default:0" json:"version"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
}

// Liquidity asset amount available for withdraw and borrow
func (p *Pool) Liquidity() uint64 {
	if p.TotalSupplied < p.TotalBorrowed {
		return 0
	}

	return p.TotalSupplied - p.TotalBorrowed
}

// Utilization current utilization in whole percent
func (p *Pool) Utilization() uint64 {
	return lending.UtilizationPct(p.TotalSupplied, p.TotalBorrowed)
}

// Reprice recomputes both rates from current utilization and stamps the pool.
// Called after every state-mutating operation.
func (p *Pool) Reprice(timestamp int64) {
	p.BorrowRateBps, p.DepositRateBps = lending.Rates(p.Utilization())
	p.UpdatedAt = timestamp
}

// IPoolStore pool store interface
type IPoolStore interface {
	Create(ctx context.Context, tx *db.DB, pool *Pool) error
	Find(ctx context.Context, poolID string) (*Pool, error)
	All(ctx context.Context) ([]*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}

// IPoolService pool service interface
type IPoolService interface {
	Create(ctx context.Context, admin, poolID string, seed Asset, collateralRatioPct uint64, timestamp int64) (*Pool, error)
}
