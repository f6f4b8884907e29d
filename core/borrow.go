package core

import (
	"context"

	"lendpool/internal/lending"

	"github.com/fox-one/pkg/store/db"
)

// BorrowPosition user debt plus the collateral locked against it. Same
// one-position-per-account rule as deposits.
type BorrowPosition struct {
	ID                  uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID              string `sql:"size:36;unique_index:borrow_user_idx" json:"user_id"`
	PoolID              string `sql:"size:36" json:"pool_id"`
	Principal           uint64 `json:"principal"`
	CollateralHeld      uint64 `json:"collateral_held"`
	CollateralAssetType string `sql:"size:32" json:"collateral_asset_type"`
	AccruedInterest     uint64 `json:"accrued_interest"`
	LastAccruedAt       int64  `json:"last_accrued_at"`
	Version             int64  `sql:"default:0" json:"version"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
}

// Debt principal plus interest owed so far
func (b *BorrowPosition) Debt() uint64 {
	return b.Principal + b.AccruedInterest
}

// Accrue brings interest up to timestamp at the pool's borrow rate.
func (b *BorrowPosition) Accrue(rateBps uint64, timestamp int64) {
	if elapsed := lending.Elapsed(b.LastAccruedAt, timestamp); elapsed > 0 {
		b.AccruedInterest += lending.Accrue(b.Principal, rateBps, elapsed)
		b.LastAccruedAt = timestamp
	}
}

// IBorrowStore borrow position store interface
type IBorrowStore interface {
	Save(ctx context.Context, tx *db.DB, borrow *BorrowPosition) error
	Find(ctx context.Context, userID string) (*BorrowPosition, error)
	CountByPool(ctx context.Context, poolID string) (int64, error)
	All(ctx context.Context) ([]*BorrowPosition, error)
	Update(ctx context.Context, tx *db.DB, borrow *BorrowPosition) error
	Delete(ctx context.Context, tx *db.DB, borrow *BorrowPosition) error
}

// IBorrowService borrow service interface
type IBorrowService interface {
	Borrow(ctx context.Context, account, poolID string, borrowAmount uint64, collateral Asset, timestamp int64) (*BorrowPosition, error)
	Repay(ctx context.Context, account, poolID string, repay Asset, timestamp int64) (*BorrowPosition, error)
}

// ILiquidationService liquidation service interface
type ILiquidationService interface {
	Liquidate(ctx context.Context, liquidator, borrower, poolID string, repay Asset, timestamp int64) (*BorrowPosition, error)
}
