package core

import (
	"context"

	"lendpool/internal/lending"

	"github.com/fox-one/pkg/store/db"
)

// DepositPosition user supply position. The unique index on user_id keeps
// the upstream one-position-per-account rule: an account cannot supply to
// two pools at once.
type DepositPosition struct {
	ID              uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID          string `sql:"size:36;unique_index:deposit_user_idx" json:"user_id"`
	PoolID          string `sql:"size:36" json:"pool_id"`
	Principal       uint64 `json:"principal"`
	AccruedInterest uint64 `json:"accrued_interest"`
	LastAccruedAt   int64  `json:"last_accrued_at"`
	Version         int64  `sql:"default:0" json:"version"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

// Balance principal plus interest earned so far
func (d *DepositPosition) Balance() uint64 {
	return d.Principal + d.AccruedInterest
}

// Accrue brings interest up to timestamp at the pool's deposit rate.
func (d *DepositPosition) Accrue(rateBps uint64, timestamp int64) {
	if elapsed := lending.Elapsed(d.LastAccruedAt, timestamp); elapsed > 0 {
		d.AccruedInterest += lending.Accrue(d.Principal, rateBps, elapsed)
		d.LastAccruedAt = timestamp
	}
}

// IDepositStore deposit position store interface
type IDepositStore interface {
	Save(ctx context.Context, tx *db.DB, deposit *DepositPosition) error
	Find(ctx context.Context, userID string) (*DepositPosition, error)
	CountByPool(ctx context.Context, poolID string) (int64, error)
	All(ctx context.Context) ([]*DepositPosition, error)
	Update(ctx context.Context, tx *db.DB, deposit *DepositPosition) error
	Delete(ctx context.Context, tx *db.DB, deposit *DepositPosition) error
}

// IDepositService deposit service interface
type IDepositService interface {
	Deposit(ctx context.Context, account, poolID string, amount Asset, timestamp int64) (*DepositPosition, error)
	Withdraw(ctx context.Context, account, poolID string, amount uint64, timestamp int64) (*DepositPosition, error)
}
