package core

import (
	"context"

	"github.com/fox-one/pkg/store/db"
)

// transfer status
const (
	TransferStatusPending = "PENDING"
	TransferStatusHandled = "HANDLED"
)

// transfer actions
const (
	TransferActionWithdraw         = "withdraw"
	TransferActionBorrow           = "borrow"
	TransferActionRepayRefund      = "repay_refund"
	TransferActionCollateralReturn = "collateral_return"
	TransferActionSeizedCollateral = "seized_collateral"
)

// Transfer a staged custody release. Operations create transfers inside
// their own transaction; the cashier worker pays them out afterwards.
type Transfer struct {
	ID        uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TraceID   string `sql:"size:36;unique_index:trace_idx" json:"trace_id,omitempty"`
	Opponent  string `sql:"size:36" json:"opponent,omitempty"`
	AssetType string `sql:"size:32" json:"asset_type,omitempty"`
	Amount    uint64 `json:"amount,omitempty"`
	Action    string `sql:"size:32" json:"action,omitempty"`
	Status    string `sql:"size:16" json:"status,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// ITransferStore transfer store interface
type ITransferStore interface {
	Create(ctx context.Context, tx *db.DB, transfer *Transfer) error
	Top(ctx context.Context, status string, limit int) ([]*Transfer, error)
	Handled(ctx context.Context, tx *db.DB, id uint64) error
}

// IWalletService releases pool custody to accounts, the vault boundary.
type IWalletService interface {
	Transfer(ctx context.Context, transfer *Transfer) error
}
