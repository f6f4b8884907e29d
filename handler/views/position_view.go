package views

import (
	"lendpool/core"
)

// Deposit deposit position view
type Deposit struct {
	core.DepositPosition
	Balance uint64 `json:"balance"`
}

// NewDeposit ...
func NewDeposit(position *core.DepositPosition) *Deposit {
	return &Deposit{
		DepositPosition: *position,
		Balance:         position.Balance(),
	}
}

// Borrow borrow position view
type Borrow struct {
	core.BorrowPosition
	Debt uint64 `json:"debt"`
}

// NewBorrow ...
func NewBorrow(position *core.BorrowPosition) *Borrow {
	return &Borrow{
		BorrowPosition: *position,
		Debt:           position.Debt(),
	}
}
