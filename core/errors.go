package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrNotAuthorized caller is not allowed to perform the operation
	ErrNotAuthorized ErrorCode = 100001

	// ErrPoolNotFound no pool
	ErrPoolNotFound ErrorCode = 100100
	// ErrPoolExists pool id already taken
	ErrPoolExists ErrorCode = 100101
	// ErrInvalidAmount zero or out-of-range amount
	ErrInvalidAmount ErrorCode = 100102
	// ErrInvalidAsset asset type does not match the pool
	ErrInvalidAsset ErrorCode = 100103
	// ErrDepositNotFound no deposit position
	ErrDepositNotFound ErrorCode = 100104
	// ErrBorrowNotFound no borrow position
	ErrBorrowNotFound ErrorCode = 100105
	// ErrPositionExists account already holds a position in another pool
	ErrPositionExists ErrorCode = 100106
	// ErrInsufficientBalance amount exceeds balance or pool liquidity
	ErrInsufficientBalance ErrorCode = 100107
	// ErrInsufficientCollateral collateral below the required ratio
	ErrInsufficientCollateral ErrorCode = 100108
	// ErrSeizeNotAllowed position is not liquidatable
	ErrSeizeNotAllowed ErrorCode = 100109
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
