package codes

import (
	"lendpool/core"

	"github.com/twitchtv/twirp"
)

// Twirp maps a ledger error code onto the closest twirp error code.
func Twirp(code core.ErrorCode) twirp.ErrorCode {
	switch code {
	case core.ErrNotAuthorized:
		return twirp.PermissionDenied
	case core.ErrPoolNotFound, core.ErrDepositNotFound, core.ErrBorrowNotFound:
		return twirp.NotFound
	case core.ErrPoolExists, core.ErrPositionExists:
		return twirp.AlreadyExists
	case core.ErrInsufficientBalance, core.ErrInsufficientCollateral, core.ErrSeizeNotAllowed:
		return twirp.FailedPrecondition
	case core.ErrInvalidAmount, core.ErrInvalidAsset:
		return twirp.InvalidArgument
	default:
		return twirp.Internal
	}
}

// HTTPStatus http status for a ledger error code
func HTTPStatus(code core.ErrorCode) int {
	return twirp.ServerHTTPStatusFromErrorCode(Twirp(code))
}
