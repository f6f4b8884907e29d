package liquidation

import (
	"context"
	"fmt"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type liquidationService struct {
	db        core.Transactor
	pools     core.IPoolStore
	borrows   core.IBorrowStore
	transfers core.ITransferStore
	price     core.PriceFunc
}

// New new liquidation service
func New(
	database core.Transactor,
	pools core.IPoolStore,
	borrows core.IBorrowStore,
	transfers core.ITransferStore,
	price core.PriceFunc,
) core.ILiquidationService {
	if price == nil {
		price = core.IdentityPrice
	}

	return &liquidationService{
		db:        database,
		pools:     pools,
		borrows:   borrows,
		transfers: transfers,
		price:     price,
	}
}

// Liquidate repays part of an under-collateralized borrow on the borrower's
// behalf and seizes collateral plus the liquidator bonus in exchange. At most
// half of the outstanding debt can be repaid per call.
func (s *liquidationService) Liquidate(ctx context.Context, liquidator, borrower, poolID string, repay core.Asset, timestamp int64) (*core.BorrowPosition, error) {
	log := logger.FromContext(ctx).WithField("service", "liquidation")

	pool, err := s.pools.Find(ctx, poolID)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	if repay.AssetType != pool.AssetType {
		return nil, core.ErrInvalidAsset
	}

	position, err := s.borrows.Find(ctx, borrower)
	if err != nil {
		log.WithError(err).Errorln("borrows.Find")
		return nil, err
	}

	if position.ID == 0 || position.PoolID != poolID {
		return nil, core.ErrBorrowNotFound
	}

	position.Accrue(pool.BorrowRateBps, timestamp)
	debt := position.Debt()

	collateralValue := s.price(position.CollateralAssetType, pool.AssetType, position.CollateralHeld)
	if !lending.Liquidatable(collateralValue, debt) {
		return nil, core.ErrSeizeNotAllowed
	}

	if repay.Amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	if repay.Amount > debt/2 {
		return nil, core.ErrInvalidAmount
	}

	seized, ok := lending.Seizure(repay.Amount, position.CollateralHeld)
	if !ok {
		return nil, core.ErrInsufficientCollateral
	}

	transfers := []*core.Transfer{{
		TraceID:   id.TraceIDFrom(fmt.Sprintf("liquidate-seize-%s-%s-%d", borrower, poolID, timestamp)),
		Opponent:  liquidator,
		AssetType: position.CollateralAssetType,
		Amount:    seized,
		Action:    core.TransferActionSeizedCollateral,
		CreatedAt: timestamp,
	}}

	// the half-debt cap keeps repayments partial today; the full-close
	// path stays for when the cap becomes pool-configurable
	closed := repay.Amount >= debt

	if closed {
		pool.TotalBorrowed -= position.Principal
		pool.ReserveBalance += debt

		if remaining := position.CollateralHeld - seized; remaining > 0 {
			transfers = append(transfers, &core.Transfer{
				TraceID:   id.TraceIDFrom(fmt.Sprintf("liquidate-collateral-%s-%s-%d", borrower, poolID, timestamp)),
				Opponent:  borrower,
				AssetType: position.CollateralAssetType,
				Amount:    remaining,
				Action:    core.TransferActionCollateralReturn,
				CreatedAt: timestamp,
			})
		}
	} else {
		fromInterest := repay.Amount
		if fromInterest > position.AccruedInterest {
			fromInterest = position.AccruedInterest
		}
		principalPortion := repay.Amount - fromInterest

		position.AccruedInterest -= fromInterest
		position.Principal -= principalPortion
		position.CollateralHeld -= seized
		position.UpdatedAt = timestamp

		pool.TotalBorrowed -= principalPortion
		pool.ReserveBalance += repay.Amount
	}

	pool.Reprice(timestamp)

	if err := s.db.Tx(func(tx *db.DB) error {
		if closed {
			if err := s.borrows.Delete(ctx, tx, position); err != nil {
				return err
			}
		} else {
			if err := s.borrows.Update(ctx, tx, position); err != nil {
				return err
			}
		}

		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		for _, transfer := range transfers {
			if err := s.transfers.Create(ctx, tx, transfer); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		log.WithError(err).Errorln("commit liquidation")
		return nil, err
	}

	if closed {
		return nil, nil
	}

	return position, nil
}
