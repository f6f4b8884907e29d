package borrow

import (
	"context"
	"fmt"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type borrowService struct {
	db        core.Transactor
	pools     core.IPoolStore
	borrows   core.IBorrowStore
	transfers core.ITransferStore
	price     core.PriceFunc
}

// New new borrow service
func New(
	database core.Transactor,
	pools core.IPoolStore,
	borrows core.IBorrowStore,
	transfers core.ITransferStore,
	price core.PriceFunc,
) core.IBorrowService {
	if price == nil {
		price = core.IdentityPrice
	}

	return &borrowService{
		db:        database,
		pools:     pools,
		borrows:   borrows,
		transfers: transfers,
		price:     price,
	}
}

func (s *borrowService) Borrow(ctx context.Context, account, poolID string, borrowAmount uint64, collateral core.Asset, timestamp int64) (*core.BorrowPosition, error) {
	log := logger.FromContext(ctx).WithField("service", "borrow")

	if borrowAmount == 0 {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.mustGetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	if borrowAmount > pool.Liquidity() {
		return nil, core.ErrInsufficientBalance
	}

	position, err := s.borrows.Find(ctx, account)
	if err != nil {
		log.WithError(err).Errorln("borrows.Find")
		return nil, err
	}

	// one borrow position per account, system wide
	if position.ID > 0 && position.PoolID != poolID {
		return nil, core.ErrPositionExists
	}

	if position.ID > 0 && position.CollateralAssetType != collateral.AssetType {
		return nil, core.ErrInvalidAsset
	}

	created := position.ID == 0
	if created {
		position = &core.BorrowPosition{
			UserID:              account,
			PoolID:              poolID,
			CollateralAssetType: collateral.AssetType,
			LastAccruedAt:       timestamp,
			CreatedAt:           timestamp,
		}
	} else {
		position.Accrue(pool.BorrowRateBps, timestamp)
	}

	newCollateral := position.CollateralHeld + collateral.Amount
	newDebt := position.Debt() + borrowAmount

	collateralValue := s.price(collateral.AssetType, pool.AssetType, newCollateral)
	if !lending.MeetsCollateralRatio(collateralValue, newDebt, pool.CollateralRatioPct) {
		return nil, core.ErrInsufficientCollateral
	}

	position.Principal += borrowAmount
	position.CollateralHeld = newCollateral
	position.UpdatedAt = timestamp

	pool.TotalBorrowed += borrowAmount
	pool.ReserveBalance -= borrowAmount
	pool.Reprice(timestamp)

	transfer := &core.Transfer{
		TraceID:   id.TraceIDFrom(fmt.Sprintf("borrow-%s-%s-%d", account, poolID, timestamp)),
		Opponent:  account,
		AssetType: pool.AssetType,
		Amount:    borrowAmount,
		Action:    core.TransferActionBorrow,
		CreatedAt: timestamp,
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if created {
			if err := s.borrows.Save(ctx, tx, position); err != nil {
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

		return s.transfers.Create(ctx, tx, transfer)
	}); err != nil {
		log.WithError(err).Errorln("commit borrow")
		return nil, err
	}

	return position, nil
}

// Repay applies a payment to accrued interest first, then principal. A
// payment covering the whole debt closes the position, returns all
// collateral and refunds any overpayment.
func (s *borrowService) Repay(ctx context.Context, account, poolID string, repay core.Asset, timestamp int64) (*core.BorrowPosition, error) {
	log := logger.FromContext(ctx).WithField("service", "borrow")

	if repay.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.mustGetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	if repay.AssetType != pool.AssetType {
		return nil, core.ErrInvalidAsset
	}

	position, err := s.borrows.Find(ctx, account)
	if err != nil {
		log.WithError(err).Errorln("borrows.Find")
		return nil, err
	}

	if position.ID == 0 || position.PoolID != poolID {
		return nil, core.ErrBorrowNotFound
	}

	position.Accrue(pool.BorrowRateBps, timestamp)
	debt := position.Debt()

	var transfers []*core.Transfer
	closed := repay.Amount >= debt

	if closed {
		pool.TotalBorrowed -= position.Principal
		pool.ReserveBalance += debt

		transfers = append(transfers, &core.Transfer{
			TraceID:   id.TraceIDFrom(fmt.Sprintf("repay-collateral-%s-%s-%d", account, poolID, timestamp)),
			Opponent:  account,
			AssetType: position.CollateralAssetType,
			Amount:    position.CollateralHeld,
			Action:    core.TransferActionCollateralReturn,
			CreatedAt: timestamp,
		})

		if refund := repay.Amount - debt; refund > 0 {
			transfers = append(transfers, &core.Transfer{
				TraceID:   id.TraceIDFrom(fmt.Sprintf("repay-refund-%s-%s-%d", account, poolID, timestamp)),
				Opponent:  account,
				AssetType: pool.AssetType,
				Amount:    refund,
				Action:    core.TransferActionRepayRefund,
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
		log.WithError(err).Errorln("commit repay")
		return nil, err
	}

	if closed {
		return nil, nil
	}

	return position, nil
}

func (s *borrowService) mustGetPool(ctx context.Context, poolID string) (*core.Pool, error) {
	pool, err := s.pools.Find(ctx, poolID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	return pool, nil
}
