package deposit

import (
	"context"
	"fmt"

	"lendpool/core"
	"lendpool/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type depositService struct {
	db        core.Transactor
	pools     core.IPoolStore
	deposits  core.IDepositStore
	transfers core.ITransferStore
}

// New new deposit service
func New(
	database core.Transactor,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	transfers core.ITransferStore,
) core.IDepositService {
	return &depositService{
		db:        database,
		pools:     pools,
		deposits:  deposits,
		transfers: transfers,
	}
}

func (s *depositService) Deposit(ctx context.Context, account, poolID string, amount core.Asset, timestamp int64) (*core.DepositPosition, error) {
	log := logger.FromContext(ctx).WithField("service", "deposit")

	if amount.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.mustGetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	if amount.AssetType != pool.AssetType {
		return nil, core.ErrInvalidAsset
	}

	position, err := s.deposits.Find(ctx, account)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	// one deposit position per account, system wide
	if position.ID > 0 && position.PoolID != poolID {
		return nil, core.ErrPositionExists
	}

	created := position.ID == 0
	if created {
		position = &core.DepositPosition{
			UserID:        account,
			PoolID:        poolID,
			Principal:     amount.Amount,
			LastAccruedAt: timestamp,
			CreatedAt:     timestamp,
		}
	} else {
		position.Accrue(pool.DepositRateBps, timestamp)
		position.Principal += amount.Amount
	}
	position.UpdatedAt = timestamp

	pool.TotalSupplied += amount.Amount
	pool.ReserveBalance += amount.Amount
	pool.Reprice(timestamp)

	if err := s.db.Tx(func(tx *db.DB) error {
		if created {
			if err := s.deposits.Save(ctx, tx, position); err != nil {
				return err
			}
		} else {
			if err := s.deposits.Update(ctx, tx, position); err != nil {
				return err
			}
		}

		return s.pools.Update(ctx, tx, pool)
	}); err != nil {
		log.WithError(err).Errorln("commit deposit")
		return nil, err
	}

	return position, nil
}

// Withdraw pays out up to principal plus earned interest, consuming interest
// first. The liquidity check keeps lent-out funds untouchable.
func (s *depositService) Withdraw(ctx context.Context, account, poolID string, amount uint64, timestamp int64) (*core.DepositPosition, error) {
	log := logger.FromContext(ctx).WithField("service", "deposit")

	if amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.mustGetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	position, err := s.deposits.Find(ctx, account)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	if position.ID == 0 || position.PoolID != poolID {
		return nil, core.ErrDepositNotFound
	}

	position.Accrue(pool.DepositRateBps, timestamp)

	if amount > position.Balance() {
		return nil, core.ErrInsufficientBalance
	}

	if amount > pool.Liquidity() {
		return nil, core.ErrInsufficientBalance
	}

	// interest first, remainder against principal
	fromInterest := amount
	if fromInterest > position.AccruedInterest {
		fromInterest = position.AccruedInterest
	}
	position.AccruedInterest -= fromInterest
	position.Principal -= amount - fromInterest
	position.UpdatedAt = timestamp

	pool.TotalSupplied -= amount
	pool.ReserveBalance -= amount
	pool.Reprice(timestamp)

	transfer := &core.Transfer{
		TraceID:   id.TraceIDFrom(fmt.Sprintf("withdraw-%s-%s-%d", account, poolID, timestamp)),
		Opponent:  account,
		AssetType: pool.AssetType,
		Amount:    amount,
		Action:    core.TransferActionWithdraw,
		CreatedAt: timestamp,
	}

	closed := position.Balance() == 0

	if err := s.db.Tx(func(tx *db.DB) error {
		if closed {
			if err := s.deposits.Delete(ctx, tx, position); err != nil {
				return err
			}
		} else {
			if err := s.deposits.Update(ctx, tx, position); err != nil {
				return err
			}
		}

		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}

		return s.transfers.Create(ctx, tx, transfer)
	}); err != nil {
		log.WithError(err).Errorln("commit withdraw")
		return nil, err
	}

	if closed {
		return nil, nil
	}

	return position, nil
}

func (s *depositService) mustGetPool(ctx context.Context, poolID string) (*core.Pool, error) {
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
