package pool

import (
	"context"

	"lendpool/core"
	"lendpool/internal/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type poolService struct {
	config   *core.Config
	db       core.Transactor
	pools    core.IPoolStore
	deposits core.IDepositStore
}

// New new pool service
func New(
	cfg *core.Config,
	database core.Transactor,
	pools core.IPoolStore,
	deposits core.IDepositStore,
) core.IPoolService {
	return &poolService{
		config:   cfg,
		db:       database,
		pools:    pools,
		deposits: deposits,
	}
}

// Create creates a pool seeded with the admin's first deposit. The seed
// becomes both the pool's supply and its reserve, and the admin gets the
// matching deposit position.
func (s *poolService) Create(ctx context.Context, admin, poolID string, seed core.Asset, collateralRatioPct uint64, timestamp int64) (*core.Pool, error) {
	log := logger.FromContext(ctx).WithField("service", "pool")

	if !s.config.IsAdmin(admin) {
		return nil, core.ErrNotAuthorized
	}

	if seed.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	if collateralRatioPct < lending.MinCollateralRatioPct {
		return nil, core.ErrInvalidAmount
	}

	existing, err := s.pools.Find(ctx, poolID)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if existing.ID > 0 {
		return nil, core.ErrPoolExists
	}

	position, err := s.deposits.Find(ctx, admin)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	if position.ID > 0 {
		return nil, core.ErrPositionExists
	}

	pool := &core.Pool{
		PoolID:             poolID,
		AssetType:          seed.AssetType,
		Admin:              admin,
		TotalSupplied:      seed.Amount,
		ReserveBalance:     seed.Amount,
		CollateralRatioPct: collateralRatioPct,
		CreatedAt:          timestamp,
	}
	pool.Reprice(timestamp)

	position = &core.DepositPosition{
		UserID:        admin,
		PoolID:        poolID,
		Principal:     seed.Amount,
		LastAccruedAt: timestamp,
		CreatedAt:     timestamp,
		UpdatedAt:     timestamp,
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Create(ctx, tx, pool); err != nil {
			return err
		}

		return s.deposits.Save(ctx, tx, position)
	}); err != nil {
		log.WithError(err).Errorln("create pool")
		return nil, err
	}

	return pool, nil
}
