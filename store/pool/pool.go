package pool

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.IPoolStore {
	return &poolStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Pool{})
		if err := tx.AutoMigrate(core.Pool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *poolStore) Create(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	return tx.Update().Create(pool).Error
}

func (s *poolStore) Find(ctx context.Context, poolID string) (*core.Pool, error) {
	var pool core.Pool
	if err := s.db.View().Where("pool_id=?", poolID).First(&pool).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.Pool{}, nil
		}
		return nil, err
	}

	return &pool, nil
}

func (s *poolStore) All(ctx context.Context) ([]*core.Pool, error) {
	var pools []*core.Pool
	if err := s.db.View().Find(&pools).Error; err != nil {
		return nil, err
	}

	return pools, nil
}

func (s *poolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	version := pool.Version
	pool.Version++

	// map updates so zeroed columns (a fully repaid pool) still persist
	update := tx.Update().Model(core.Pool{}).
		Where("pool_id=? and version=?", pool.PoolID, version).
		Updates(map[string]interface{}{
			"total_supplied":   pool.TotalSupplied,
			"total_borrowed":   pool.TotalBorrowed,
			"reserve_balance":  pool.ReserveBalance,
			"borrow_rate_bps":  pool.BorrowRateBps,
			"deposit_rate_bps": pool.DepositRateBps,
			"updated_at":       pool.UpdatedAt,
			"version":          pool.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
