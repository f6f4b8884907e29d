package borrow

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type borrowStore struct {
	db *db.DB
}

// New new borrow position store
func New(db *db.DB) core.IBorrowStore {
	return &borrowStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.BorrowPosition{})
		if err := tx.AutoMigrate(core.BorrowPosition{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *borrowStore) Save(ctx context.Context, tx *db.DB, borrow *core.BorrowPosition) error {
	return tx.Update().Create(borrow).Error
}

func (s *borrowStore) Find(ctx context.Context, userID string) (*core.BorrowPosition, error) {
	var borrow core.BorrowPosition
	if err := s.db.View().Where("user_id=?", userID).First(&borrow).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.BorrowPosition{}, nil
		}
		return nil, err
	}

	return &borrow, nil
}

func (s *borrowStore) CountByPool(ctx context.Context, poolID string) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.BorrowPosition{}).
		Where("pool_id=?", poolID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *borrowStore) All(ctx context.Context) ([]*core.BorrowPosition, error) {
	var borrows []*core.BorrowPosition
	if err := s.db.View().Find(&borrows).Error; err != nil {
		return nil, err
	}

	return borrows, nil
}

func (s *borrowStore) Update(ctx context.Context, tx *db.DB, borrow *core.BorrowPosition) error {
	version := borrow.Version
	borrow.Version++

	update := tx.Update().Model(core.BorrowPosition{}).
		Where("user_id=? and version=?", borrow.UserID, version).
		Updates(map[string]interface{}{
			"principal":        borrow.Principal,
			"collateral_held":  borrow.CollateralHeld,
			"accrued_interest": borrow.AccruedInterest,
			"last_accrued_at":  borrow.LastAccruedAt,
			"updated_at":       borrow.UpdatedAt,
			"version":          borrow.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *borrowStore) Delete(ctx context.Context, tx *db.DB, borrow *core.BorrowPosition) error {
	return tx.Update().
		Where("user_id=? and version=?", borrow.UserID, borrow.Version).
		Delete(core.BorrowPosition{}).Error
}
