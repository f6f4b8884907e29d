package deposit

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type depositStore struct {
	db *db.DB
}

// New new deposit position store
func New(db *db.DB) core.IDepositStore {
	return &depositStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.DepositPosition{})
		if err := tx.AutoMigrate(core.DepositPosition{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *depositStore) Save(ctx context.Context, tx *db.DB, deposit *core.DepositPosition) error {
	return tx.Update().Create(deposit).Error
}

func (s *depositStore) Find(ctx context.Context, userID string) (*core.DepositPosition, error) {
	var deposit core.DepositPosition
	if err := s.db.View().Where("user_id=?", userID).First(&deposit).Error; err != nil {
		if store.IsErrNotFound(err) {
			return &core.DepositPosition{}, nil
		}
		return nil, err
	}

	return &deposit, nil
}

func (s *depositStore) CountByPool(ctx context.Context, poolID string) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.DepositPosition{}).
		Where("pool_id=?", poolID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *depositStore) All(ctx context.Context) ([]*core.DepositPosition, error) {
	var deposits []*core.DepositPosition
	if err := s.db.View().Find(&deposits).Error; err != nil {
		return nil, err
	}

	return deposits, nil
}

func (s *depositStore) Update(ctx context.Context, tx *db.DB, deposit *core.DepositPosition) error {
	version := deposit.Version
	deposit.Version++

	update := tx.Update().Model(core.DepositPosition{}).
		Where("user_id=? and version=?", deposit.UserID, version).
		Updates(map[string]interface{}{
			"principal":        deposit.Principal,
			"accrued_interest": deposit.AccruedInterest,
			"last_accrued_at":  deposit.LastAccruedAt,
			"updated_at":       deposit.UpdatedAt,
			"version":          deposit.Version,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *depositStore) Delete(ctx context.Context, tx *db.DB, deposit *core.DepositPosition) error {
	return tx.Update().
		Where("user_id=? and version=?", deposit.UserID, deposit.Version).
		Delete(core.DepositPosition{}).Error
}
