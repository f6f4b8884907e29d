package pool

import (
	"context"
	"fmt"
	"time"

	"lendpool/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a pool store with a short-lived read cache. Meant for the
// query side only; operation services must keep using the raw store.
func Cache(store core.IPoolStore, exp time.Duration) core.IPoolStore {
	return &cachePoolStore{
		IPoolStore: store,
		cache:      gcache.New(128).LRU().Expiration(exp).Build(),
		sf:         &singleflight.Group{},
	}
}

type cachePoolStore struct {
	core.IPoolStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cachePoolStore) Find(ctx context.Context, poolID string) (*core.Pool, error) {
	key := s.poolKey(poolID)
	if v, err := s.cache.Get(key); err == nil {
		if pool, ok := v.(*core.Pool); ok {
			return pool, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		pool, err := s.IPoolStore.Find(ctx, poolID)
		if err != nil {
			return nil, err
		}

		if pool.ID > 0 {
			s.cache.Set(key, pool)
		}

		return pool, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Pool), nil
}

func (s *cachePoolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	if err := s.IPoolStore.Update(ctx, tx, pool); err != nil {
		return err
	}

	s.cache.Remove(s.poolKey(pool.PoolID))
	return nil
}

func (s *cachePoolStore) poolKey(poolID string) string {
	return fmt.Sprintf("pool:id:%s", poolID)
}
