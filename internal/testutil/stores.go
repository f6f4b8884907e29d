// Package testutil provides in-memory store fakes for service tests. They
// mirror the sql-backed stores closely enough for service logic: finds on a
// missing row return a zero-value struct with ID == 0, writes assign ids.
package testutil

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
)

// Transactor runs the callback directly, no real transaction.
type Transactor struct{}

func (t *Transactor) Tx(fn func(tx *db.DB) error) error {
	return fn(nil)
}

// PoolStore in-memory core.IPoolStore
type PoolStore struct {
	pools  map[string]*core.Pool
	nextID uint64
}

func NewPoolStore() *PoolStore {
	return &PoolStore{pools: make(map[string]*core.Pool)}
}

func (s *PoolStore) Create(_ context.Context, _ *db.DB, pool *core.Pool) error {
	s.nextID++
	pool.ID = s.nextID

	dup := *pool
	s.pools[pool.PoolID] = &dup
	return nil
}

func (s *PoolStore) Find(_ context.Context, poolID string) (*core.Pool, error) {
	if pool, ok := s.pools[poolID]; ok {
		dup := *pool
		return &dup, nil
	}

	return &core.Pool{}, nil
}

func (s *PoolStore) All(_ context.Context) ([]*core.Pool, error) {
	pools := make([]*core.Pool, 0, len(s.pools))
	for _, pool := range s.pools {
		dup := *pool
		pools = append(pools, &dup)
	}

	return pools, nil
}

func (s *PoolStore) Update(_ context.Context, _ *db.DB, pool *core.Pool) error {
	pool.Version++
	dup := *pool
	s.pools[pool.PoolID] = &dup
	return nil
}

// DepositStore in-memory core.IDepositStore
type DepositStore struct {
	deposits map[string]*core.DepositPosition
	nextID   uint64
}

func NewDepositStore() *DepositStore {
	return &DepositStore{deposits: make(map[string]*core.DepositPosition)}
}

func (s *DepositStore) Save(_ context.Context, _ *db.DB, deposit *core.DepositPosition) error {
	s.nextID++
	deposit.ID = s.nextID

	dup := *deposit
	s.deposits[deposit.UserID] = &dup
	return nil
}

func (s *DepositStore) Find(_ context.Context, userID string) (*core.DepositPosition, error) {
	if deposit, ok := s.deposits[userID]; ok {
		dup := *deposit
		return &dup, nil
	}

	return &core.DepositPosition{}, nil
}

func (s *DepositStore) CountByPool(_ context.Context, poolID string) (int64, error) {
	var count int64
	for _, deposit := range s.deposits {
		if deposit.PoolID == poolID {
			count++
		}
	}

	return count, nil
}

func (s *DepositStore) All(_ context.Context) ([]*core.DepositPosition, error) {
	deposits := make([]*core.DepositPosition, 0, len(s.deposits))
	for _, deposit := range s.deposits {
		dup := *deposit
		deposits = append(deposits, &dup)
	}

	return deposits, nil
}

func (s *DepositStore) Update(_ context.Context, _ *db.DB, deposit *core.DepositPosition) error {
	deposit.Version++
	dup := *deposit
	s.deposits[deposit.UserID] = &dup
	return nil
}

func (s *DepositStore) Delete(_ context.Context, _ *db.DB, deposit *core.DepositPosition) error {
	delete(s.deposits, deposit.UserID)
	return nil
}

// BorrowStore in-memory core.IBorrowStore
type BorrowStore struct {
	borrows map[string]*core.BorrowPosition
	nextID  uint64
}

func NewBorrowStore() *BorrowStore {
	return &BorrowStore{borrows: make(map[string]*core.BorrowPosition)}
}

func (s *BorrowStore) Save(_ context.Context, _ *db.DB, borrow *core.BorrowPosition) error {
	s.nextID++
	borrow.ID = s.nextID

	dup := *borrow
	s.borrows[borrow.UserID] = &dup
	return nil
}

func (s *BorrowStore) Find(_ context.Context, userID string) (*core.BorrowPosition, error) {
	if borrow, ok := s.borrows[userID]; ok {
		dup := *borrow
		return &dup, nil
	}

	return &core.BorrowPosition{}, nil
}

func (s *BorrowStore) CountByPool(_ context.Context, poolID string) (int64, error) {
	var count int64
	for _, borrow := range s.borrows {
		if borrow.PoolID == poolID {
			count++
		}
	}

	return count, nil
}

func (s *BorrowStore) All(_ context.Context) ([]*core.BorrowPosition, error) {
	borrows := make([]*core.BorrowPosition, 0, len(s.borrows))
	for _, borrow := range s.borrows {
		dup := *borrow
		borrows = append(borrows, &dup)
	}

	return borrows, nil
}

func (s *BorrowStore) Update(_ context.Context, _ *db.DB, borrow *core.BorrowPosition) error {
	borrow.Version++
	dup := *borrow
	s.borrows[borrow.UserID] = &dup
	return nil
}

func (s *BorrowStore) Delete(_ context.Context, _ *db.DB, borrow *core.BorrowPosition) error {
	delete(s.borrows, borrow.UserID)
	return nil
}

// TransferStore in-memory core.ITransferStore
type TransferStore struct {
	transfers []*core.Transfer
	nextID    uint64
}

func NewTransferStore() *TransferStore {
	return &TransferStore{}
}

func (s *TransferStore) Create(_ context.Context, _ *db.DB, transfer *core.Transfer) error {
	for _, t := range s.transfers {
		if t.TraceID == transfer.TraceID {
			*transfer = *t
			return nil
		}
	}

	s.nextID++
	transfer.ID = s.nextID
	transfer.Status = core.TransferStatusPending

	dup := *transfer
	s.transfers = append(s.transfers, &dup)
	return nil
}

func (s *TransferStore) Top(_ context.Context, status string, limit int) ([]*core.Transfer, error) {
	var transfers []*core.Transfer
	for _, t := range s.transfers {
		if t.Status != status {
			continue
		}

		dup := *t
		transfers = append(transfers, &dup)
		if len(transfers) >= limit {
			break
		}
	}

	return transfers, nil
}

func (s *TransferStore) Handled(_ context.Context, _ *db.DB, id uint64) error {
	for _, t := range s.transfers {
		if t.ID == id {
			t.Status = core.TransferStatusHandled
		}
	}

	return nil
}

// Transfers returns every staged transfer in creation order.
func (s *TransferStore) Transfers() []*core.Transfer {
	transfers := make([]*core.Transfer, 0, len(s.transfers))
	for _, t := range s.transfers {
		dup := *t
		transfers = append(transfers, &dup)
	}

	return transfers
}
