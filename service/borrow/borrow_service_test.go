package borrow

import (
	"context"
	"testing"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service   core.IBorrowService
	pools     *testutil.PoolStore
	borrows   *testutil.BorrowStore
	transfers *testutil.TransferStore
}

func newFixture(t *testing.T, pool *core.Pool) *fixture {
	f := &fixture{
		pools:     testutil.NewPoolStore(),
		borrows:   testutil.NewBorrowStore(),
		transfers: testutil.NewTransferStore(),
	}
	f.service = New(&testutil.Transactor{}, f.pools, f.borrows, f.transfers, nil)

	pool.Reprice(pool.CreatedAt)
	require.Nil(t, f.pools.Create(context.Background(), nil, pool))

	return f
}

func cashPool() *core.Pool {
	return &core.Pool{
		PoolID:             "pool-cash",
		AssetType:          "cash",
		Admin:              "admin",
		TotalSupplied:      100000,
		ReserveBalance:     100000,
		CollateralRatioPct: 150,
	}
}

func TestBorrow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	position, err := f.service.Borrow(ctx, "bob", "pool-cash", 40000, core.Asset{AssetType: "gold", Amount: 60000}, 1000)
	require.Nil(t, err)

	assert.Equal(t, uint64(40000), position.Principal)
	assert.Equal(t, uint64(60000), position.CollateralHeld)
	assert.Equal(t, "gold", position.CollateralAssetType)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(40000), pool.TotalBorrowed)
	assert.Equal(t, uint64(60000), pool.ReserveBalance)
	assert.Equal(t, uint64(40), pool.Utilization())
	assert.Equal(t, uint64(400), pool.BorrowRateBps)
	assert.Equal(t, uint64(144), pool.DepositRateBps)

	transfers := f.transfers.Transfers()
	require.Equal(t, 1, len(transfers))
	assert.Equal(t, core.TransferActionBorrow, transfers[0].Action)
	assert.Equal(t, "bob", transfers[0].Opponent)
	assert.Equal(t, "cash", transfers[0].AssetType)
	assert.Equal(t, uint64(40000), transfers[0].Amount)
}

func TestBorrowInsufficientCollateral(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	// 50000 collateral puts the ratio at 125%, below the required 150%
	_, err := f.service.Borrow(ctx, "bob", "pool-cash", 40000, core.Asset{AssetType: "gold", Amount: 50000}, 1000)
	assert.Equal(t, core.ErrInsufficientCollateral, err)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pool.TotalBorrowed)
	assert.Equal(t, uint64(100000), pool.ReserveBalance)
	assert.Equal(t, 0, len(f.transfers.Transfers()))
}

func TestBorrowRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	collateral := core.Asset{AssetType: "gold", Amount: 200000}

	_, err := f.service.Borrow(ctx, "bob", "pool-cash", 0, collateral, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = f.service.Borrow(ctx, "bob", "pool-missing", 100, collateral, 1000)
	assert.Equal(t, core.ErrPoolNotFound, err)

	_, err = f.service.Borrow(ctx, "bob", "pool-cash", 100001, collateral, 1000)
	assert.Equal(t, core.ErrInsufficientBalance, err)

	_, err = f.service.Borrow(ctx, "bob", "pool-cash", 10000, collateral, 1000)
	require.Nil(t, err)

	// the held collateral type is fixed for the life of the position
	_, err = f.service.Borrow(ctx, "bob", "pool-cash", 10000, core.Asset{AssetType: "silver", Amount: 200000}, 2000)
	assert.Equal(t, core.ErrInvalidAsset, err)

	gold := cashPool()
	gold.PoolID = "pool-gold"
	gold.AssetType = "gold"
	require.Nil(t, f.pools.Create(ctx, nil, gold))

	// one borrow position per account, system wide
	_, err = f.service.Borrow(ctx, "bob", "pool-gold", 100, core.Asset{AssetType: "silver", Amount: 200000}, 2000)
	assert.Equal(t, core.ErrPositionExists, err)
}

func TestRepayInterestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Borrow(ctx, "bob", "pool-cash", 40000, core.Asset{AssetType: "gold", Amount: 60000}, 0)
	require.Nil(t, err)

	// a year at 400 bps accrues 1600 of interest
	year := int64(lending.SecondsPerYear)
	position, err := f.service.Repay(ctx, "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 2000}, year)
	require.Nil(t, err)

	assert.Equal(t, uint64(39600), position.Principal)
	assert.Equal(t, uint64(0), position.AccruedInterest)
	assert.Equal(t, year, position.LastAccruedAt)
	assert.Equal(t, uint64(60000), position.CollateralHeld)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(39600), pool.TotalBorrowed)
	assert.Equal(t, uint64(62000), pool.ReserveBalance)
}

func TestRepayClosesPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Borrow(ctx, "bob", "pool-cash", 40000, core.Asset{AssetType: "gold", Amount: 60000}, 0)
	require.Nil(t, err)

	// overpay well under a year later, so no interest accrues
	position, err := f.service.Repay(ctx, "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 40400}, 1000)
	require.Nil(t, err)
	assert.Nil(t, position)

	saved, err := f.borrows.Find(ctx, "bob")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), saved.ID)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pool.TotalBorrowed)
	assert.Equal(t, uint64(100000), pool.ReserveBalance)
	assert.Equal(t, uint64(600), pool.BorrowRateBps)
	assert.Equal(t, uint64(200), pool.DepositRateBps)

	transfers := f.transfers.Transfers()
	require.Equal(t, 3, len(transfers))
	// borrow payout, then collateral return plus the overpay refund
	assert.Equal(t, core.TransferActionCollateralReturn, transfers[1].Action)
	assert.Equal(t, "gold", transfers[1].AssetType)
	assert.Equal(t, uint64(60000), transfers[1].Amount)
	assert.Equal(t, core.TransferActionRepayRefund, transfers[2].Action)
	assert.Equal(t, uint64(400), transfers[2].Amount)
}

func TestRepayRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Repay(ctx, "bob", "pool-cash", core.Asset{AssetType: "cash"}, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = f.service.Repay(ctx, "bob", "pool-cash", core.Asset{AssetType: "gold", Amount: 100}, 1000)
	assert.Equal(t, core.ErrInvalidAsset, err)

	_, err = f.service.Repay(ctx, "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 100}, 1000)
	assert.Equal(t, core.ErrBorrowNotFound, err)
}
