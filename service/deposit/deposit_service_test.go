package deposit

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
	service   core.IDepositService
	pools     *testutil.PoolStore
	deposits  *testutil.DepositStore
	transfers *testutil.TransferStore
}

func newFixture(t *testing.T, pool *core.Pool) *fixture {
	f := &fixture{
		pools:     testutil.NewPoolStore(),
		deposits:  testutil.NewDepositStore(),
		transfers: testutil.NewTransferStore(),
	}
	f.service = New(&testutil.Transactor{}, f.pools, f.deposits, f.transfers)

	if pool != nil {
		pool.Reprice(pool.CreatedAt)
		require.Nil(t, f.pools.Create(context.Background(), nil, pool))
	}

	return f
}

func cashPool() *core.Pool {
	return &core.Pool{
		PoolID:             "pool-cash",
		AssetType:          "cash",
		Admin:              "admin",
		CollateralRatioPct: 150,
	}
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	position, err := f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash", Amount: 100000}, 1000)
	require.Nil(t, err)
	assert.Equal(t, uint64(100000), position.Principal)
	assert.Equal(t, int64(1000), position.LastAccruedAt)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(100000), pool.TotalSupplied)
	assert.Equal(t, uint64(100000), pool.ReserveBalance)

	// a second deposit merges into the same position
	position, err = f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash", Amount: 50000}, 2000)
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), position.Principal)

	pool, err = f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(150000), pool.TotalSupplied)
}

func TestDepositRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash"}, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = f.service.Deposit(ctx, "alice", "pool-missing", core.Asset{AssetType: "cash", Amount: 1}, 1000)
	assert.Equal(t, core.ErrPoolNotFound, err)

	_, err = f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "gold", Amount: 1}, 1000)
	assert.Equal(t, core.ErrInvalidAsset, err)

	gold := cashPool()
	gold.PoolID = "pool-gold"
	gold.AssetType = "gold"
	require.Nil(t, f.pools.Create(ctx, nil, gold))

	_, err = f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash", Amount: 100}, 1000)
	require.Nil(t, err)

	// one deposit position per account, system wide
	_, err = f.service.Deposit(ctx, "alice", "pool-gold", core.Asset{AssetType: "gold", Amount: 100}, 1000)
	assert.Equal(t, core.ErrPositionExists, err)
}

func TestWithdrawInterestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash", Amount: 100000}, 0)
	require.Nil(t, err)

	// one year at the idle deposit rate of 200 bps earns 2000
	year := int64(lending.SecondsPerYear)
	position, err := f.service.Withdraw(ctx, "alice", "pool-cash", 1500, year)
	require.Nil(t, err)

	assert.Equal(t, uint64(100000), position.Principal)
	assert.Equal(t, uint64(500), position.AccruedInterest)
	assert.Equal(t, year, position.LastAccruedAt)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(98500), pool.TotalSupplied)
	assert.Equal(t, uint64(98500), pool.ReserveBalance)

	transfers := f.transfers.Transfers()
	require.Equal(t, 1, len(transfers))
	assert.Equal(t, core.TransferActionWithdraw, transfers[0].Action)
	assert.Equal(t, "alice", transfers[0].Opponent)
	assert.Equal(t, uint64(1500), transfers[0].Amount)
	assert.Equal(t, core.TransferStatusPending, transfers[0].Status)
}

func TestWithdrawClosesPosition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool())

	_, err := f.service.Deposit(ctx, "alice", "pool-cash", core.Asset{AssetType: "cash", Amount: 100000}, 0)
	require.Nil(t, err)

	position, err := f.service.Withdraw(ctx, "alice", "pool-cash", 40000, 1000)
	require.Nil(t, err)
	assert.Equal(t, uint64(60000), position.Principal)

	// second withdrawal drains the position and deletes it
	position, err = f.service.Withdraw(ctx, "alice", "pool-cash", 60000, 2000)
	require.Nil(t, err)
	assert.Nil(t, position)

	saved, err := f.deposits.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), saved.ID)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), pool.TotalSupplied)
	assert.Equal(t, uint64(0), pool.ReserveBalance)
	assert.Equal(t, uint64(600), pool.BorrowRateBps)
	assert.Equal(t, uint64(200), pool.DepositRateBps)

	assert.Equal(t, 2, len(f.transfers.Transfers()))
}

func TestWithdrawRejections(t *testing.T) {
	ctx := context.Background()
	pool := cashPool()
	// most of the pool is lent out
	pool.TotalSupplied = 100000
	pool.TotalBorrowed = 90000
	pool.ReserveBalance = 10000
	f := newFixture(t, pool)

	require.Nil(t, f.deposits.Save(ctx, nil, &core.DepositPosition{
		UserID:    "alice",
		PoolID:    "pool-cash",
		Principal: 100000,
	}))

	_, err := f.service.Withdraw(ctx, "alice", "pool-cash", 0, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = f.service.Withdraw(ctx, "bob", "pool-cash", 100, 1000)
	assert.Equal(t, core.ErrDepositNotFound, err)

	_, err = f.service.Withdraw(ctx, "alice", "pool-cash", 100001, 1000)
	assert.Equal(t, core.ErrInsufficientBalance, err)

	// balance covers it but the liquidity check protects lent-out funds
	_, err = f.service.Withdraw(ctx, "alice", "pool-cash", 20000, 1000)
	assert.Equal(t, core.ErrInsufficientBalance, err)

	_, err = f.service.Withdraw(ctx, "alice", "pool-cash", 10000, 1000)
	assert.Nil(t, err)
}
