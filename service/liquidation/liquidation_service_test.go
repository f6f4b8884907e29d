package liquidation

import (
	"context"
	"testing"

	"lendpool/core"
	"lendpool/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service   core.ILiquidationService
	pools     *testutil.PoolStore
	borrows   *testutil.BorrowStore
	transfers *testutil.TransferStore
}

func newFixture(t *testing.T, pool *core.Pool, position *core.BorrowPosition) *fixture {
	ctx := context.Background()

	f := &fixture{
		pools:     testutil.NewPoolStore(),
		borrows:   testutil.NewBorrowStore(),
		transfers: testutil.NewTransferStore(),
	}
	f.service = New(&testutil.Transactor{}, f.pools, f.borrows, f.transfers, nil)

	pool.Reprice(pool.CreatedAt)
	require.Nil(t, f.pools.Create(ctx, nil, pool))
	require.Nil(t, f.borrows.Save(ctx, nil, position))

	return f
}

func cashPool() *core.Pool {
	return &core.Pool{
		PoolID:             "pool-cash",
		AssetType:          "cash",
		Admin:              "admin",
		TotalSupplied:      200000,
		TotalBorrowed:      85000,
		ReserveBalance:     115000,
		CollateralRatioPct: 150,
	}
}

// debt 90000 against 100000 of collateral sits at 111%, under the 125%
// liquidation threshold
func underwaterPosition() *core.BorrowPosition {
	return &core.BorrowPosition{
		UserID:              "bob",
		PoolID:              "pool-cash",
		Principal:           85000,
		AccruedInterest:     5000,
		CollateralHeld:      100000,
		CollateralAssetType: "gold",
	}
}

func TestLiquidate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool(), underwaterPosition())

	position, err := f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 40000}, 1000)
	require.Nil(t, err)

	// 40000 repaid clears the 5000 of interest, then principal;
	// the liquidator seizes 40000 plus the 10% bonus
	assert.Equal(t, uint64(50000), position.Principal)
	assert.Equal(t, uint64(0), position.AccruedInterest)
	assert.Equal(t, uint64(56000), position.CollateralHeld)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(50000), pool.TotalBorrowed)
	assert.Equal(t, uint64(155000), pool.ReserveBalance)
	assert.Equal(t, uint64(25), pool.Utilization())

	transfers := f.transfers.Transfers()
	require.Equal(t, 1, len(transfers))
	assert.Equal(t, core.TransferActionSeizedCollateral, transfers[0].Action)
	assert.Equal(t, "liquidator", transfers[0].Opponent)
	assert.Equal(t, "gold", transfers[0].AssetType)
	assert.Equal(t, uint64(44000), transfers[0].Amount)
}

func TestLiquidateGating(t *testing.T) {
	ctx := context.Background()

	repay := core.Asset{AssetType: "cash", Amount: 40000}

	// 112500 collateral against 90000 of debt is exactly 125%, still safe
	safe := underwaterPosition()
	safe.CollateralHeld = 112500
	f := newFixture(t, cashPool(), safe)

	_, err := f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", repay, 1000)
	assert.Equal(t, core.ErrSeizeNotAllowed, err)

	// one unit below the threshold opens the position up
	edge := underwaterPosition()
	edge.CollateralHeld = 112499
	f = newFixture(t, cashPool(), edge)

	_, err = f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", repay, 1000)
	assert.Nil(t, err)
}

func TestLiquidateRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cashPool(), underwaterPosition())

	_, err := f.service.Liquidate(ctx, "liquidator", "bob", "pool-missing", core.Asset{AssetType: "cash", Amount: 100}, 1000)
	assert.Equal(t, core.ErrPoolNotFound, err)

	_, err = f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", core.Asset{AssetType: "gold", Amount: 100}, 1000)
	assert.Equal(t, core.ErrInvalidAsset, err)

	_, err = f.service.Liquidate(ctx, "liquidator", "carol", "pool-cash", core.Asset{AssetType: "cash", Amount: 100}, 1000)
	assert.Equal(t, core.ErrBorrowNotFound, err)

	_, err = f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", core.Asset{AssetType: "cash"}, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	// repay capped at half the outstanding debt
	_, err = f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 45001}, 1000)
	assert.Equal(t, core.ErrInvalidAmount, err)

	pool, err := f.pools.Find(ctx, "pool-cash")
	require.Nil(t, err)
	assert.Equal(t, uint64(85000), pool.TotalBorrowed)
	assert.Equal(t, uint64(115000), pool.ReserveBalance)
	assert.Equal(t, 0, len(f.transfers.Transfers()))
}

func TestLiquidateSeizureExceedsCollateral(t *testing.T) {
	ctx := context.Background()

	// deep underwater, almost no collateral left to seize
	position := underwaterPosition()
	position.CollateralHeld = 10000
	f := newFixture(t, cashPool(), position)

	_, err := f.service.Liquidate(ctx, "liquidator", "bob", "pool-cash", core.Asset{AssetType: "cash", Amount: 40000}, 1000)
	assert.Equal(t, core.ErrInsufficientCollateral, err)

	saved, err := f.borrows.Find(ctx, "bob")
	require.Nil(t, err)
	assert.Equal(t, uint64(10000), saved.CollateralHeld)
}
