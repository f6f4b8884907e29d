package cashier

import (
	"context"
	"testing"

	"lendpool/core"
	"lendpool/internal/testutil"
	"lendpool/service/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashierPaysOutPendingTransfers(t *testing.T) {
	ctx := context.Background()

	transfers := testutil.NewTransferStore()
	wallets := wallet.New()
	w := New(&testutil.Transactor{}, transfers, wallets, Config{Batch: 10, Capacity: 1})

	require.Nil(t, transfers.Create(ctx, nil, &core.Transfer{
		TraceID:   "trace-1",
		Opponent:  "alice",
		AssetType: "cash",
		Amount:    1500,
		Action:    core.TransferActionWithdraw,
	}))
	require.Nil(t, transfers.Create(ctx, nil, &core.Transfer{
		TraceID:   "trace-2",
		Opponent:  "bob",
		AssetType: "gold",
		Amount:    60000,
		Action:    core.TransferActionCollateralReturn,
	}))

	require.Nil(t, w.onWork(ctx, w.sync))

	assert.Equal(t, uint64(1500), wallets.Balance("alice", "cash"))
	assert.Equal(t, uint64(60000), wallets.Balance("bob", "gold"))

	for _, transfer := range transfers.Transfers() {
		assert.Equal(t, core.TransferStatusHandled, transfer.Status)
	}

	// nothing left to pay out
	assert.NotNil(t, w.onWork(ctx, w.sync))
}
