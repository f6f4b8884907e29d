package cmd

import (
	"lendpool/core"
	borrowservice "lendpool/service/borrow"
	depositservice "lendpool/service/deposit"
	liquidationservice "lendpool/service/liquidation"
	poolservice "lendpool/service/pool"
	walletservice "lendpool/service/wallet"

	"github.com/fox-one/pkg/store/db"
)

func provideConfig() *core.Config {
	return &cfg
}

func providePoolService(db *db.DB, pools core.IPoolStore, deposits core.IDepositStore) core.IPoolService {
	return poolservice.New(provideConfig(), db, pools, deposits)
}

func provideDepositService(db *db.DB, pools core.IPoolStore, deposits core.IDepositStore, transfers core.ITransferStore) core.IDepositService {
	return depositservice.New(db, pools, deposits, transfers)
}

func provideBorrowService(db *db.DB, pools core.IPoolStore, borrows core.IBorrowStore, transfers core.ITransferStore) core.IBorrowService {
	return borrowservice.New(db, pools, borrows, transfers, nil)
}

func provideLiquidationService(db *db.DB, pools core.IPoolStore, borrows core.IBorrowStore, transfers core.ITransferStore) core.ILiquidationService {
	return liquidationservice.New(db, pools, borrows, transfers, nil)
}

func provideWalletService() core.IWalletService {
	return walletservice.New()
}
