package cmd

import (
	"time"

	"lendpool/core"
	"lendpool/store/borrow"
	"lendpool/store/deposit"
	"lendpool/store/pool"
	"lendpool/store/transfer"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

// pool reads on the api path go through a short lived cache
func provideCachedPoolStore(db *db.DB) core.IPoolStore {
	return pool.Cache(pool.New(db), time.Second)
}

func provideDepositStore(db *db.DB) core.IDepositStore {
	return deposit.New(db)
}

func provideBorrowStore(db *db.DB) core.IBorrowStore {
	return borrow.New(db)
}

func provideTransferStore(db *db.DB) core.ITransferStore {
	return transfer.New(db)
}
