package cmd

import (
	"sync"

	"lendpool/worker"
	"lendpool/worker/cashier"
	"lendpool/worker/ratesnapshot"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lendpool job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		deposits := provideDepositStore(database)
		borrows := provideBorrowStore(database)
		transfers := provideTransferStore(database)

		workers := []worker.Worker{
			cashier.New(database, transfers, provideWalletService(), cashier.Config{
				Batch:    _flag.cashier.batch,
				Capacity: _flag.cashier.capacity,
			}),
			ratesnapshot.New(provideConfig(), pools, deposits, borrows),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
