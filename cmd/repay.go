package cmd

import (
	"lendpool/core"

	"github.com/spf13/cobra"
)

var repayCmd = &cobra.Command{
	Use:   "repay",
	Short: "repay debt, interest first",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		account, _ := cmd.Flags().GetString("account")
		poolID, _ := cmd.Flags().GetString("pool")
		assetType, _ := cmd.Flags().GetString("asset")
		amount := amountFlag(cmd, "amount")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		borrows := provideBorrowStore(database)
		transfers := provideTransferStore(database)

		position, err := provideBorrowService(database, pools, borrows, transfers).Repay(
			ctx,
			account,
			poolID,
			core.Asset{AssetType: assetType, Amount: amount},
			opTimestamp(cmd),
		)
		if err != nil {
			panic(err)
		}

		if position == nil {
			cmd.Println("position closed")
			return
		}

		printJSON(cmd, position)
	},
}

func init() {
	rootCmd.AddCommand(repayCmd)
	repayCmd.Flags().String("account", "", "borrower account")
	repayCmd.Flags().StringP("pool", "P", "", "pool id")
	repayCmd.Flags().StringP("asset", "a", "", "asset type")
	repayCmd.Flags().StringP("amount", "q", "", "amount")
	repayCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}
