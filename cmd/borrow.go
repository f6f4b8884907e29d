package cmd

import (
	"lendpool/core"

	"github.com/spf13/cobra"
)

var borrowCmd = &cobra.Command{
	Use:   "borrow",
	Short: "borrow pool assets against locked collateral",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		account, _ := cmd.Flags().GetString("account")
		poolID, _ := cmd.Flags().GetString("pool")
		amount := amountFlag(cmd, "amount")
		collateralType, _ := cmd.Flags().GetString("collateral-asset")
		collateralAmount := amountFlag(cmd, "collateral-amount")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		borrows := provideBorrowStore(database)
		transfers := provideTransferStore(database)

		position, err := provideBorrowService(database, pools, borrows, transfers).Borrow(
			ctx,
			account,
			poolID,
			amount,
			core.Asset{AssetType: collateralType, Amount: collateralAmount},
			opTimestamp(cmd),
		)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, position)
	},
}

func init() {
	rootCmd.AddCommand(borrowCmd)
	borrowCmd.Flags().String("account", "", "borrower account")
	borrowCmd.Flags().StringP("pool", "P", "", "pool id")
	borrowCmd.Flags().StringP("amount", "q", "", "borrow amount")
	borrowCmd.Flags().String("collateral-asset", "", "collateral asset type")
	borrowCmd.Flags().String("collateral-amount", "0", "collateral amount")
	borrowCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}
