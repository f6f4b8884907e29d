package cmd

import (
	"lendpool/core"

	"github.com/spf13/cobra"
)

var liquidateCmd = &cobra.Command{
	Use:   "liquidate",
	Short: "repay an underwater borrow and seize collateral",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		liquidator, _ := cmd.Flags().GetString("liquidator")
		borrower, _ := cmd.Flags().GetString("borrower")
		poolID, _ := cmd.Flags().GetString("pool")
		assetType, _ := cmd.Flags().GetString("asset")
		amount := amountFlag(cmd, "amount")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		borrows := provideBorrowStore(database)
		transfers := provideTransferStore(database)

		position, err := provideLiquidationService(database, pools, borrows, transfers).Liquidate(
			ctx,
			liquidator,
			borrower,
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
	rootCmd.AddCommand(liquidateCmd)
	liquidateCmd.Flags().String("liquidator", "", "liquidator account")
	liquidateCmd.Flags().String("borrower", "", "borrower account")
	liquidateCmd.Flags().StringP("pool", "P", "", "pool id")
	liquidateCmd.Flags().StringP("asset", "a", "", "asset type")
	liquidateCmd.Flags().StringP("amount", "q", "", "repay amount")
	liquidateCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}
