package cmd

import (
	"lendpool/core"

	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "supply assets into a pool",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		account, _ := cmd.Flags().GetString("account")
		poolID, _ := cmd.Flags().GetString("pool")
		assetType, _ := cmd.Flags().GetString("asset")
		amount := amountFlag(cmd, "amount")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		deposits := provideDepositStore(database)
		transfers := provideTransferStore(database)

		position, err := provideDepositService(database, pools, deposits, transfers).Deposit(
			ctx,
			account,
			poolID,
			core.Asset{AssetType: assetType, Amount: amount},
			opTimestamp(cmd),
		)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, position)
	},
}

func init() {
	rootCmd.AddCommand(depositCmd)
	depositCmd.Flags().String("account", "", "depositor account")
	depositCmd.Flags().StringP("pool", "P", "", "pool id")
	depositCmd.Flags().StringP("asset", "a", "", "asset type")
	depositCmd.Flags().StringP("amount", "q", "", "amount")
	depositCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}
