package cmd

import (
	"github.com/spf13/cobra"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "withdraw supplied assets plus earned interest",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		account, _ := cmd.Flags().GetString("account")
		poolID, _ := cmd.Flags().GetString("pool")
		amount := amountFlag(cmd, "amount")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		deposits := provideDepositStore(database)
		transfers := provideTransferStore(database)

		position, err := provideDepositService(database, pools, deposits, transfers).Withdraw(
			ctx,
			account,
			poolID,
			amount,
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
	rootCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().String("account", "", "depositor account")
	withdrawCmd.Flags().StringP("pool", "P", "", "pool id")
	withdrawCmd.Flags().StringP("amount", "q", "", "amount")
	withdrawCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}
