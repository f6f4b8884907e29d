package cmd

import (
	"encoding/json"
	"time"

	"lendpool/core"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// governing command for pools
var createPoolCmd = &cobra.Command{
	Use:     "create-pool",
	Aliases: []string{"cp"},
	Short:   "create a lending pool seeded with the admin's first deposit",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		admin, _ := cmd.Flags().GetString("admin")
		poolID, _ := cmd.Flags().GetString("pool")
		assetType, _ := cmd.Flags().GetString("asset")
		amount := amountFlag(cmd, "amount")
		ratio := amountFlag(cmd, "ratio")

		database := provideDatabase()
		defer database.Close()

		pools := providePoolStore(database)
		deposits := provideDepositStore(database)

		pool, err := providePoolService(database, pools, deposits).Create(
			ctx,
			admin,
			poolID,
			core.Asset{AssetType: assetType, Amount: amount},
			ratio,
			opTimestamp(cmd),
		)
		if err != nil {
			panic(err)
		}

		printJSON(cmd, pool)
	},
}

func init() {
	rootCmd.AddCommand(createPoolCmd)
	createPoolCmd.Flags().String("admin", "", "admin account")
	createPoolCmd.Flags().StringP("pool", "P", "", "pool id")
	createPoolCmd.Flags().StringP("asset", "a", "", "asset type")
	createPoolCmd.Flags().StringP("amount", "q", "", "seed amount")
	createPoolCmd.Flags().String("ratio", "150", "collateral ratio in percent")
	createPoolCmd.Flags().Int64("timestamp", 0, "operation timestamp, defaults to now")
}

func amountFlag(cmd *cobra.Command, name string) uint64 {
	raw, _ := cmd.Flags().GetString(name)
	amount, err := cast.ToUint64E(raw)
	if err != nil {
		panic("invalid " + name)
	}

	return amount
}

func opTimestamp(cmd *cobra.Command) int64 {
	timestamp, _ := cmd.Flags().GetInt64("timestamp")
	if timestamp > 0 {
		return timestamp
	}

	return time.Now().Unix()
}

func printJSON(cmd *cobra.Command, v interface{}) {
	bs, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}

	cmd.Println(string(bs))
}
