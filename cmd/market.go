package cmd

import (
	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var updateMarketCmd = &cobra.Command{
	Use:     "update-market",
	Aliases: []string{"um"},
	Short:   "update market risk parameters",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		markets := provideMarketStore(database)
		market, err := markets.Find(ctx)
		if err != nil {
			cmd.PrintErrln("find market error:", err)
			return
		}

		if flag, _ := cmd.Flags().GetString("ltv"); flag != "" {
			v, err := decimal.NewFromString(flag)
			if err != nil {
				panic("invalid ltv")
			}

			scaled := v.Shift(number.CanonicalDecimals).Floor()
			if scaled.LessThan(core.MinLoanToValueRatio) {
				cmd.PrintErrln("ltv must be at least 0.4")
				return
			}
			market.LoanToValueRatio = scaled
		}

		if flag, _ := cmd.Flags().GetString("threshold"); flag != "" {
			v, err := decimal.NewFromString(flag)
			if err != nil {
				panic("invalid threshold")
			}

			scaled := v.Shift(number.CanonicalDecimals).Floor()
			if scaled.LessThan(core.MinLiquidationThreshold) {
				cmd.PrintErrln("threshold must be at least 0.6")
				return
			}
			market.LiquidationThreshold = scaled
		}

		if flag, _ := cmd.Flags().GetString("rate"); flag != "" {
			v, err := decimal.NewFromString(flag)
			if err != nil {
				panic("invalid rate")
			}
			market.BorrowRatePerSecond = v.Shift(number.CanonicalDecimals).Floor()
		}

		if err := database.Tx(func(tx *db.DB) error {
			return markets.Update(ctx, tx, market)
		}); err != nil {
			cmd.PrintErrln("update market error:", err)
			return
		}

		cmd.Println("market updated")
	},
}

func init() {
	rootCmd.AddCommand(updateMarketCmd)
	updateMarketCmd.Flags().String("ltv", "", "loan to value ratio, plain decimal")
	updateMarketCmd.Flags().String("threshold", "", "liquidation threshold, plain decimal")
	updateMarketCmd.Flags().String("rate", "", "borrow rate per second, plain decimal")
}
