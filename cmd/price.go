package cmd

import (
	"lever/core"
	"lever/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var setPriceCmd = &cobra.Command{
	Use:     "set-price",
	Aliases: []string{"sp"},
	Short:   "submit a price quote for a price feed",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		priceAssetID, _ := cmd.Flags().GetString("price-asset")
		if priceAssetID == "" {
			panic("invalid price asset id")
		}

		raw, _ := cmd.Flags().GetString("price")
		price, err := decimal.NewFromString(raw)
		if err != nil || !price.IsPositive() {
			panic("invalid price")
		}

		database := provideDatabase()
		defer database.Close()

		prices := providePriceStore(database)
		if err := database.Tx(func(tx *db.DB) error {
			return prices.Save(ctx, tx, &core.Price{
				PriceAssetID: priceAssetID,
				Price:        price.Shift(number.CanonicalDecimals).Floor(),
			})
		}); err != nil {
			cmd.PrintErrln("save price error:", err)
			return
		}

		cmd.Println("price saved")
	},
}

func init() {
	rootCmd.AddCommand(setPriceCmd)
	setPriceCmd.Flags().String("price-asset", "", "price feed id")
	setPriceCmd.Flags().String("price", "", "price in stable units, plain decimal")
}
