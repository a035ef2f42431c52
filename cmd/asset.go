package cmd

import (
	"strings"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var addAssetCmd = &cobra.Command{
	Use:     "add-asset",
	Aliases: []string{"aa"},
	Short:   "register an asset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, _ := cmd.Flags().GetString("asset")
		if assetID == "" {
			panic("invalid asset id")
		}
		symbol, _ := cmd.Flags().GetString("symbol")
		if symbol == "" {
			panic("invalid symbol")
		}
		decimals, _ := cmd.Flags().GetString("decimals")
		priceAssetID, _ := cmd.Flags().GetString("price-asset")
		collateral, _ := cmd.Flags().GetBool("collateral")

		database := provideDatabase()
		defer database.Close()

		asset := &core.Asset{
			AssetID:      assetID,
			Symbol:       strings.ToUpper(symbol),
			Decimals:     cast.ToInt32(decimals),
			PriceAssetID: priceAssetID,
			Collateral:   collateral,
		}

		assets := provideAssetStore(database)
		if err := database.Tx(func(tx *db.DB) error {
			return assets.Save(ctx, tx, asset)
		}); err != nil {
			cmd.PrintErrln("save asset error:", err)
			return
		}

		cmd.Println("asset saved:", asset.Symbol)
	},
}

func init() {
	rootCmd.AddCommand(addAssetCmd)
	addAssetCmd.Flags().String("asset", "", "asset id")
	addAssetCmd.Flags().String("symbol", "", "asset symbol")
	addAssetCmd.Flags().String("decimals", "8", "native integer precision")
	addAssetCmd.Flags().String("price-asset", "", "price feed id")
	addAssetCmd.Flags().Bool("collateral", false, "accept as loan collateral")
}
