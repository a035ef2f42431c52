package cmd

import (
	"time"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// command for bootstrapping the market row from the config file
var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "initialize the market from the config file",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		markets := provideMarketStore(database)

		if _, err := markets.Find(ctx); err == nil {
			cmd.Println("market already initialized")
			return
		} else if !gorm.IsRecordNotFoundError(err) {
			cmd.PrintErrln("find market error:", err)
			return
		}

		genesis := time.Now()
		if cfg.App.Genesis > 0 {
			genesis = time.Unix(cfg.App.Genesis, 0)
		}

		market := &core.Market{
			StableAssetID:        cfg.Market.StableAssetID,
			ShareAssetID:         cfg.Market.ShareAssetID,
			LoanToValueRatio:     cfg.Market.LoanToValueRatio,
			LiquidationThreshold: cfg.Market.LiquidationThreshold,
			BorrowRatePerSecond:  cfg.Market.BorrowRatePerSecond,
			TotalBorrows:         decimal.Zero,
			RewardPerShare:       decimal.Zero,
			TotalShares:          decimal.Zero,
			LastUpdatedTime:      genesis,
		}

		if err := database.Tx(func(tx *db.DB) error {
			return markets.Save(ctx, tx, market)
		}); err != nil {
			cmd.PrintErrln("save market error:", err)
			return
		}

		cmd.Println("market initialized")
	},
}

func init() {
	rootCmd.AddCommand(genesisCmd)
}
