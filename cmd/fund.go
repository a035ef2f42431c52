package cmd

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// command for crediting a token-book account, used to seed user
// balances and the swap venue's stable inventory
var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "credit a token book account",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		account, _ := cmd.Flags().GetString("account")
		assetID, _ := cmd.Flags().GetString("asset")
		if account == "" || assetID == "" {
			panic("invalid account or asset")
		}

		raw, _ := cmd.Flags().GetString("amount")
		amount, err := decimal.NewFromString(raw)
		if err != nil || !amount.IsPositive() {
			panic("invalid amount")
		}

		database := provideDatabase()
		defer database.Close()

		wallets := provideWalletStore(database)
		if err := database.Tx(func(tx *db.DB) error {
			wallet, err := wallets.Find(ctx, account, assetID)
			if err != nil {
				return err
			}

			wallet.Balance = wallet.Balance.Add(amount)
			return wallets.Save(ctx, tx, wallet)
		}); err != nil {
			cmd.PrintErrln("fund error:", err)
			return
		}

		cmd.Println("account funded")
	},
}

func init() {
	rootCmd.AddCommand(fundCmd)
	fundCmd.Flags().String("account", "", "account id")
	fundCmd.Flags().String("asset", "", "asset id")
	fundCmd.Flags().String("amount", "", "amount in native integer units")
}
