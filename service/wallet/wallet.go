package wallet

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// supplyAccount is the book-keeping row holding the total share supply.
const supplyAccount = "share-supply"

type transferService struct {
	tx      *db.DB
	wallets core.IWalletStore
}

// Transfers binds a token-book transfer service to tx. Every balance
// move it performs commits or rolls back with the enclosing operation.
func Transfers(tx *db.DB, wallets core.IWalletStore) core.AssetTransfer {
	return &transferService{tx: tx, wallets: wallets}
}

func (s *transferService) Transfer(ctx context.Context, from, to, assetID string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	if amount.IsNegative() {
		return core.ErrInvalidAmount
	}
	if from == to {
		return nil
	}

	source, err := s.wallets.Find(ctx, from, assetID)
	if err != nil {
		return err
	}
	if source.Balance.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	source.Balance = source.Balance.Sub(amount)
	if err := s.wallets.Save(ctx, s.tx, source); err != nil {
		return err
	}

	dest, err := s.wallets.Find(ctx, to, assetID)
	if err != nil {
		return err
	}

	dest.Balance = dest.Balance.Add(amount)
	return s.wallets.Save(ctx, s.tx, dest)
}

func (s *transferService) BalanceOf(ctx context.Context, account, assetID string) (decimal.Decimal, error) {
	wallet, err := s.wallets.Find(ctx, account, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return wallet.Balance, nil
}

type shareVault struct {
	tx           *db.DB
	wallets      core.IWalletStore
	shareAssetID string
}

// Vault binds a share vault to tx. Shares are issued one-to-one against
// the deposited stable amount; the supply row mirrors every mint and burn.
func Vault(tx *db.DB, wallets core.IWalletStore, shareAssetID string) core.ShareVault {
	return &shareVault{tx: tx, wallets: wallets, shareAssetID: shareAssetID}
}

func (s *shareVault) Mint(ctx context.Context, account string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	holder, err := s.wallets.Find(ctx, account, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	holder.Balance = holder.Balance.Add(amount)
	if err := s.wallets.Save(ctx, s.tx, holder); err != nil {
		return decimal.Zero, err
	}

	supply, err := s.wallets.Find(ctx, supplyAccount, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	supply.Balance = supply.Balance.Add(amount)
	if err := s.wallets.Save(ctx, s.tx, supply); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

func (s *shareVault) Burn(ctx context.Context, account string, shares decimal.Decimal) (decimal.Decimal, error) {
	if !shares.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	holder, err := s.wallets.Find(ctx, account, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}
	if holder.Balance.LessThan(shares) {
		return decimal.Zero, core.ErrInsufficientBalance
	}

	holder.Balance = holder.Balance.Sub(shares)
	if err := s.wallets.Save(ctx, s.tx, holder); err != nil {
		return decimal.Zero, err
	}

	supply, err := s.wallets.Find(ctx, supplyAccount, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	supply.Balance = supply.Balance.Sub(shares)
	if supply.Balance.IsNegative() {
		return decimal.Zero, core.ErrArithmetic
	}
	if err := s.wallets.Save(ctx, s.tx, supply); err != nil {
		return decimal.Zero, err
	}

	return shares, nil
}

func (s *shareVault) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	supply, err := s.wallets.Find(ctx, supplyAccount, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	return supply.Balance, nil
}

func (s *shareVault) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	holder, err := s.wallets.Find(ctx, account, s.shareAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	return holder.Balance, nil
}
