package swap

import (
	"context"

	"lever/core"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// Config swap venue config
type Config struct {
	PoolAccount  string
	VenueAccount string
}

type swapService struct {
	transfers core.AssetTransfer
	oracle    core.PriceOracle
	assets    core.IAssetStore
	cfg       Config
}

// New new swap venue executing pool-side exchanges against the venue
// account's inventory at the oracle price read at execution time.
func New(transfers core.AssetTransfer, oracle core.PriceOracle, assets core.IAssetStore, cfg Config) core.SwapVenue {
	return &swapService{
		transfers: transfers,
		oracle:    oracle,
		assets:    assets,
		cfg:       cfg,
	}
}

func (s *swapService) Swap(ctx context.Context, assetIn, assetOut string, amountIn decimal.Decimal) (decimal.Decimal, error) {
	if !amountIn.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	in, err := s.assets.Find(ctx, assetIn)
	if err != nil {
		return decimal.Zero, err
	}

	out, err := s.assets.Find(ctx, assetOut)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := s.oracle.PriceOf(ctx, in.PriceAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	proceeds := number.FromCanonical(
		number.ToCanonical(amountIn, in.Decimals).Mul(price).Shift(-number.CanonicalDecimals).Floor(),
		out.Decimals,
	)

	if err := s.transfers.Transfer(ctx, s.cfg.PoolAccount, s.cfg.VenueAccount, assetIn, amountIn); err != nil {
		return decimal.Zero, err
	}

	if err := s.transfers.Transfer(ctx, s.cfg.VenueAccount, s.cfg.PoolAccount, assetOut, proceeds); err != nil {
		return decimal.Zero, err
	}

	return proceeds, nil
}
