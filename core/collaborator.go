package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AssetTransfer moves token balances inside the host ledger.
//
// Implementations must be transactional with the enclosing operation:
// a failed transfer aborts everything the operation has done so far.
type AssetTransfer interface {
	Transfer(ctx context.Context, from, to, assetID string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, account, assetID string) (decimal.Decimal, error)
}

// ShareVault mints and burns pool shares. The engine treats share
// issuance as already-correct input; it never prices shares itself.
type ShareVault interface {
	Mint(ctx context.Context, account string, amount decimal.Decimal) (decimal.Decimal, error)
	Burn(ctx context.Context, account string, shares decimal.Decimal) (decimal.Decimal, error)
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
	BalanceOf(ctx context.Context, account string) (decimal.Decimal, error)
}

// PriceOracle quotes the current price of an asset as a 1e18-scaled
// integer. The engine reads it at borrow time, at eligibility-check time
// and (through the swap venue) at liquidation execution time; it never
// caches a quote.
type PriceOracle interface {
	PriceOf(ctx context.Context, priceAssetID string) (decimal.Decimal, error)
}

// SwapVenue executes an atomic exchange of amountIn assetIn for assetOut
// on behalf of the pool. A venue failure aborts the enclosing operation.
type SwapVenue interface {
	Swap(ctx context.Context, assetIn, assetOut string, amountIn decimal.Decimal) (decimal.Decimal, error)
}
