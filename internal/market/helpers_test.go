package market

import (
	"context"
	"time"

	"lever/core"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

const (
	poolAccount     = "pool"
	treasuryAccount = "treasury"
	venueAccount    = "venue"

	stableAsset   = "usd"
	shareAsset    = "usd-share"
	btcAsset      = "btc"
	btcPriceAsset = "btc-usd"

	stableDecimals int32 = 6
	btcDecimals    int32 = 18
)

func d(s string) decimal.Decimal {
	return number.Decimal(s)
}

type bookKey struct {
	account string
	asset   string
}

type fakeBook struct {
	balances map[bookKey]decimal.Decimal
}

func newFakeBook() *fakeBook {
	return &fakeBook{balances: map[bookKey]decimal.Decimal{}}
}

func (b *fakeBook) set(account, asset, amount string) {
	b.balances[bookKey{account, asset}] = d(amount)
}

func (b *fakeBook) balance(account, asset string) decimal.Decimal {
	return b.balances[bookKey{account, asset}]
}

func (b *fakeBook) Transfer(ctx context.Context, from, to, assetID string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	if amount.IsNegative() {
		return core.ErrInvalidAmount
	}

	src := bookKey{from, assetID}
	if b.balances[src].LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	b.balances[src] = b.balances[src].Sub(amount)
	dst := bookKey{to, assetID}
	b.balances[dst] = b.balances[dst].Add(amount)
	return nil
}

func (b *fakeBook) BalanceOf(ctx context.Context, account, assetID string) (decimal.Decimal, error) {
	return b.balances[bookKey{account, assetID}], nil
}

type fakeVault struct {
	holdings map[string]decimal.Decimal
	supply   decimal.Decimal
}

func newFakeVault() *fakeVault {
	return &fakeVault{holdings: map[string]decimal.Decimal{}}
}

func (v *fakeVault) Mint(ctx context.Context, account string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	v.holdings[account] = v.holdings[account].Add(amount)
	v.supply = v.supply.Add(amount)
	return amount, nil
}

func (v *fakeVault) Burn(ctx context.Context, account string, shares decimal.Decimal) (decimal.Decimal, error) {
	if !shares.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}
	if v.holdings[account].LessThan(shares) {
		return decimal.Zero, core.ErrInsufficientBalance
	}

	v.holdings[account] = v.holdings[account].Sub(shares)
	v.supply = v.supply.Sub(shares)
	return shares, nil
}

func (v *fakeVault) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	return v.supply, nil
}

func (v *fakeVault) BalanceOf(ctx context.Context, account string) (decimal.Decimal, error) {
	return v.holdings[account], nil
}

type fakeOracle struct {
	prices map[string]decimal.Decimal
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{prices: map[string]decimal.Decimal{}}
}

func (o *fakeOracle) PriceOf(ctx context.Context, priceAssetID string) (decimal.Decimal, error) {
	price, ok := o.prices[priceAssetID]
	if !ok || !price.IsPositive() {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return price, nil
}

// fakeSwap exchanges against the venue's inventory at the oracle price,
// mirroring the production venue math.
type fakeSwap struct {
	book   *fakeBook
	oracle *fakeOracle
}

func (s *fakeSwap) Swap(ctx context.Context, assetIn, assetOut string, amountIn decimal.Decimal) (decimal.Decimal, error) {
	if !amountIn.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	price, err := s.oracle.PriceOf(ctx, btcPriceAsset)
	if err != nil {
		return decimal.Zero, err
	}

	proceeds := number.FromCanonical(
		number.ToCanonical(amountIn, btcDecimals).Mul(price).Shift(-18).Floor(),
		stableDecimals,
	)

	if err := s.book.Transfer(ctx, poolAccount, venueAccount, assetIn, amountIn); err != nil {
		return decimal.Zero, err
	}
	if err := s.book.Transfer(ctx, venueAccount, poolAccount, assetOut, proceeds); err != nil {
		return decimal.Zero, err
	}

	return proceeds, nil
}

type fixture struct {
	book   *fakeBook
	vault  *fakeVault
	oracle *fakeOracle
	engine *Engine
	market *core.Market

	stable     *core.Asset
	collateral *core.Asset

	t0 time.Time
}

func newFixture() *fixture {
	book := newFakeBook()
	vault := newFakeVault()
	oracle := newFakeOracle()

	f := &fixture{
		book:   book,
		vault:  vault,
		oracle: oracle,
		t0:     time.Unix(1700000000, 0),
		stable: &core.Asset{AssetID: stableAsset, Symbol: "USD", Decimals: stableDecimals},
		collateral: &core.Asset{
			AssetID:      btcAsset,
			Symbol:       "BTC",
			Decimals:     btcDecimals,
			PriceAssetID: btcPriceAsset,
			Collateral:   true,
		},
	}

	f.market = &core.Market{
		StableAssetID:        stableAsset,
		ShareAssetID:         shareAsset,
		LoanToValueRatio:     d("0.5").Shift(18),
		LiquidationThreshold: d("0.6").Shift(18),
		BorrowRatePerSecond:  d("100000000000"),
		TotalBorrows:         decimal.Zero,
		RewardPerShare:       decimal.Zero,
		TotalShares:          decimal.Zero,
		LastUpdatedTime:      f.t0,
	}

	f.engine = NewEngine(book, vault, oracle, &fakeSwap{book: book, oracle: oracle}, Config{
		PoolAccount:      poolAccount,
		TreasuryAccount:  treasuryAccount,
		SwapVenueAccount: venueAccount,
	})

	return f
}

func (f *fixture) lender(userID string) *core.Lender {
	return &core.Lender{UserID: userID}
}

func (f *fixture) borrower(userID string) *core.Borrower {
	return &core.Borrower{UserID: userID}
}

func (f *fixture) account(userID string) *core.CollateralAccount {
	return &core.CollateralAccount{UserID: userID, AssetID: btcAsset}
}
