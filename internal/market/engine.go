package market

import (
	"context"
	"time"

	"lever/core"

	"github.com/shopspring/decimal"
)

// Config static identities the engine disburses to.
type Config struct {
	PoolAccount      string
	TreasuryAccount  string
	SwapVenueAccount string
}

// Engine is the market accounting engine.
//
// It owns no storage: every operation mutates the state rows passed to
// it, with `now` supplied once per operation by the caller. The host
// ledger serializes operations and persists (or discards) the mutated
// rows atomically.
type Engine struct {
	transfers core.AssetTransfer
	vault     core.ShareVault
	oracle    core.PriceOracle
	swap      core.SwapVenue
	cfg       Config
}

// NewEngine new market engine
func NewEngine(
	transfers core.AssetTransfer,
	vault core.ShareVault,
	oracle core.PriceOracle,
	swap core.SwapVenue,
	cfg Config,
) *Engine {
	return &Engine{
		transfers: transfers,
		vault:     vault,
		oracle:    oracle,
		swap:      swap,
		cfg:       cfg,
	}
}

// AccrualDelta projects the accumulator growth up to now without
// mutating anything. Zero elapsed time, zero outstanding borrows or
// zero shares all yield zero.
func (e *Engine) AccrualDelta(m *core.Market, now time.Time) decimal.Decimal {
	dt := now.Unix() - m.LastUpdatedTime.Unix()
	if dt <= 0 || m.TotalBorrows.IsZero() || m.TotalShares.IsZero() {
		return decimal.Zero
	}

	// interest = totalBorrows * dt * ratePerSecond / 1e18
	interest := m.TotalBorrows.
		Mul(decimal.NewFromInt(dt)).
		Mul(m.BorrowRatePerSecond).
		Shift(-18).Floor()

	// delta = interest * 1e18 / totalShares
	delta, _ := interest.Shift(18).QuoRem(m.TotalShares, 0)
	return delta
}

// Accrue folds the elapsed interest into the accumulator. It must run
// before any operation that reads or mutates the accumulator, the share
// supply or the outstanding borrows.
func (e *Engine) Accrue(m *core.Market, now time.Time) {
	m.RewardPerShare = m.RewardPerShare.Add(e.AccrualDelta(m, now))
	if now.After(m.LastUpdatedTime) {
		m.LastUpdatedTime = now
	}
}

// Settle accrues, then folds the lender's entitlement since the last
// checkpoint into PendingRewards. The checkpoint always advances, even
// when the delta or share balance is zero.
func (e *Engine) Settle(ctx context.Context, m *core.Market, lender *core.Lender, now time.Time) error {
	e.Accrue(m, now)

	delta := m.RewardPerShare.Sub(lender.RewardCheckpoint)
	if !delta.IsZero() {
		shares, err := e.vault.BalanceOf(ctx, lender.UserID)
		if err != nil {
			return err
		}
		if shares.IsPositive() {
			earned := shares.Mul(delta).Shift(-18).Floor()
			lender.PendingRewards = lender.PendingRewards.Add(earned)
		}
	}

	lender.RewardCheckpoint = m.RewardPerShare
	return nil
}

// Deposit moves stable funds into the pool and mints shares for the
// depositor.
func (e *Engine) Deposit(ctx context.Context, m *core.Market, lender *core.Lender, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	if err := e.transfers.Transfer(ctx, lender.UserID, e.cfg.PoolAccount, m.StableAssetID, amount); err != nil {
		return err
	}

	if _, err := e.vault.Mint(ctx, lender.UserID, amount); err != nil {
		return err
	}

	return e.syncShares(ctx, m)
}

// Redeem burns the lender's shares and releases the corresponding
// stable amount back out of the pool.
func (e *Engine) Redeem(ctx context.Context, m *core.Market, lender *core.Lender, shares decimal.Decimal, now time.Time) error {
	if !shares.IsPositive() {
		return core.ErrInvalidAmount
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	amount, err := e.vault.Burn(ctx, lender.UserID, shares)
	if err != nil {
		return err
	}

	if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, lender.UserID, m.StableAssetID, amount); err != nil {
		return err
	}

	return e.syncShares(ctx, m)
}

// Claim pays out the lender's pending rewards. Claiming zero is a
// successful no-op.
func (e *Engine) Claim(ctx context.Context, m *core.Market, lender *core.Lender, now time.Time) (decimal.Decimal, error) {
	if err := e.Settle(ctx, m, lender, now); err != nil {
		return decimal.Zero, err
	}

	claimed := lender.PendingRewards
	if claimed.IsZero() {
		return decimal.Zero, nil
	}

	if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, lender.UserID, m.StableAssetID, claimed); err != nil {
		return decimal.Zero, err
	}

	lender.PendingRewards = decimal.Zero
	return claimed, nil
}

// DepositCollateral locks collateral units into the borrower's
// available bucket.
func (e *Engine) DepositCollateral(
	ctx context.Context,
	m *core.Market,
	lender *core.Lender,
	asset *core.Asset,
	account *core.CollateralAccount,
	amount decimal.Decimal,
	now time.Time,
) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if !asset.Collateral {
		return core.ErrCollateralDisabled
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	if err := e.transfers.Transfer(ctx, lender.UserID, e.cfg.PoolAccount, asset.AssetID, amount); err != nil {
		return err
	}

	account.Available = account.Available.Add(amount)
	return nil
}

// WithdrawCollateral releases unencumbered collateral units back to the
// borrower. Units locked against open loans cannot be withdrawn.
func (e *Engine) WithdrawCollateral(
	ctx context.Context,
	m *core.Market,
	lender *core.Lender,
	account *core.CollateralAccount,
	amount decimal.Decimal,
	now time.Time,
) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	if account.Available.LessThan(amount) {
		return core.ErrInsufficientBalance
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, lender.UserID, account.AssetID, amount); err != nil {
		return err
	}

	account.Available = account.Available.Sub(amount)
	return nil
}

// syncShares refreshes the market's mirror of the vault share supply.
func (e *Engine) syncShares(ctx context.Context, m *core.Market) error {
	supply, err := e.vault.TotalSupply(ctx)
	if err != nil {
		return err
	}

	m.TotalShares = supply
	return nil
}
