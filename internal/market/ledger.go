package market

import (
	"context"
	"time"

	"lever/core"

	"github.com/shopspring/decimal"
)

// OpenLoan sizes, funds and records a new collateralized loan. The
// caller is responsible for rejecting a derived id that still belongs
// to an active loan before persisting the returned row.
func (e *Engine) OpenLoan(
	ctx context.Context,
	m *core.Market,
	lender *core.Lender,
	borrower *core.Borrower,
	account *core.CollateralAccount,
	stableAsset, collateralAsset *core.Asset,
	stableAmount decimal.Decimal,
	now time.Time,
) (*core.Loan, error) {
	if !stableAmount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}
	if m.LoanToValueRatio.IsZero() {
		return nil, core.ErrNotConfigured
	}
	if !collateralAsset.Collateral {
		return nil, core.ErrCollateralDisabled
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return nil, err
	}

	price, err := e.oracle.PriceOf(ctx, collateralAsset.PriceAssetID)
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, core.ErrInvalidPrice
	}

	required, err := CollateralUnitsRequired(
		stableAmount,
		stableAsset.Decimals,
		m.LoanToValueRatio,
		price,
		collateralAsset.Decimals,
	)
	if err != nil {
		return nil, core.ErrArithmetic
	}

	if account.Available.LessThan(required) {
		return nil, core.ErrInsufficientCollateral
	}

	params := core.LoanParameters{
		CollateralAssetID: collateralAsset.AssetID,
		UserID:            lender.UserID,
		CollateralAmount:  required,
		PriceAssetID:      collateralAsset.PriceAssetID,
		LiquidationPrice:  LiquidationPrice(m.LiquidationThreshold, price),
		Principal:         stableAmount,
		InterestRate:      m.BorrowRatePerSecond,
		IssuedAt:          now,
	}

	loanID, err := params.LoanID()
	if err != nil {
		return nil, err
	}

	account.Available = account.Available.Sub(required)
	account.Borrowed = account.Borrowed.Add(required)
	borrower.ActiveLoanCount++
	m.TotalBorrows = m.TotalBorrows.Add(stableAmount)

	if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, lender.UserID, m.StableAssetID, stableAmount); err != nil {
		return nil, err
	}

	return &core.Loan{
		LoanID:            loanID,
		UserID:            params.UserID,
		CollateralAssetID: params.CollateralAssetID,
		CollateralAmount:  params.CollateralAmount,
		PriceAssetID:      params.PriceAssetID,
		LiquidationPrice:  params.LiquidationPrice,
		Principal:         params.Principal,
		InterestRate:      params.InterestRate,
		Status:            core.LoanStatusActive,
		IssuedAt:          params.IssuedAt,
	}, nil
}

// RepayLoan settles a loan in full: the borrower pays principal plus
// the interest accrued since origination and the locked collateral
// returns to the available bucket.
func (e *Engine) RepayLoan(
	ctx context.Context,
	m *core.Market,
	lender *core.Lender,
	borrower *core.Borrower,
	account *core.CollateralAccount,
	loan *core.Loan,
	amount decimal.Decimal,
	now time.Time,
) error {
	if loan == nil {
		return core.ErrLoanNotFound
	}
	if loan.UserID != lender.UserID {
		return core.ErrNotLoanOwner
	}
	if loan.Status != core.LoanStatusActive {
		return core.ErrInvalidLoanState
	}
	if amount.LessThan(loan.Principal) {
		return core.ErrInsufficientPayment
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	due := RepaymentDue(loan.Principal, loan.InterestRate, now.Unix()-loan.IssuedAt.Unix())

	if err := e.transfers.Transfer(ctx, lender.UserID, e.cfg.PoolAccount, m.StableAssetID, due); err != nil {
		return err
	}

	account.Borrowed = account.Borrowed.Sub(loan.CollateralAmount)
	account.Available = account.Available.Add(loan.CollateralAmount)
	borrower.ActiveLoanCount--
	borrower.RepaymentCount++
	m.TotalBorrows = m.TotalBorrows.Sub(loan.Principal)

	loan.Status = core.LoanStatusRepaid
	closed := now
	loan.ClosedAt = &closed

	return nil
}

// LiquidateLoan swaps the locked collateral of an undercollateralized
// loan for the stable asset and distributes the proceeds. The lender
// share stays in the pool; treasury and liquidator are paid out.
func (e *Engine) LiquidateLoan(
	ctx context.Context,
	m *core.Market,
	lender *core.Lender,
	borrower *core.Borrower,
	account *core.CollateralAccount,
	loan *core.Loan,
	now time.Time,
) error {
	if loan == nil {
		return core.ErrLoanNotFound
	}

	price, err := e.oracle.PriceOf(ctx, loan.PriceAssetID)
	if err != nil {
		return err
	}

	eligible, err := IsLiquidatable(loan, price)
	if err != nil {
		return err
	}
	if !eligible {
		return core.ErrNotLiquidatable
	}

	if lender.UserID == loan.UserID {
		return core.ErrSelfLiquidation
	}
	if e.cfg.TreasuryAccount == "" || e.cfg.SwapVenueAccount == "" {
		return core.ErrNotConfigured
	}

	if err := e.Settle(ctx, m, lender, now); err != nil {
		return err
	}

	proceeds, err := e.swap.Swap(ctx, loan.CollateralAssetID, m.StableAssetID, loan.CollateralAmount)
	if err != nil {
		return err
	}

	_, treasuryShare, liquidatorShare := Distribute(proceeds)

	if treasuryShare.IsPositive() {
		if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, e.cfg.TreasuryAccount, m.StableAssetID, treasuryShare); err != nil {
			return err
		}
	}
	if liquidatorShare.IsPositive() {
		if err := e.transfers.Transfer(ctx, e.cfg.PoolAccount, lender.UserID, m.StableAssetID, liquidatorShare); err != nil {
			return err
		}
	}

	account.Borrowed = account.Borrowed.Sub(loan.CollateralAmount)
	if account.Borrowed.IsNegative() {
		account.Borrowed = decimal.Zero
	}
	if borrower.ActiveLoanCount > 0 {
		borrower.ActiveLoanCount--
	}
	borrower.LiquidatedLoanCount++
	m.TotalBorrows = m.TotalBorrows.Sub(loan.Principal)
	if m.TotalBorrows.IsNegative() {
		m.TotalBorrows = decimal.Zero
	}

	loan.Status = core.LoanStatusLiquidated
	closed := now
	loan.ClosedAt = &closed

	return nil
}
