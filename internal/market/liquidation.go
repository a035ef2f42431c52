package market

import (
	"lever/core"
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// LiquidationPrice returns the price at or below which a position
// becomes eligible for liquidation.
func LiquidationPrice(threshold, price decimal.Decimal) decimal.Decimal {
	return threshold.Mul(price).Shift(-18).Floor()
}

// IsLiquidatable reports liquidation eligibility at the current price.
// Loans missing an origination time, collateral asset or liquidation
// price are malformed and rejected outright.
func IsLiquidatable(loan *core.Loan, currentPrice decimal.Decimal) (bool, error) {
	if loan.IssuedAt.IsZero() || loan.CollateralAssetID == "" || !loan.LiquidationPrice.IsPositive() {
		return false, core.ErrInvalidParams
	}

	if loan.Status != core.LoanStatusActive {
		return false, nil
	}

	return currentPrice.LessThanOrEqual(loan.LiquidationPrice), nil
}

// Distribute splits liquidation swap proceeds between the pool (kept for
// lenders), the treasury and the liquidator at 40/40/20.
func Distribute(proceeds decimal.Decimal) (lenders, treasury, liquidator decimal.Decimal) {
	return number.SplitThreeWays(proceeds)
}
