package market

import (
	"lever/pkg/number"

	"github.com/shopspring/decimal"
)

// ValueRequired returns the canonical (18-decimal) collateral value a
// stable loan of stableAmount must be backed by at the given loan-to-
// value ratio. The division rounds up so the protocol is never
// under-collateralized by rounding.
func ValueRequired(stableAmount decimal.Decimal, stableDecimals int32, ltv decimal.Decimal) (decimal.Decimal, error) {
	value := number.ToCanonical(stableAmount, stableDecimals)
	return number.CeilingDiv(value.Shift(18), ltv)
}

// CollateralUnitsRequired converts the required collateral value into
// units of the collateral asset at its native precision. The canonical
// unit count rounds up; the final rescale floors, which still requires
// at least that many native units.
func CollateralUnitsRequired(
	stableAmount decimal.Decimal,
	stableDecimals int32,
	ltv decimal.Decimal,
	price decimal.Decimal,
	collateralDecimals int32,
) (decimal.Decimal, error) {
	value, err := ValueRequired(stableAmount, stableDecimals, ltv)
	if err != nil {
		return decimal.Zero, err
	}

	units, err := number.CeilingDiv(value.Shift(18), price)
	if err != nil {
		return decimal.Zero, err
	}

	return number.FromCanonical(units, collateralDecimals), nil
}

// RepaymentDue returns principal plus simple interest for the elapsed
// time. Zero rate or zero elapsed time leaves the principal unchanged.
func RepaymentDue(principal, ratePerSecond decimal.Decimal, secondsElapsed int64) decimal.Decimal {
	if secondsElapsed <= 0 {
		return principal
	}

	interest := principal.
		Mul(ratePerSecond.Mul(decimal.NewFromInt(secondsElapsed))).
		Shift(-18).Floor()

	return principal.Add(interest)
}
