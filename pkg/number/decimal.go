package number

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// CanonicalDecimals the internal fixed-point precision
const CanonicalDecimals int32 = 18

// ErrDivideByZero divide by zero
var ErrDivideByZero = errors.New("number: divide by zero")

var one = decimal.New(1, 0)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func Sqrt(d decimal.Decimal) decimal.Decimal {
	f, _ := d.Float64()
	f = math.Sqrt(f)
	return decimal.NewFromFloat(f)
}

func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// CeilingDiv returns ceil(numerator / denominator) over integers,
// computed as (numerator + denominator - 1) / denominator.
func CeilingDiv(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}

	q, _ := numerator.Add(denominator).Sub(one).QuoRem(denominator, 0)
	return q, nil
}

// FloorDiv returns floor(numerator / denominator) over integers.
func FloorDiv(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}

	q, _ := numerator.QuoRem(denominator, 0)
	return q, nil
}

// ToCanonical rescales an amount from its native integer precision to
// the 18-decimal canonical unit. Amounts with more than 18 native
// decimals lose their sub-canonical remainder (floored).
func ToCanonical(amount decimal.Decimal, decimals int32) decimal.Decimal {
	if decimals == CanonicalDecimals {
		return amount
	}

	return amount.Shift(CanonicalDecimals - decimals).Floor()
}

// FromCanonical rescales a canonical 18-decimal amount down (or up) to
// an asset's native precision, flooring when precision is lost.
func FromCanonical(amount decimal.Decimal, decimals int32) decimal.Decimal {
	if decimals == CanonicalDecimals {
		return amount
	}

	return amount.Shift(decimals - CanonicalDecimals).Floor()
}

// SplitThreeWays splits a non-negative integer amount 40%/40%/20%.
// The two 40% shares are floored and the third share absorbs the full
// remainder, so the parts always sum to the amount exactly.
func SplitThreeWays(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	forty := Decimal("0.4")
	first := amount.Mul(forty).Floor()
	second := amount.Mul(forty).Floor()
	third := amount.Sub(first).Sub(second)

	return first, second, third
}
