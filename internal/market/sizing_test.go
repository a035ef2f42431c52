package market

import (
	"testing"

	"lever/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRequired(t *testing.T) {
	// 1000 USD at 6 decimals, ltv 0.5 -> 2000 USD of collateral value
	value, err := ValueRequired(d("1000000000"), 6, d("0.5").Shift(18))
	require.Nil(t, err)
	assert.Equal(t, "2000000000000000000000", value.String())

	// a one-unit loan still rounds the required value up
	value, err = ValueRequired(d("1"), 6, d("0.3").Shift(18))
	require.Nil(t, err)
	expected, err := number.CeilingDiv(d("1000000000000").Shift(18), d("0.3").Shift(18))
	require.Nil(t, err)
	assert.Equal(t, expected.String(), value.String())

	_, err = ValueRequired(d("1000000000"), 6, d("0"))
	assert.Equal(t, number.ErrDivideByZero, err)
}

func TestCollateralUnitsRequired(t *testing.T) {
	// 1000 USD loan, ltv 0.5, price 2000 USD per unit -> exactly 1 unit
	units, err := CollateralUnitsRequired(d("1000000000"), 6, d("0.5").Shift(18), d("2000").Shift(18), 18)
	require.Nil(t, err)
	assert.Equal(t, "1000000000000000000", units.String())

	// an awkward price still rounds the unit count up, never down
	units, err = CollateralUnitsRequired(d("1000000000"), 6, d("0.5").Shift(18), d("1999").Shift(18), 18)
	require.Nil(t, err)
	greater := units.Mul(d("1999").Shift(18)).Shift(-18)
	assert.True(t, greater.GreaterThanOrEqual(d("2000000000000000000000")),
		"locked value must cover the required value")

	_, err = CollateralUnitsRequired(d("1000000000"), 6, d("0.5").Shift(18), d("0"), 18)
	assert.Equal(t, number.ErrDivideByZero, err)
}

func TestRepaymentDue(t *testing.T) {
	principal := d("1000000000")
	rate := d("100000000000")

	assert.Equal(t, principal.String(), RepaymentDue(principal, rate, 0).String())
	assert.Equal(t, principal.String(), RepaymentDue(principal, rate, -5).String())

	// 100 seconds: interest = 1000e6 * 1e11 * 100 / 1e18 = 10000
	assert.Equal(t, "1000010000", RepaymentDue(principal, rate, 100).String())

	// zero rate accrues nothing
	assert.Equal(t, principal.String(), RepaymentDue(principal, d("0"), 1000000).String())
}
