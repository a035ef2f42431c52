package market

import (
	"testing"
	"time"

	"lever/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidationPrice(t *testing.T) {
	// threshold 0.6 at 2000 USD -> 1200 USD
	price := LiquidationPrice(d("0.6").Shift(18), d("2000").Shift(18))
	assert.Equal(t, "1200000000000000000000", price.String())

	assert.Equal(t, "0", LiquidationPrice(d("0"), d("2000").Shift(18)).String())
}

func TestIsLiquidatable(t *testing.T) {
	loan := &core.Loan{
		LoanID:            "loan-1",
		UserID:            "alice",
		CollateralAssetID: btcAsset,
		CollateralAmount:  d("1000000000000000000"),
		PriceAssetID:      btcPriceAsset,
		LiquidationPrice:  d("1200").Shift(18),
		Principal:         d("1000000000"),
		Status:            core.LoanStatusActive,
		IssuedAt:          time.Unix(1700000000, 0),
	}

	// strictly above the mark: safe
	eligible, err := IsLiquidatable(loan, d("1200").Shift(18).Add(d("1")))
	require.Nil(t, err)
	assert.False(t, eligible)

	// exactly at the mark: eligible
	eligible, err = IsLiquidatable(loan, d("1200").Shift(18))
	require.Nil(t, err)
	assert.True(t, eligible)

	eligible, err = IsLiquidatable(loan, d("800").Shift(18))
	require.Nil(t, err)
	assert.True(t, eligible)

	// terminal loans are never eligible
	repaid := *loan
	repaid.Status = core.LoanStatusRepaid
	eligible, err = IsLiquidatable(&repaid, d("1").Shift(18))
	require.Nil(t, err)
	assert.False(t, eligible)

	// malformed rows are rejected outright
	malformed := *loan
	malformed.IssuedAt = time.Time{}
	_, err = IsLiquidatable(&malformed, d("800").Shift(18))
	assert.Equal(t, core.ErrInvalidParams, err)

	malformed = *loan
	malformed.LiquidationPrice = d("0")
	_, err = IsLiquidatable(&malformed, d("800").Shift(18))
	assert.Equal(t, core.ErrInvalidParams, err)
}

func TestDistribute(t *testing.T) {
	lenders, treasury, liquidator := Distribute(d("800000000"))
	assert.Equal(t, "320000000", lenders.String())
	assert.Equal(t, "320000000", treasury.String())
	assert.Equal(t, "160000000", liquidator.String())

	lenders, treasury, liquidator = Distribute(d("101"))
	assert.Equal(t, "40", lenders.String())
	assert.Equal(t, "40", treasury.String())
	assert.Equal(t, "21", liquidator.String())
	assert.Equal(t, "101", lenders.Add(treasury).Add(liquidator).String())
}
