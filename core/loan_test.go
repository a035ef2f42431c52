package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanID(t *testing.T) {
	params := LoanParameters{
		CollateralAssetID: "btc",
		UserID:            "alice",
		CollateralAmount:  decimal.RequireFromString("1000000000000000000"),
		PriceAssetID:      "btc-usd",
		LiquidationPrice:  decimal.RequireFromString("1200000000000000000000"),
		Principal:         decimal.RequireFromString("1000000000"),
		InterestRate:      decimal.RequireFromString("100000000000"),
		IssuedAt:          time.Now(),
	}

	id1, err := params.LoanID()
	require.Nil(t, err)

	// rate and origination time do not participate in the derivation
	params.InterestRate = decimal.RequireFromString("200000000000")
	params.IssuedAt = params.IssuedAt.Add(time.Hour)
	id2, err := params.LoanID()
	require.Nil(t, err)
	assert.Equal(t, id1, id2)

	params.Principal = params.Principal.Add(decimal.New(1, 0))
	id3, err := params.LoanID()
	require.Nil(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestLoanParametersValidate(t *testing.T) {
	valid := LoanParameters{
		CollateralAssetID: "btc",
		UserID:            "alice",
		CollateralAmount:  decimal.New(1, 0),
		Principal:         decimal.New(1, 0),
	}
	require.Nil(t, valid.Validate())

	cases := map[string]func(p *LoanParameters){
		"empty collateral asset": func(p *LoanParameters) { p.CollateralAssetID = "" },
		"empty user":             func(p *LoanParameters) { p.UserID = "" },
		"zero collateral":        func(p *LoanParameters) { p.CollateralAmount = decimal.Zero },
		"negative principal":     func(p *LoanParameters) { p.Principal = decimal.New(-1, 0) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid
			mutate(&p)
			assert.Equal(t, ErrInvalidParams, p.Validate())

			_, err := p.LoanID()
			assert.Equal(t, ErrInvalidParams, err)
		})
	}
}

func TestLoanParametersRoundTrip(t *testing.T) {
	loan := &Loan{
		LoanID:            "x",
		UserID:            "alice",
		CollateralAssetID: "btc",
		CollateralAmount:  decimal.New(5, 0),
		PriceAssetID:      "btc-usd",
		LiquidationPrice:  decimal.New(7, 0),
		Principal:         decimal.New(9, 0),
		InterestRate:      decimal.New(11, 0),
		IssuedAt:          time.Unix(1700000000, 0),
	}

	params := loan.Parameters()
	assert.Equal(t, loan.UserID, params.UserID)
	assert.Equal(t, loan.CollateralAssetID, params.CollateralAssetID)
	assert.True(t, loan.CollateralAmount.Equal(params.CollateralAmount))
	assert.True(t, loan.Principal.Equal(params.Principal))
	assert.Equal(t, loan.IssuedAt, params.IssuedAt)
}
