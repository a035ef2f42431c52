package market

import (
	"context"
	"testing"
	"time"

	"lever/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLendingRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.begin(t).deposit(ctx, "carol", d("1000").Shift(6), f.t0))
	assert.Equal(t, "1000000000", f.balance(poolAccount, usdAsset))
	assert.Equal(t, "0", f.balance("carol", usdAsset))
	assert.Equal(t, "1000000000", f.balance("carol", shareAsset))
	assert.Equal(t, "1000000000", f.markets.row.TotalShares.String())
	assert.Equal(t, f.balance("share-supply", shareAsset), f.markets.row.TotalShares.String())

	require.NoError(t, f.begin(t).depositCollateral(ctx, "alice", btcAsset, d("2").Shift(18), f.t0))

	loan, err := f.begin(t).openLoan(ctx, "alice", btcAsset, d("1000").Shift(6), f.t0)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", loan.CollateralAmount.String())
	assert.Equal(t, "1200000000000000000000", loan.LiquidationPrice.String())
	assert.Equal(t, "0", f.balance(poolAccount, usdAsset))
	assert.Equal(t, "1000010000", f.balance("alice", usdAsset))
	assert.Equal(t, "1000000000", f.markets.row.TotalBorrows.String())

	t1 := f.t0.Add(100 * time.Second)
	require.NoError(t, f.begin(t).accrue(ctx, t1))
	assert.Equal(t, "10000000000000", f.markets.row.RewardPerShare.String())

	require.NoError(t, f.begin(t).repayLoan(ctx, "alice", loan.LoanID, d("1000").Shift(6), t1))
	assert.Equal(t, "1000010000", f.balance(poolAccount, usdAsset))
	assert.Equal(t, "0", f.balance("alice", usdAsset))
	assert.Equal(t, "0", f.markets.row.TotalBorrows.String())
	assert.Equal(t, core.LoanStatusRepaid, f.loans.rows[loan.LoanID].Status)
	assert.Equal(t, "2000000000000000000", f.borrowers.collaterals[collateralKey("alice", btcAsset)].Available.String())
	assert.Equal(t, "0", f.borrowers.collaterals[collateralKey("alice", btcAsset)].Borrowed.String())

	claimed, err := f.begin(t).claimRewards(ctx, "carol", t1)
	require.NoError(t, err)
	assert.Equal(t, "10000", claimed.String())
	assert.Equal(t, "10000", f.balance("carol", usdAsset))
	assert.Equal(t, "1000000000", f.balance(poolAccount, usdAsset))
	assert.Equal(t, "0", f.lenders.rows["carol"].PendingRewards.String())
}

func TestLiquidationPayout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedWallet(venueAccount, usdAsset, d("800").Shift(6))

	require.NoError(t, f.begin(t).deposit(ctx, "carol", d("1000").Shift(6), f.t0))
	require.NoError(t, f.begin(t).depositCollateral(ctx, "alice", btcAsset, d("2").Shift(18), f.t0))

	loan, err := f.begin(t).openLoan(ctx, "alice", btcAsset, d("1000").Shift(6), f.t0)
	require.NoError(t, err)

	f.setPrice(btcFeed, d("800").Shift(18))
	t1 := f.t0.Add(time.Minute)

	require.NoError(t, f.begin(t).liquidateLoan(ctx, "bob", loan.LoanID, t1))

	// 800 USD of proceeds, split 40/40/20 within one operation: the
	// venue credit funds both payouts and the pool keeps the rest
	assert.Equal(t, "320000000", f.balance(poolAccount, usdAsset))
	assert.Equal(t, "320000000", f.balance(treasuryAccount, usdAsset))
	assert.Equal(t, "160000000", f.balance("bob", usdAsset))
	assert.Equal(t, "0", f.balance(venueAccount, usdAsset))
	assert.Equal(t, "1000000000000000000", f.balance(venueAccount, btcAsset))
	assert.Equal(t, "1000000000000000000", f.balance(poolAccount, btcAsset))

	assert.Equal(t, core.LoanStatusLiquidated, f.loans.rows[loan.LoanID].Status)
	assert.Equal(t, "0", f.markets.row.TotalBorrows.String())
	assert.Equal(t, int64(0), f.borrowers.rows["alice"].ActiveLoanCount)
	assert.Equal(t, int64(1), f.borrowers.rows["alice"].LiquidatedLoanCount)
	assert.Equal(t, "1000000000000000000", f.borrowers.collaterals[collateralKey("alice", btcAsset)].Available.String())
	assert.Equal(t, "0", f.borrowers.collaterals[collateralKey("alice", btcAsset)].Borrowed.String())
}

func TestOpenLoanRejectsActiveDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedWallet("carol", usdAsset, d("2000").Shift(6))

	require.NoError(t, f.begin(t).deposit(ctx, "carol", d("2000").Shift(6), f.t0))
	require.NoError(t, f.begin(t).depositCollateral(ctx, "alice", btcAsset, d("2").Shift(18), f.t0))

	_, err := f.begin(t).openLoan(ctx, "alice", btcAsset, d("1000").Shift(6), f.t0)
	require.NoError(t, err)

	_, err = f.begin(t).openLoan(ctx, "alice", btcAsset, d("1000").Shift(6), f.t0.Add(time.Minute))
	assert.Equal(t, core.ErrLoanExists, err)
	assert.Len(t, f.loans.rows, 1)
}

func TestFailedOperationKeepsRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	err := f.begin(t).redeem(ctx, "bob", d("10"), f.t0)
	assert.Equal(t, core.ErrInsufficientBalance, err)

	assert.Equal(t, "0", f.markets.row.TotalShares.String())
	assert.Equal(t, "0", f.markets.row.RewardPerShare.String())
	assert.Equal(t, "0", f.balance("bob", shareAsset))
	_, ok := f.lenders.rows["bob"]
	assert.False(t, ok)
}
