package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Market is the singleton pool state of the lending market.
//
// Fractions, rates and the reward accumulator are 1e18-scaled integers;
// token quantities are integers in the asset's native precision.
type Market struct {
	ID            uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	StableAssetID string          `sql:"size:36;unique_index:stable_idx" json:"stable_asset_id"`
	ShareAssetID  string          `sql:"size:36" json:"share_asset_id"`
	// 可借贷价值 / 抵押资产价值
	LoanToValueRatio     decimal.Decimal `sql:"type:decimal(42,0)" json:"loan_to_value_ratio"`
	LiquidationThreshold decimal.Decimal `sql:"type:decimal(42,0)" json:"liquidation_threshold"`
	BorrowRatePerSecond  decimal.Decimal `sql:"type:decimal(42,0)" json:"borrow_rate_per_second"`
	TotalBorrows         decimal.Decimal `sql:"type:decimal(42,0)" json:"total_borrows"`
	// 每份额累计收益, 单调递增
	RewardPerShare  decimal.Decimal `sql:"type:decimal(64,0)" json:"reward_per_share"`
	TotalShares     decimal.Decimal `sql:"type:decimal(42,0)" json:"total_shares"`
	LastUpdatedTime time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"last_updated_time"`
	Version         int64           `sql:"default:0" json:"version"`
	CreatedAt       time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IMarketStore market store interface
type IMarketStore interface {
	Save(ctx context.Context, tx *db.DB, market *Market) error
	Find(ctx context.Context) (*Market, error)
	Update(ctx context.Context, tx *db.DB, market *Market) error
}

// IMarketService market operation interface.
//
// Every state-changing method runs as one atomic host-ledger transaction:
// bring the accumulator current, settle the caller, apply the effect.
type IMarketService interface {
	Accrue(ctx context.Context) error
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) error
	Redeem(ctx context.Context, userID string, shares decimal.Decimal) error
	ClaimRewards(ctx context.Context, userID string) (decimal.Decimal, error)
	DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	WithdrawCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	OpenLoan(ctx context.Context, userID, collateralAssetID string, stableAmount decimal.Decimal) (*Loan, error)
	RepayLoan(ctx context.Context, userID, loanID string, amount decimal.Decimal) error
	LiquidateLoan(ctx context.Context, liquidatorID, loanID string) error
}
