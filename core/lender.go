package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Lender is a depositor's reward account.
//
// The unclaimed entitlement is always settled lazily against the market
// accumulator: pending += shares * (rewardPerShare - checkpoint) / 1e18.
type Lender struct {
	ID             uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID         string          `sql:"size:36;unique_index:lender_user_idx" json:"user_id"`
	PendingRewards decimal.Decimal `sql:"type:decimal(42,0)" json:"pending_rewards"`
	// rewardPerShare 上次结算时的检查点
	RewardCheckpoint decimal.Decimal `sql:"type:decimal(64,0)" json:"reward_checkpoint"`
	Version          int64           `sql:"default:0" json:"version"`
	CreatedAt        time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ILenderStore lender store interface.
//
// Find returns a zero-value account for unknown users, matching the
// default-zero semantics the settlement math relies on.
type ILenderStore interface {
	Find(ctx context.Context, userID string) (*Lender, error)
	Save(ctx context.Context, tx *db.DB, lender *Lender) error
	All(ctx context.Context) ([]*Lender, error)
}
