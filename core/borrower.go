package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Borrower tracks a user's loan counters.
type Borrower struct {
	ID                  uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID              string    `sql:"size:36;unique_index:borrower_user_idx" json:"user_id"`
	ActiveLoanCount     int64     `sql:"default:0" json:"active_loan_count"`
	LiquidatedLoanCount int64     `sql:"default:0" json:"liquidated_loan_count"`
	RepaymentCount      int64     `sql:"default:0" json:"repayment_count"`
	Version             int64     `sql:"default:0" json:"version"`
	CreatedAt           time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// CollateralAccount is a borrower's per-asset collateral bucket pair.
//
// Available holds deposited, unencumbered units; Borrowed holds units
// locked against open loans. Available + Borrowed equals total ever
// deposited minus total ever withdrawn for the asset.
type CollateralAccount struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:collateral_idx" json:"user_id"`
	AssetID   string          `sql:"size:36;unique_index:collateral_idx" json:"asset_id"`
	Available decimal.Decimal `sql:"type:decimal(42,0)" json:"available"`
	Borrowed  decimal.Decimal `sql:"type:decimal(42,0)" json:"borrowed"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IBorrowerStore borrower store interface.
//
// Both Find methods return zero-value rows for unknown keys.
type IBorrowerStore interface {
	Find(ctx context.Context, userID string) (*Borrower, error)
	Save(ctx context.Context, tx *db.DB, borrower *Borrower) error
	FindCollateral(ctx context.Context, userID, assetID string) (*CollateralAccount, error)
	SaveCollateral(ctx context.Context, tx *db.DB, account *CollateralAccount) error
	CollateralsByUser(ctx context.Context, userID string) ([]*CollateralAccount, error)
}
