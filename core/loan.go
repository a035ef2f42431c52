package core

import (
	"context"
	"fmt"
	"time"

	"lever/pkg/id"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// LoanStatus loan lifecycle state
type LoanStatus int

const (
	// LoanStatusActive active
	LoanStatusActive LoanStatus = iota
	// LoanStatusRepaid repaid, terminal
	LoanStatusRepaid
	// LoanStatusLiquidated liquidated, terminal
	LoanStatusLiquidated
)

func (s LoanStatus) String() string {
	switch s {
	case LoanStatusActive:
		return "ACTIVE"
	case LoanStatusRepaid:
		return "REPAID"
	case LoanStatusLiquidated:
		return "LIQUIDATED"
	default:
		return "UNKNOWN"
	}
}

// LoanParameters are the immutable parameters a loan is opened with.
type LoanParameters struct {
	CollateralAssetID string          `json:"collateral_asset_id"`
	UserID            string          `json:"user_id"`
	CollateralAmount  decimal.Decimal `json:"collateral_amount"`
	PriceAssetID      string          `json:"price_asset_id"`
	LiquidationPrice  decimal.Decimal `json:"liquidation_price"`
	Principal         decimal.Decimal `json:"principal"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	IssuedAt          time.Time       `json:"issued_at"`
}

// Validate reports whether the parameters describe a well-formed loan.
func (p LoanParameters) Validate() error {
	if p.CollateralAssetID == "" || p.UserID == "" {
		return ErrInvalidParams
	}
	if !p.CollateralAmount.IsPositive() || !p.Principal.IsPositive() {
		return ErrInvalidParams
	}
	return nil
}

// LoanID derives the loan identifier from the immutable parameters.
//
// The derivation covers collateral asset, borrower, collateral units and
// principal only. Rate and origination time are deliberately excluded, so
// structurally identical loans share an id; OpenLoan rejects a second open
// while the first is still active.
func (p LoanParameters) LoanID() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	return id.UUIDFromString(fmt.Sprintf(
		"loan-%s-%s-%s-%s",
		p.CollateralAssetID,
		p.UserID,
		p.CollateralAmount.String(),
		p.Principal.String(),
	)), nil
}

// Loan is a collateralized loan record.
type Loan struct {
	ID                uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	LoanID            string          `sql:"size:36;unique_index:loan_idx" json:"loan_id"`
	UserID            string          `sql:"size:36;index:loan_user_idx" json:"user_id"`
	CollateralAssetID string          `sql:"size:36" json:"collateral_asset_id"`
	CollateralAmount  decimal.Decimal `sql:"type:decimal(42,0)" json:"collateral_amount"`
	PriceAssetID      string          `sql:"size:36" json:"price_asset_id"`
	LiquidationPrice  decimal.Decimal `sql:"type:decimal(42,0)" json:"liquidation_price"`
	Principal         decimal.Decimal `sql:"type:decimal(42,0)" json:"principal"`
	InterestRate      decimal.Decimal `sql:"type:decimal(42,0)" json:"interest_rate"`
	Status            LoanStatus      `sql:"default:0" json:"status"`
	IssuedAt          time.Time       `json:"issued_at"`
	ClosedAt          *time.Time      `json:"closed_at,omitempty"`
	Version           int64           `sql:"default:0" json:"version"`
	CreatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Parameters re-assembles the immutable parameter set of the loan.
func (l *Loan) Parameters() LoanParameters {
	return LoanParameters{
		CollateralAssetID: l.CollateralAssetID,
		UserID:            l.UserID,
		CollateralAmount:  l.CollateralAmount,
		PriceAssetID:      l.PriceAssetID,
		LiquidationPrice:  l.LiquidationPrice,
		Principal:         l.Principal,
		InterestRate:      l.InterestRate,
		IssuedAt:          l.IssuedAt,
	}
}

// ILoanStore loan store interface
type ILoanStore interface {
	Save(ctx context.Context, tx *db.DB, loan *Loan) error
	Find(ctx context.Context, loanID string) (*Loan, error)
	FindByUser(ctx context.Context, userID string) ([]*Loan, error)
	CountByStatus(ctx context.Context, status LoanStatus) (int64, error)
}
