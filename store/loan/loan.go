package loan

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type loanStore struct {
	db *db.DB
}

// New new loan store
func New(db *db.DB) core.ILoanStore {
	return &loanStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Loan{})
		if err := tx.AutoMigrate(core.Loan{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Save inserts a new loan or, when a closed loan already occupies the
// same derived id, replaces it in place. Identical open loans share an
// id by construction, so replacement only ever hits terminal rows.
func (s *loanStore) Save(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	if loan.ID == 0 {
		var stored core.Loan
		err := tx.Update().Where("loan_id=?", loan.LoanID).First(&stored).Error
		if err == nil {
			loan.ID = stored.ID
			loan.Version = stored.Version
		} else if !gorm.IsRecordNotFoundError(err) {
			return err
		}
	}

	if loan.ID == 0 {
		return tx.Update().Create(loan).Error
	}

	version := loan.Version
	loan.Version++
	return tx.Update().Model(core.Loan{}).
		Where("loan_id=? and version=?", loan.LoanID, version).
		Updates(map[string]interface{}{
			"user_id":             loan.UserID,
			"collateral_asset_id": loan.CollateralAssetID,
			"collateral_amount":   loan.CollateralAmount,
			"price_asset_id":      loan.PriceAssetID,
			"liquidation_price":   loan.LiquidationPrice,
			"principal":           loan.Principal,
			"interest_rate":       loan.InterestRate,
			"status":              loan.Status,
			"issued_at":           loan.IssuedAt,
			"closed_at":           loan.ClosedAt,
			"version":             loan.Version,
		}).Error
}

func (s *loanStore) Find(ctx context.Context, loanID string) (*core.Loan, error) {
	var loan core.Loan
	if err := s.db.View().Where("loan_id=?", loanID).First(&loan).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return &loan, nil
}

func (s *loanStore) FindByUser(ctx context.Context, userID string) ([]*core.Loan, error) {
	var loans []*core.Loan
	if err := s.db.View().Where("user_id=?", userID).Find(&loans).Error; err != nil {
		return nil, err
	}

	return loans, nil
}

func (s *loanStore) CountByStatus(ctx context.Context, status core.LoanStatus) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.Loan{}).Where("status=?", status).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
