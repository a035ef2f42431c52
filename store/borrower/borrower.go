package borrower

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type borrowerStore struct {
	db *db.DB
}

// New new borrower store
func New(db *db.DB) core.IBorrowerStore {
	return &borrowerStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Borrower{}).AutoMigrate(core.Borrower{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.CollateralAccount{}).AutoMigrate(core.CollateralAccount{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *borrowerStore) Find(ctx context.Context, userID string) (*core.Borrower, error) {
	var borrower core.Borrower
	if err := s.db.View().Where("user_id=?", userID).First(&borrower).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Borrower{UserID: userID}, nil
		}
		return nil, err
	}

	return &borrower, nil
}

func (s *borrowerStore) Save(ctx context.Context, tx *db.DB, borrower *core.Borrower) error {
	if borrower.ID == 0 {
		return tx.Update().Create(borrower).Error
	}

	version := borrower.Version
	borrower.Version++
	return tx.Update().Model(core.Borrower{}).
		Where("user_id=? and version=?", borrower.UserID, version).
		Updates(map[string]interface{}{
			"active_loan_count":     borrower.ActiveLoanCount,
			"liquidated_loan_count": borrower.LiquidatedLoanCount,
			"repayment_count":       borrower.RepaymentCount,
			"version":               borrower.Version,
		}).Error
}

func (s *borrowerStore) FindCollateral(ctx context.Context, userID, assetID string) (*core.CollateralAccount, error) {
	var account core.CollateralAccount
	if err := s.db.View().Where("user_id=? and asset_id=?", userID, assetID).First(&account).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.CollateralAccount{UserID: userID, AssetID: assetID}, nil
		}
		return nil, err
	}

	return &account, nil
}

func (s *borrowerStore) SaveCollateral(ctx context.Context, tx *db.DB, account *core.CollateralAccount) error {
	if account.ID == 0 {
		return tx.Update().Create(account).Error
	}

	version := account.Version
	account.Version++
	return tx.Update().Model(core.CollateralAccount{}).
		Where("user_id=? and asset_id=? and version=?", account.UserID, account.AssetID, version).
		Updates(map[string]interface{}{
			"available": account.Available,
			"borrowed":  account.Borrowed,
			"version":   account.Version,
		}).Error
}

func (s *borrowerStore) CollateralsByUser(ctx context.Context, userID string) ([]*core.CollateralAccount, error) {
	var accounts []*core.CollateralAccount
	if err := s.db.View().Where("user_id=?", userID).Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}
