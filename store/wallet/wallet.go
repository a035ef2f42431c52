package wallet

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.IWalletStore {
	return &walletStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Wallet{})
		if err := tx.AutoMigrate(core.Wallet{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) Find(ctx context.Context, account, assetID string) (*core.Wallet, error) {
	var wallet core.Wallet
	if err := s.db.View().Where("account=? and asset_id=?", account, assetID).First(&wallet).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Wallet{Account: account, AssetID: assetID}, nil
		}
		return nil, err
	}

	return &wallet, nil
}

func (s *walletStore) Save(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	if wallet.ID == 0 {
		return tx.Update().Create(wallet).Error
	}

	version := wallet.Version
	wallet.Version++
	return tx.Update().Model(core.Wallet{}).
		Where("account=? and asset_id=? and version=?", wallet.Account, wallet.AssetID, version).
		Updates(map[string]interface{}{
			"balance": wallet.Balance,
			"version": wallet.Version,
		}).Error
}

func (s *walletStore) FindByAccount(ctx context.Context, account string) ([]*core.Wallet, error) {
	var wallets []*core.Wallet
	if err := s.db.View().Where("account=?", account).Find(&wallets).Error; err != nil {
		return nil, err
	}

	return wallets, nil
}
