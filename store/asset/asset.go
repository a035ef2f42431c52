package asset

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
)

type assetStore struct {
	db *db.DB
}

// New new asset store
func New(db *db.DB) core.IAssetStore {
	return &assetStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Asset{})
		if err := tx.AutoMigrate(core.Asset{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *assetStore) Save(ctx context.Context, tx *db.DB, asset *core.Asset) error {
	return tx.Update().Where("asset_id=?", asset.AssetID).
		Assign(map[string]interface{}{
			"symbol":         asset.Symbol,
			"decimals":       asset.Decimals,
			"price_asset_id": asset.PriceAssetID,
			"collateral":     asset.Collateral,
		}).
		FirstOrCreate(asset).Error
}

func (s *assetStore) Find(ctx context.Context, assetID string) (*core.Asset, error) {
	var asset core.Asset
	if err := s.db.View().Where("asset_id=?", assetID).First(&asset).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

func (s *assetStore) All(ctx context.Context) ([]*core.Asset, error) {
	var assets []*core.Asset
	if err := s.db.View().Find(&assets).Error; err != nil {
		return nil, err
	}

	return assets, nil
}
