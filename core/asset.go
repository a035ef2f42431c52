package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Asset describes a token known to the market: its native integer
// precision and whether it is accepted as loan collateral.
type Asset struct {
	ID           uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID      string    `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	Symbol       string    `sql:"size:20" json:"symbol"`
	Decimals     int32     `sql:"default:8" json:"decimals"`
	PriceAssetID string    `sql:"size:36" json:"price_asset_id"`
	Collateral   bool      `sql:"default:false" json:"collateral"`
	CreatedAt    time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IAssetStore asset store interface
type IAssetStore interface {
	Save(ctx context.Context, tx *db.DB, asset *Asset) error
	Find(ctx context.Context, assetID string) (*Asset, error)
	All(ctx context.Context) ([]*Asset, error)
}
