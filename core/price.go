package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Price is the latest submitted quote for a price-feed id, 1e18-scaled.
type Price struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	PriceAssetID string          `sql:"size:36;unique_index:price_asset_idx" json:"price_asset_id"`
	Price        decimal.Decimal `sql:"type:decimal(42,0)" json:"price"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, tx *db.DB, price *Price) error
	Find(ctx context.Context, priceAssetID string) (*Price, error)
	All(ctx context.Context) ([]*Price, error)
}
