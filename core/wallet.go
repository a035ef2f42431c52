package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Wallet is one account/asset balance row of the host-ledger token book.
type Wallet struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Account   string          `sql:"size:36;unique_index:wallet_idx" json:"account"`
	AssetID   string          `sql:"size:36;unique_index:wallet_idx" json:"asset_id"`
	Balance   decimal.Decimal `sql:"type:decimal(42,0)" json:"balance"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IWalletStore wallet store interface.
//
// Find returns a zero-balance row for unknown account/asset pairs.
type IWalletStore interface {
	Find(ctx context.Context, account, assetID string) (*Wallet, error)
	Save(ctx context.Context, tx *db.DB, wallet *Wallet) error
	FindByAccount(ctx context.Context, account string) ([]*Wallet, error)
}
