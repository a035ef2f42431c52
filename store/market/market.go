package market

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
)

type marketStore struct {
	db *db.DB
}

// New new market store
func New(db *db.DB) core.IMarketStore {
	return &marketStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Market{})
		if err := tx.AutoMigrate(core.Market{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *marketStore) Save(ctx context.Context, tx *db.DB, market *core.Market) error {
	return tx.Update().Create(market).Error
}

func (s *marketStore) Find(ctx context.Context) (*core.Market, error) {
	var market core.Market
	if err := s.db.View().First(&market).Error; err != nil {
		return nil, err
	}

	return &market, nil
}

func (s *marketStore) Update(ctx context.Context, tx *db.DB, market *core.Market) error {
	version := market.Version
	market.Version++
	return tx.Update().Model(core.Market{}).
		Where("id=? and version=?", market.ID, version).
		Updates(map[string]interface{}{
			"loan_to_value_ratio":    market.LoanToValueRatio,
			"liquidation_threshold":  market.LiquidationThreshold,
			"borrow_rate_per_second": market.BorrowRatePerSecond,
			"total_borrows":          market.TotalBorrows,
			"reward_per_share":       market.RewardPerShare,
			"total_shares":           market.TotalShares,
			"last_updated_time":      market.LastUpdatedTime,
			"version":                market.Version,
		}).Error
}
