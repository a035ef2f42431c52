package oracle

import (
	"context"

	"lever/core"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type oracleService struct {
	prices core.IPriceStore
}

// New new price oracle reading the latest submitted quote per feed.
func New(prices core.IPriceStore) core.PriceOracle {
	return &oracleService{prices: prices}
}

func (s *oracleService) PriceOf(ctx context.Context, priceAssetID string) (decimal.Decimal, error) {
	price, err := s.prices.Find(ctx, priceAssetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, core.ErrInvalidPrice
		}
		return decimal.Zero, err
	}

	if !price.Price.IsPositive() {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return price.Price, nil
}
