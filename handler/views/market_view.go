package views

import (
	"lever/core"

	"github.com/shopspring/decimal"
)

// Market market view
type Market struct {
	core.Market
	PoolBalance     decimal.Decimal `json:"pool_balance"`
	ActiveLoans     int64           `json:"active_loans"`
	RepaidLoans     int64           `json:"repaid_loans"`
	LiquidatedLoans int64           `json:"liquidated_loans"`
}
