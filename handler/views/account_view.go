package views

import (
	"lever/core"

	"github.com/shopspring/decimal"
)

// Account per-user account view: lending position, collateral buckets
// and token balances.
type Account struct {
	UserID         string                    `json:"user_id"`
	Shares         decimal.Decimal           `json:"shares"`
	PendingRewards decimal.Decimal           `json:"pending_rewards"`
	Collaterals    []*core.CollateralAccount `json:"collaterals"`
	Wallets        []*core.Wallet            `json:"wallets"`
}
