package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// SysVersion the current system version
const SysVersion int64 = 1

// Risk parameter floors, 1e18 scaled. The accounting relies on these
// bounds, so every setter rejects values below them once a parameter is
// configured at all.
var (
	MinLoanToValueRatio     = decimal.New(4, 17)
	MinLiquidationThreshold = decimal.New(6, 17)
)

// Config lever config
type Config struct {
	App    App       `json:"app" valid:"required"`
	DB     db.Config `json:"db"`
	Market MarketCfg `json:"market" valid:"required"`
	Admins []string  `json:"admins"`
}

// App app config
type App struct {
	Location string `json:"location"`
	Genesis  int64  `json:"genesis"`
}

// MarketCfg static market parameters; fractions are plain decimals in the
// config file ("0.5") and rescaled to 1e18 integers at load time.
type MarketCfg struct {
	StableAssetID        string          `json:"stable_asset_id" valid:"required"`
	ShareAssetID         string          `json:"share_asset_id" valid:"required"`
	PoolAccount          string          `json:"pool_account" valid:"required"`
	TreasuryAccount      string          `json:"treasury_account"`
	SwapVenueAccount     string          `json:"swap_venue_account"`
	LoanToValueRatio     decimal.Decimal `json:"loan_to_value_ratio"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	BorrowRatePerSecond  decimal.Decimal `json:"borrow_rate_per_second"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}
