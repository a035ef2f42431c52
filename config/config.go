package config

import (
	"fmt"

	"lever/core"
	"lever/pkg/number"

	"github.com/asaskevich/govalidator"
	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *core.Config) error {
	configUtil.AutomaticLoadEnv("LEVER")
	if err := configUtil.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	rescale(&cfg.Market)

	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return validateRisk(&cfg.Market)
}

func defaults(cfg *core.Config) {
	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}
}

// rescale lifts the plain config fractions ("0.5") to the 1e18-scaled
// integers the ledger works with.
func rescale(m *core.MarketCfg) {
	m.LoanToValueRatio = m.LoanToValueRatio.Shift(number.CanonicalDecimals).Floor()
	m.LiquidationThreshold = m.LiquidationThreshold.Shift(number.CanonicalDecimals).Floor()
	m.BorrowRatePerSecond = m.BorrowRatePerSecond.Shift(number.CanonicalDecimals).Floor()
}

func validateRisk(m *core.MarketCfg) error {
	if m.LoanToValueRatio.IsPositive() && m.LoanToValueRatio.LessThan(core.MinLoanToValueRatio) {
		return fmt.Errorf("config: loan_to_value_ratio below 0.4")
	}

	if m.LiquidationThreshold.IsPositive() && m.LiquidationThreshold.LessThan(core.MinLiquidationThreshold) {
		return fmt.Errorf("config: liquidation_threshold below 0.6")
	}

	return nil
}
