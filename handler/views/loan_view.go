package views

import (
	"lever/core"

	"github.com/shopspring/decimal"
)

// Loan loan view
type Loan struct {
	core.Loan
	CurrentDue   decimal.Decimal `json:"current_due"`
	Liquidatable bool            `json:"liquidatable"`
}
