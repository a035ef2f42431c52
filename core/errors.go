package core

import (
	"errors"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// CodeUnknown unknown
	CodeUnknown ErrorCode = 100000
	// CodeInvalidParams malformed identifier or parameter
	CodeInvalidParams ErrorCode = 100001
	// CodeInvalidAmount invalid amount
	CodeInvalidAmount ErrorCode = 100002
	// CodeNotConfigured required platform parameter is unset
	CodeNotConfigured ErrorCode = 100003
	// CodeInsufficientCollateral insufficient collateral
	CodeInsufficientCollateral ErrorCode = 100100
	// CodeInsufficientPayment offered amount below the required bound
	CodeInsufficientPayment ErrorCode = 100101
	// CodeInsufficientBalance balance cannot cover the transfer
	CodeInsufficientBalance ErrorCode = 100102
	// CodeLoanNotFound no loan
	CodeLoanNotFound ErrorCode = 100200
	// CodeNotLoanOwner caller is not the loan borrower
	CodeNotLoanOwner ErrorCode = 100201
	// CodeInvalidLoanState loan is not in the required state
	CodeInvalidLoanState ErrorCode = 100202
	// CodeLoanExists active loan with the same id
	CodeLoanExists ErrorCode = 100203
	// CodeNotLiquidatable loan not eligible for liquidation
	CodeNotLiquidatable ErrorCode = 100300
	// CodeSelfLiquidation borrowers may not liquidate their own loans
	CodeSelfLiquidation ErrorCode = 100301
	// CodeCollateralDisabled collateral disabled
	CodeCollateralDisabled ErrorCode = 100302
	// CodeInvalidPrice invalid price
	CodeInvalidPrice ErrorCode = 100303
	// CodeArithmetic division by zero or overflow
	CodeArithmetic ErrorCode = 100400
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

var (
	// ErrInvalidParams malformed identifiers or parameters
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrInvalidAmount amount must be positive
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNotConfigured a required platform parameter is unset
	ErrNotConfigured = errors.New("market not configured")
	// ErrInsufficientCollateral available collateral below the required units
	ErrInsufficientCollateral = errors.New("insufficient collateral")
	// ErrInsufficientPayment offered amount below the loan principal
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrInsufficientBalance balance cannot cover the transfer
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLoanNotFound unknown loan id
	ErrLoanNotFound = errors.New("loan not found")
	// ErrNotLoanOwner caller is not the loan borrower
	ErrNotLoanOwner = errors.New("not the loan borrower")
	// ErrInvalidLoanState operation attempted on a loan not in the required state
	ErrInvalidLoanState = errors.New("invalid loan state")
	// ErrLoanExists an active loan with the identical id already exists
	ErrLoanExists = errors.New("identical active loan exists")
	// ErrNotLiquidatable loan is not eligible for liquidation
	ErrNotLiquidatable = errors.New("loan not liquidatable")
	// ErrSelfLiquidation liquidator is the loan borrower
	ErrSelfLiquidation = errors.New("self liquidation forbidden")
	// ErrCollateralDisabled collateral disabled
	ErrCollateralDisabled = errors.New("collateral disabled")
	// ErrInvalidPrice invalid price
	ErrInvalidPrice = errors.New("invalid price")
	// ErrArithmetic division by zero or overflow
	ErrArithmetic = errors.New("arithmetic error")
)

// CodeOf maps a sentinel error to its wire code.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidParams):
		return CodeInvalidParams
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrNotConfigured):
		return CodeNotConfigured
	case errors.Is(err, ErrInsufficientCollateral):
		return CodeInsufficientCollateral
	case errors.Is(err, ErrInsufficientPayment):
		return CodeInsufficientPayment
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrLoanNotFound):
		return CodeLoanNotFound
	case errors.Is(err, ErrNotLoanOwner):
		return CodeNotLoanOwner
	case errors.Is(err, ErrInvalidLoanState):
		return CodeInvalidLoanState
	case errors.Is(err, ErrLoanExists):
		return CodeLoanExists
	case errors.Is(err, ErrNotLiquidatable):
		return CodeNotLiquidatable
	case errors.Is(err, ErrSelfLiquidation):
		return CodeSelfLiquidation
	case errors.Is(err, ErrCollateralDisabled):
		return CodeCollateralDisabled
	case errors.Is(err, ErrInvalidPrice):
		return CodeInvalidPrice
	case errors.Is(err, ErrArithmetic):
		return CodeArithmetic
	default:
		return CodeUnknown
	}
}
