package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrDataIntegrity marks a stored amount that came back NaN or negative.
	// It is never silently coerced to zero.
	ErrDataIntegrity = errors.New("stored amount failed integrity check")

	ErrKYCAlreadyValidated = errors.New("kyc is already validated")
)

type DuplicateKYCError struct {
	Existing *KYCRecord
}

func NewDuplicateKYCError(existing *KYCRecord) error {
	return &DuplicateKYCError{Existing: existing}
}

func (e *DuplicateKYCError) Error() string {
	return fmt.Sprintf("kyc already registered for user with id %d", e.Existing.UserID)
}

type InsufficientFundsError struct {
	StockName      string
	Price          decimal.Decimal
	Quantity       int64
	RequiredAmount decimal.Decimal
	CurrentBalance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient balance: need %s to buy %d shares of %s, have %s",
		e.RequiredAmount, e.Quantity, e.StockName, e.CurrentBalance,
	)
}

func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.RequiredAmount.Sub(e.CurrentBalance)
}

type MinimumBalanceError struct {
	RemainingBalance decimal.Decimal
	MinimumRequired  decimal.Decimal
}

func (e *MinimumBalanceError) Error() string {
	return fmt.Sprintf(
		"purchase would leave balance %s below the minimum %s",
		e.RemainingBalance, e.MinimumRequired,
	)
}

func (e *MinimumBalanceError) Shortfall() decimal.Decimal {
	return e.MinimumRequired.Sub(e.RemainingBalance)
}

type NoHoldingError struct {
	StockName         string
	RequestedQuantity int64
}

func (e *NoHoldingError) Error() string {
	return fmt.Sprintf("no shares of %s owned", e.StockName)
}

type InsufficientSharesError struct {
	StockName         string
	OwnedQuantity     int64
	RequestedQuantity int64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf(
		"insufficient shares of %s: own %d, requested %d",
		e.StockName, e.OwnedQuantity, e.RequestedQuantity,
	)
}
