package repoargs

import (
	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/shopspring/decimal"
)

type BalanceTransactionCreate struct {
	UserID      int64
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
}

type TransactionPage struct {
	Limit  uint
	Offset uint
}
