package repoargs

import (
	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID      int64
	StockName   string
	OrderType   domain.OrderType
	Quantity    int64
	Price       decimal.Decimal
	TotalAmount decimal.Decimal
}
