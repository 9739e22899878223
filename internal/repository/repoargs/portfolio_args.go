package repoargs

import "github.com/shopspring/decimal"

type CreatePosition struct {
	UserID          int64
	StockName       string
	Quantity        int64
	AveragePrice    decimal.Decimal
	TotalInvestment decimal.Decimal
}

// UpdatePositionOnBuy recomputes the weighted average, so it carries the new
// average price alongside quantity and investment.
type UpdatePositionOnBuy struct {
	UserID          int64
	StockName       string
	Quantity        int64
	AveragePrice    decimal.Decimal
	TotalInvestment decimal.Decimal
}

// UpdatePositionOnSell leaves the stored average price untouched; scaling the
// investment by remaining/owned preserves it.
type UpdatePositionOnSell struct {
	UserID          int64
	StockName       string
	Quantity        int64
	TotalInvestment decimal.Decimal
}
