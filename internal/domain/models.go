package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	Email             string
	Phone             string
	Name              string
	EncryptedPassword string
	KYCStatus         KYCStatusType
}

type KYCRecord struct {
	ID          int64
	UserID      int64
	PAN         string
	Status      KYCStatusType
	CreatedAt   time.Time
	ValidatedAt *time.Time
}

type Balance struct {
	UserID    int64
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

type BalanceTransaction struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	ExecutedAt  time.Time
	UserID      int64
	StockName   string
	OrderType   OrderType
	Quantity    int64
	Price       decimal.Decimal
	TotalAmount decimal.Decimal
	Status      OrderStatusType
}

type Position struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          int64
	StockName       string
	Quantity        int64
	AveragePrice    decimal.Decimal
	TotalInvestment decimal.Decimal
}
