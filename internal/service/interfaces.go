package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateKYCStatus(ctx context.Context, userID int64, status domain.KYCStatusType) error
}

type KYCRepository interface {
	Create(ctx context.Context, userID int64, pan string) (*domain.KYCRecord, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.KYCRecord, error)
	FindByIDAndUserID(ctx context.Context, id, userID int64) (*domain.KYCRecord, error)
	MarkValidated(ctx context.Context, id int64, validatedAt time.Time) error
}

type BalanceRepository interface {
	CreateIfAbsent(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*domain.Balance, error)
	GetForUpdate(ctx context.Context, userID int64) (*domain.Balance, error)
	UpdateAmount(ctx context.Context, userID int64, amount decimal.Decimal) error
}

type BalanceTransactionRepository interface {
	Create(ctx context.Context, args repoargs.BalanceTransactionCreate) (*domain.BalanceTransaction, error)
	GetRecent(ctx context.Context, userID int64, limit uint) ([]domain.BalanceTransaction, error)
	GetPage(ctx context.Context, userID int64, page repoargs.TransactionPage) ([]domain.BalanceTransaction, error)
	CountByUserID(ctx context.Context, userID int64) (uint, error)
}

type OrderRepository interface {
	CreateExecuted(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, args repoargs.CreatePosition) (*domain.Position, error)
	FindByUserAndStock(ctx context.Context, userID int64, stockName string) (*domain.Position, error)
	FindForUpdate(ctx context.Context, userID int64, stockName string) (*domain.Position, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Position, error)
	UpdateOnBuy(ctx context.Context, args repoargs.UpdatePositionOnBuy) error
	UpdateOnSell(ctx context.Context, args repoargs.UpdatePositionOnSell) error
	Delete(ctx context.Context, userID int64, stockName string) error
}
