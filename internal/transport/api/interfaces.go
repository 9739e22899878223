package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type KYCServicer interface {
	Register(ctx context.Context, userID int64, pan string) (*domain.KYCRecord, error)
	Validate(ctx context.Context, userID, kycID int64) (*domain.KYCRecord, error)
	Status(ctx context.Context, userID int64) (*domain.KYCRecord, error)
}

type BalanceServicer interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Balance, error)
	Add(ctx context.Context, userID int64, amount decimal.Decimal) (*service.AddBalanceResult, error)
	Check(ctx context.Context, userID int64) (*service.BalanceSummary, error)
	CheckLowBalance(ctx context.Context, userID int64) (*domain.Balance, service.LowBalanceAdvisory, error)
	Alert(ctx context.Context, userID int64) (*service.AlertResult, error)
	Transactions(ctx context.Context, userID int64, page repoargs.TransactionPage) (*service.TransactionsPage, error)
}

type TradingServicer interface {
	Buy(ctx context.Context, userID int64, args service.TradeArgs) (*service.BuyResult, error)
	Sell(ctx context.Context, userID int64, args service.TradeArgs) (*service.SellResult, error)
	Portfolio(ctx context.Context, userID int64) (*service.PortfolioSummary, error)
}
