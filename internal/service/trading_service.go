package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

var ErrInvalidStockName = errors.New("stock name is required")

type TradeArgs struct {
	StockName string
	Price     decimal.Decimal
	Quantity  int64
}

type BuyResult struct {
	Order           *domain.Order
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Position        *domain.Position
}

type SellResult struct {
	Order           *domain.Order
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	ProfitLoss      decimal.Decimal
	// ProfitLossPercentage is nil when the average price is zero: the
	// percentage is undefined, never Infinity or NaN.
	ProfitLossPercentage *decimal.Decimal
	AveragePrice         decimal.Decimal
	RemainingQuantity    int64
}

type PositionView struct {
	domain.Position
	// CurrentValue is average_price * quantity. There is no market price
	// feed; this is a documented simplification.
	CurrentValue decimal.Decimal
}

type PortfolioSummary struct {
	TotalStocks      int64
	TotalInvestment  decimal.Decimal
	NumberOfHoldings int
	Positions        []PositionView
}

type TradingService struct {
	uow           uow.UOW
	portfolioRepo PortfolioRepository
}

func NewTradingService(u uow.UOW) (*TradingService, error) {
	portfolioRepo, portfolioRepoErr :=
		uow.GetRepositoryAs[PortfolioRepository](u, uow.RepositoryName(repoargs.PortfolioRepoName))
	if portfolioRepoErr != nil {
		return nil, portfolioRepoErr
	}
	return &TradingService{
		uow:           u,
		portfolioRepo: portfolioRepo,
	}, nil
}

type tradeRepos struct {
	balance   BalanceRepository
	blTrans   BalanceTransactionRepository
	order     OrderRepository
	portfolio PortfolioRepository
}

func getTradeRepos(tx uow.TX) (*tradeRepos, error) {
	balanceRepo, balanceErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceErr != nil {
		return nil, balanceErr //nolint:wrapcheck
	}
	blRepo, blErr :=
		uow.GetAs[BalanceTransactionRepository](tx, uow.RepositoryName(repoargs.BalanceTransactionRepoName))
	if blErr != nil {
		return nil, blErr //nolint:wrapcheck
	}
	orderRepo, orderErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}
	portfolioRepo, portfolioErr :=
		uow.GetAs[PortfolioRepository](tx, uow.RepositoryName(repoargs.PortfolioRepoName))
	if portfolioErr != nil {
		return nil, portfolioErr //nolint:wrapcheck
	}
	return &tradeRepos{
		balance:   balanceRepo,
		blTrans:   blRepo,
		order:     orderRepo,
		portfolio: portfolioRepo,
	}, nil
}

func normalizeTradeArgs(args TradeArgs) (TradeArgs, error) {
	args.StockName = strings.ToUpper(strings.TrimSpace(args.StockName))
	if args.StockName == "" {
		return args, ErrInvalidStockName
	}
	if !args.Price.IsPositive() || args.Quantity <= 0 {
		return args, ErrInvalidAmount
	}
	return args, nil
}

// Buy executes a buy order: order insert, balance debit, transaction-log
// append and portfolio upsert run in one transaction. The balance row is
// locked before the position row; Sell keeps the same lock order.
//
// Fails with *domain.InsufficientFundsError when the balance does not cover
// price*quantity and *domain.MinimumBalanceError when the purchase would
// leave the balance strictly below the floor (landing exactly on the floor
// succeeds).
func (s *TradingService) Buy(ctx context.Context, userID int64, args TradeArgs) (*BuyResult, error) {
	args, argsErr := normalizeTradeArgs(args)
	if argsErr != nil {
		return nil, fmt.Errorf("buying stock: %w", argsErr)
	}

	totalCost := args.Price.Mul(decimal.NewFromInt(args.Quantity))

	var result BuyResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getTradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		if createErr := repos.balance.CreateIfAbsent(c, userID); createErr != nil {
			return createErr //nolint:wrapcheck
		}
		balance, balanceErr := repos.balance.GetForUpdate(c, userID)
		if balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}

		if balance.Amount.LessThan(totalCost) {
			return &domain.InsufficientFundsError{
				StockName:      args.StockName,
				Price:          args.Price,
				Quantity:       args.Quantity,
				RequiredAmount: totalCost,
				CurrentBalance: balance.Amount,
			}
		}

		remaining := balance.Amount.Sub(totalCost)
		if remaining.LessThan(MinimumBalance) {
			return &domain.MinimumBalanceError{
				RemainingBalance: remaining,
				MinimumRequired:  MinimumBalance,
			}
		}

		order, orderErr := repos.order.CreateExecuted(c, repoargs.CreateOrder{
			UserID:      userID,
			StockName:   args.StockName,
			OrderType:   domain.OrderTypeBuy,
			Quantity:    args.Quantity,
			Price:       args.Price,
			TotalAmount: totalCost,
		})
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}

		if updErr := repos.balance.UpdateAmount(c, userID, remaining); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		_, transErr := repos.blTrans.Create(c, repoargs.BalanceTransactionCreate{
			UserID: userID,
			Type:   domain.TransactionDebit,
			Amount: totalCost,
			Description: fmt.Sprintf("Buy %d shares of %s at ₹%s",
				args.Quantity, args.StockName, args.Price),
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		position, positionErr := s.upsertPositionOnBuy(c, repos.portfolio, userID, args, totalCost)
		if positionErr != nil {
			return positionErr
		}

		result = BuyResult{
			Order:           order,
			PreviousBalance: balance.Amount,
			NewBalance:      remaining,
			Position:        position,
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("buying stock: %w", txErr)
	}
	return &result, nil
}

// upsertPositionOnBuy recomputes the weighted-average cost basis:
// new_average = (old_investment + cost) / (old_quantity + quantity).
func (s *TradingService) upsertPositionOnBuy(
	ctx context.Context,
	portfolioRepo PortfolioRepository,
	userID int64,
	args TradeArgs,
	totalCost decimal.Decimal,
) (*domain.Position, error) {
	existing, findErr := portfolioRepo.FindForUpdate(ctx, userID, args.StockName)
	if findErr != nil {
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, findErr //nolint:wrapcheck
		}
		created, createErr := portfolioRepo.Create(ctx, repoargs.CreatePosition{
			UserID:          userID,
			StockName:       args.StockName,
			Quantity:        args.Quantity,
			AveragePrice:    args.Price,
			TotalInvestment: totalCost,
		})
		if createErr != nil {
			return nil, createErr //nolint:wrapcheck
		}
		return created, nil
	}

	newQuantity := existing.Quantity + args.Quantity
	newInvestment := existing.TotalInvestment.Add(totalCost)
	newAverage := newInvestment.Div(decimal.NewFromInt(newQuantity))

	if updErr := portfolioRepo.UpdateOnBuy(ctx, repoargs.UpdatePositionOnBuy{
		UserID:          userID,
		StockName:       args.StockName,
		Quantity:        newQuantity,
		AveragePrice:    newAverage,
		TotalInvestment: newInvestment,
	}); updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	existing.Quantity = newQuantity
	existing.AveragePrice = newAverage
	existing.TotalInvestment = newInvestment
	return existing, nil
}

// Sell executes a sell order against the user's position, credits the sale
// proceeds and realizes profit/loss against the weighted-average cost basis.
// Selling every owned share deletes the position; a partial sale scales
// total_investment by remaining/owned.
//
// Fails with *domain.NoHoldingError when the user owns no shares of the
// stock and *domain.InsufficientSharesError when owned < requested.
func (s *TradingService) Sell(ctx context.Context, userID int64, args TradeArgs) (*SellResult, error) {
	args, argsErr := normalizeTradeArgs(args)
	if argsErr != nil {
		return nil, fmt.Errorf("selling stock: %w", argsErr)
	}

	saleProceeds := args.Price.Mul(decimal.NewFromInt(args.Quantity))

	var result SellResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := getTradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		// same lock order as Buy: balance row first, then the position row.
		if createErr := repos.balance.CreateIfAbsent(c, userID); createErr != nil {
			return createErr //nolint:wrapcheck
		}
		balance, balanceErr := repos.balance.GetForUpdate(c, userID)
		if balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}

		position, positionErr := repos.portfolio.FindForUpdate(c, userID, args.StockName)
		if positionErr != nil {
			if errors.Is(positionErr, domain.ErrRecordNotFound) {
				return &domain.NoHoldingError{
					StockName:         args.StockName,
					RequestedQuantity: args.Quantity,
				}
			}
			return positionErr //nolint:wrapcheck
		}

		if position.Quantity < args.Quantity {
			return &domain.InsufficientSharesError{
				StockName:         args.StockName,
				OwnedQuantity:     position.Quantity,
				RequestedQuantity: args.Quantity,
			}
		}

		quantity := decimal.NewFromInt(args.Quantity)
		profitLoss := args.Price.Sub(position.AveragePrice).Mul(quantity)
		var profitLossPercentage *decimal.Decimal
		if !position.AveragePrice.IsZero() {
			pct := args.Price.Sub(position.AveragePrice).
				Div(position.AveragePrice).
				Mul(decimal.NewFromInt(100))
			profitLossPercentage = &pct
		}

		order, orderErr := repos.order.CreateExecuted(c, repoargs.CreateOrder{
			UserID:      userID,
			StockName:   args.StockName,
			OrderType:   domain.OrderTypeSell,
			Quantity:    args.Quantity,
			Price:       args.Price,
			TotalAmount: saleProceeds,
		})
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}

		newBalance := balance.Amount.Add(saleProceeds)
		if updErr := repos.balance.UpdateAmount(c, userID, newBalance); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		_, transErr := repos.blTrans.Create(c, repoargs.BalanceTransactionCreate{
			UserID: userID,
			Type:   domain.TransactionCredit,
			Amount: saleProceeds,
			Description: fmt.Sprintf("Sell %d shares of %s at ₹%s",
				args.Quantity, args.StockName, args.Price),
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		remainingQuantity := position.Quantity - args.Quantity
		if remainingQuantity == 0 {
			if delErr := repos.portfolio.Delete(c, userID, args.StockName); delErr != nil {
				return delErr //nolint:wrapcheck
			}
		} else {
			remainingInvestment := position.TotalInvestment.
				Mul(decimal.NewFromInt(remainingQuantity)).
				Div(decimal.NewFromInt(position.Quantity))
			if updErr := repos.portfolio.UpdateOnSell(c, repoargs.UpdatePositionOnSell{
				UserID:          userID,
				StockName:       args.StockName,
				Quantity:        remainingQuantity,
				TotalInvestment: remainingInvestment,
			}); updErr != nil {
				return updErr //nolint:wrapcheck
			}
		}

		result = SellResult{
			Order:                order,
			PreviousBalance:      balance.Amount,
			NewBalance:           newBalance,
			ProfitLoss:           profitLoss,
			ProfitLossPercentage: profitLossPercentage,
			AveragePrice:         position.AveragePrice,
			RemainingQuantity:    remainingQuantity,
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("selling stock: %w", txErr)
	}
	return &result, nil
}

// Portfolio lists the user's positions, most recently traded first, with
// aggregate totals.
func (s *TradingService) Portfolio(ctx context.Context, userID int64) (*PortfolioSummary, error) {
	positions, err := s.portfolioRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting portfolio: %w", err)
	}

	summary := PortfolioSummary{
		TotalInvestment:  decimal.Zero,
		NumberOfHoldings: len(positions),
		Positions:        make([]PositionView, len(positions)),
	}
	for i, position := range positions {
		summary.TotalStocks += position.Quantity
		summary.TotalInvestment = summary.TotalInvestment.Add(position.TotalInvestment)
		summary.Positions[i] = PositionView{
			Position:     position,
			CurrentValue: position.AveragePrice.Mul(decimal.NewFromInt(position.Quantity)),
		}
	}
	return &summary, nil
}
