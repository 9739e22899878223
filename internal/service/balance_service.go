package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

// MinimumBalance is the floor a user must retain after a buy order. It is
// advisory everywhere else: deposits are never blocked by it.
var MinimumBalance = decimal.NewFromInt(1000)

const Currency = "INR"

var ErrInvalidAmount = errors.New("amount must be a positive number")

type LowBalanceAdvisory struct {
	IsLowBalance bool
	Shortfall    decimal.Decimal
	Message      string
}

// NewLowBalanceAdvisory builds the advisory attached to balance reads and
// deposits.
func NewLowBalanceAdvisory(amount decimal.Decimal) LowBalanceAdvisory {
	if amount.GreaterThanOrEqual(MinimumBalance) {
		return LowBalanceAdvisory{
			IsLowBalance: false,
			Shortfall:    decimal.Zero,
			Message:      "Your balance is sufficient for trading.",
		}
	}
	shortfall := MinimumBalance.Sub(amount)
	return LowBalanceAdvisory{
		IsLowBalance: true,
		Shortfall:    shortfall,
		Message: fmt.Sprintf(
			"Your balance is ₹%s. Minimum required is ₹%s. Please recharge ₹%s to meet the minimum requirement.",
			amount, MinimumBalance, shortfall,
		),
	}
}

type BalanceSummary struct {
	Balance            *domain.Balance
	Advisory           LowBalanceAdvisory
	RecentTransactions []domain.BalanceTransaction
}

type AddBalanceResult struct {
	PreviousBalance decimal.Decimal
	AddedAmount     decimal.Decimal
	NewBalance      decimal.Decimal
	Advisory        LowBalanceAdvisory
}

type AlertActionButton struct {
	Text   string
	Amount decimal.Decimal
	URL    string
}

type BalanceAlert struct {
	Type           string
	Severity       string
	Title          string
	Message        string
	Action         string
	Shortfall      decimal.Decimal
	RequiredAmount decimal.Decimal
	CurrentAmount  decimal.Decimal
	ActionButton   AlertActionButton
}

type AlertResult struct {
	Balance *domain.Balance
	Alert   *BalanceAlert
}

type TransactionsPage struct {
	Transactions []domain.BalanceTransaction
	Limit        uint
	Offset       uint
	Total        uint
	HasMore      bool
}

type BalanceService struct {
	uow         uow.UOW
	balanceRepo BalanceRepository
	blRepo      BalanceTransactionRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	balanceRepo, balanceRepoErr :=
		uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return nil, balanceRepoErr
	}
	blRepo, blRepoErr :=
		uow.GetRepositoryAs[BalanceTransactionRepository](u, uow.RepositoryName(repoargs.BalanceTransactionRepoName))
	if blRepoErr != nil {
		return nil, blRepoErr
	}
	return &BalanceService{
		uow:         u,
		balanceRepo: balanceRepo,
		blRepo:      blRepo,
	}, nil
}

// GetOrCreate provisions the zero balance row on first access and returns it.
func (s *BalanceService) GetOrCreate(ctx context.Context, userID int64) (*domain.Balance, error) {
	if err := s.balanceRepo.CreateIfAbsent(ctx, userID); err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	balance, getErr := s.balanceRepo.Get(ctx, userID)
	if getErr != nil {
		return nil, fmt.Errorf("getting balance: %w", getErr)
	}
	return balance, nil
}

// Add credits amount to the user's balance and appends a credit entry to the
// transaction log inside one transaction. Fails with ErrInvalidAmount unless
// amount > 0. The minimum-balance floor never gates deposits.
func (s *BalanceService) Add(ctx context.Context, userID int64, amount decimal.Decimal) (*AddBalanceResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("adding balance: %w", ErrInvalidAmount)
	}

	var result AddBalanceResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balanceRepo, balanceRepoErr :=
			uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if balanceRepoErr != nil {
			return balanceRepoErr //nolint:wrapcheck
		}
		blRepo, blRepoErr :=
			uow.GetAs[BalanceTransactionRepository](tx, uow.RepositoryName(repoargs.BalanceTransactionRepoName))
		if blRepoErr != nil {
			return blRepoErr //nolint:wrapcheck
		}

		if createErr := balanceRepo.CreateIfAbsent(c, userID); createErr != nil {
			return createErr //nolint:wrapcheck
		}
		balance, getErr := balanceRepo.GetForUpdate(c, userID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}

		newBalance := balance.Amount.Add(amount)
		if updErr := balanceRepo.UpdateAmount(c, userID, newBalance); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		_, transErr := blRepo.Create(c, repoargs.BalanceTransactionCreate{
			UserID:      userID,
			Type:        domain.TransactionCredit,
			Amount:      amount,
			Description: "Balance added",
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		result = AddBalanceResult{
			PreviousBalance: balance.Amount,
			AddedAmount:     amount,
			NewBalance:      newBalance,
			Advisory:        NewLowBalanceAdvisory(newBalance),
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("adding balance: %w", txErr)
	}
	return &result, nil
}

const recentTransactionsLimit = 10

// Check returns the balance, the low-balance advisory and the 10 most recent
// transactions.
func (s *BalanceService) Check(ctx context.Context, userID int64) (*BalanceSummary, error) {
	balance, balanceErr := s.GetOrCreate(ctx, userID)
	if balanceErr != nil {
		return nil, balanceErr
	}

	recent, recentErr := s.blRepo.GetRecent(ctx, userID, recentTransactionsLimit)
	if recentErr != nil {
		return nil, fmt.Errorf("checking balance: %w", recentErr)
	}

	return &BalanceSummary{
		Balance:            balance,
		Advisory:           NewLowBalanceAdvisory(balance.Amount),
		RecentTransactions: recent,
	}, nil
}

// CheckLowBalance is the advisory-only projection of the balance row.
func (s *BalanceService) CheckLowBalance(ctx context.Context, userID int64) (*domain.Balance, LowBalanceAdvisory, error) {
	balance, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, LowBalanceAdvisory{}, err
	}
	return balance, NewLowBalanceAdvisory(balance.Amount), nil
}

// Alert structures the UI-facing action payload when the balance sits below
// the floor; Alert is nil otherwise.
func (s *BalanceService) Alert(ctx context.Context, userID int64) (*AlertResult, error) {
	balance, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := AlertResult{Balance: balance}
	if balance.Amount.GreaterThanOrEqual(MinimumBalance) {
		return &result, nil
	}

	shortfall := MinimumBalance.Sub(balance.Amount)
	result.Alert = &BalanceAlert{
		Type:     "LOW_BALANCE",
		Severity: "WARNING",
		Title:    "Low Balance Alert",
		Message: fmt.Sprintf("Your balance is ₹%s. Minimum required is ₹%s.",
			balance.Amount, MinimumBalance),
		Action:         "Please recharge your account",
		Shortfall:      shortfall,
		RequiredAmount: MinimumBalance,
		CurrentAmount:  balance.Amount,
		ActionButton: AlertActionButton{
			Text:   "Recharge Now",
			Amount: shortfall,
			URL:    "/recharge",
		},
	}
	return &result, nil
}

// Transactions returns one newest-first page of the transaction log with the
// total count; HasMore is offset+limit < total.
func (s *BalanceService) Transactions(
	ctx context.Context,
	userID int64,
	page repoargs.TransactionPage,
) (*TransactionsPage, error) {
	transactions, pageErr := s.blRepo.GetPage(ctx, userID, page)
	if pageErr != nil {
		return nil, fmt.Errorf("getting transactions: %w", pageErr)
	}

	total, countErr := s.blRepo.CountByUserID(ctx, userID)
	if countErr != nil {
		return nil, fmt.Errorf("getting transactions: %w", countErr)
	}

	return &TransactionsPage{
		Transactions: transactions,
		Limit:        page.Limit,
		Offset:       page.Offset,
		Total:        total,
		HasMore:      page.Offset+page.Limit < total,
	}, nil
}
