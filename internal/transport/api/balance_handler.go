package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/internal/service"
)

const (
	defaultTransactionsLimit = 50
)

type BalanceHandler struct {
	balanceService BalanceServicer
}

func NewBalanceHandler(balanceService BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

type BalanceStateResponse struct {
	CurrentBalance  float64   `json:"currentBalance"`
	MinimumRequired float64   `json:"minimumRequired"`
	Currency        string    `json:"currency"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

func newBalanceStateResponse(balance *domain.Balance) BalanceStateResponse {
	return BalanceStateResponse{
		CurrentBalance:  balance.Amount.InexactFloat64(),
		MinimumRequired: service.MinimumBalance.InexactFloat64(),
		Currency:        service.Currency,
		LastUpdated:     balance.UpdatedAt,
	}
}

type AdvisoryResponse struct {
	IsLowBalance bool    `json:"isLowBalance"`
	Shortfall    float64 `json:"shortfall"`
	Message      string  `json:"message"`
}

func newAdvisoryResponse(advisory service.LowBalanceAdvisory) AdvisoryResponse {
	return AdvisoryResponse{
		IsLowBalance: advisory.IsLowBalance,
		Shortfall:    advisory.Shortfall.InexactFloat64(),
		Message:      advisory.Message,
	}
}

type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTransactionResponses(transactions []domain.BalanceTransaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponse{
			ID:          transaction.ID,
			Type:        string(transaction.Type),
			Amount:      transaction.Amount.InexactFloat64(),
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt,
		}
	}
	return response
}

type AddBalanceParams struct {
	AddBalance float64 `json:"addBalance"`
}

// Add POST BalanceAddRoute. Deposits are advisory-only with respect to the
// minimum-balance floor.
func (h *BalanceHandler) Add(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AddBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || params.AddBalance <= 0 {
		respondError(c, http.StatusBadRequest,
			"Valid balance amount is required (must be a positive number)", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, addErr := h.balanceService.Add(ctx, currentUserID, decimal.NewFromFloat(params.AddBalance))
	if addErr != nil {
		if errors.Is(addErr, service.ErrInvalidAmount) {
			respondError(c, http.StatusBadRequest,
				"Valid balance amount is required (must be a positive number)", nil)
			return
		}
		respondInternalError(c, addErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Balance added successfully",
		"previousBalance": result.PreviousBalance.InexactFloat64(),
		"addedAmount":     result.AddedAmount.InexactFloat64(),
		"newBalance":      result.NewBalance.InexactFloat64(),
		"alert":           newAdvisoryResponse(result.Advisory),
	})
}

// Check GET BalanceCheckRoute.
func (h *BalanceHandler) Check(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, checkErr := h.balanceService.Check(ctx, currentUserID)
	if checkErr != nil {
		respondInternalError(c, checkErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Balance retrieved successfully",
		"balance":            newBalanceStateResponse(summary.Balance),
		"alert":              newAdvisoryResponse(summary.Advisory),
		"recentTransactions": newTransactionResponses(summary.RecentTransactions),
	})
}

// CheckLowBalance GET BalanceCheckLowRoute.
func (h *BalanceHandler) CheckLowBalance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, advisory, err := h.balanceService.CheckLowBalance(ctx, currentUserID)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	message := "Balance is sufficient"
	if advisory.IsLowBalance {
		message = "Balance is low. Please recharge."
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"balance": newBalanceStateResponse(balance),
		"alert":   newAdvisoryResponse(advisory),
	})
}

// Alert GET BalanceAlertRoute. The alert object is null when the balance
// sits at or above the floor.
func (h *BalanceHandler) Alert(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, alertErr := h.balanceService.Alert(ctx, currentUserID)
	if alertErr != nil {
		respondInternalError(c, alertErr)
		return
	}

	alertType := "NONE"
	var alert gin.H
	if result.Alert != nil {
		alertType = result.Alert.Type
		alert = gin.H{
			"type":           result.Alert.Type,
			"severity":       result.Alert.Severity,
			"title":          result.Alert.Title,
			"message":        result.Alert.Message,
			"action":         result.Alert.Action,
			"shortfall":      result.Alert.Shortfall.InexactFloat64(),
			"requiredAmount": result.Alert.RequiredAmount.InexactFloat64(),
			"currentAmount":  result.Alert.CurrentAmount.InexactFloat64(),
			"actionButton": gin.H{
				"text":   result.Alert.ActionButton.Text,
				"amount": result.Alert.ActionButton.Amount.InexactFloat64(),
				"url":    result.Alert.ActionButton.URL,
			},
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"hasAlert":  result.Alert != nil,
		"alertType": alertType,
		"alert":     alert,
		"balance":   newBalanceStateResponse(result.Balance),
	})
}

// Transactions GET BalanceTransactionsRoute. Query params limit and offset,
// defaulting to 50/0; malformed values fall back to the defaults.
func (h *BalanceHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	page := repoargs.TransactionPage{
		Limit:  defaultTransactionsLimit,
		Offset: 0,
	}
	if limit, err := strconv.ParseUint(c.Query("limit"), 10, 32); err == nil && limit > 0 {
		page.Limit = uint(limit)
	}
	if offset, err := strconv.ParseUint(c.Query("offset"), 10, 32); err == nil {
		page.Offset = uint(offset)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, pageErr := h.balanceService.Transactions(ctx, currentUserID, page)
	if pageErr != nil {
		respondInternalError(c, pageErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Transaction history retrieved successfully",
		"transactions": newTransactionResponses(result.Transactions),
		"pagination": gin.H{
			"limit":   result.Limit,
			"offset":  result.Offset,
			"total":   result.Total,
			"hasMore": result.HasMore,
		},
	})
}
