package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/service"
)

type TradingHandler struct {
	tradingService TradingServicer
}

func NewTradingHandler(tradingService TradingServicer) *TradingHandler {
	return &TradingHandler{
		tradingService: tradingService,
	}
}

// TradeParams carries untyped fields so that a wrongly typed field reports
// its own validation message instead of failing the whole bind.
type TradeParams struct {
	StockName any `json:"stockName"`
	Quantity  any `json:"quantity"`
	Price     any `json:"price"`
}

// bindTradeParams validates the shared buy/sell payload field by field.
// Quantity arrives as a JSON number and must be a whole positive one.
func bindTradeParams(c *gin.Context) (service.TradeArgs, bool) {
	var params TradeParams
	bindErr := c.ShouldBindJSON(&params)

	stockName, stockNameOk := params.StockName.(string)
	if bindErr != nil || !stockNameOk || strings.TrimSpace(stockName) == "" {
		respondError(c, http.StatusBadRequest, "Valid stock name is required", nil)
		return service.TradeArgs{}, false
	}
	price, priceOk := params.Price.(float64)
	if !priceOk || price <= 0 {
		respondError(c, http.StatusBadRequest,
			"Valid price is required (must be a positive number)", nil)
		return service.TradeArgs{}, false
	}
	quantity, quantityOk := params.Quantity.(float64)
	if !quantityOk || quantity <= 0 || math.Trunc(quantity) != quantity {
		respondError(c, http.StatusBadRequest,
			"Valid quantity is required (must be a positive integer)", nil)
		return service.TradeArgs{}, false
	}

	return service.TradeArgs{
		StockName: stockName,
		Price:     decimal.NewFromFloat(price),
		Quantity:  int64(quantity),
	}, true
}

type OrderResponse struct {
	OrderID     int64     `json:"orderId"`
	StockName   string    `json:"stockName"`
	OrderType   string    `json:"orderType"`
	Quantity    int64     `json:"quantity"`
	Price       float64   `json:"price"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	ExecutedAt  time.Time `json:"executedAt"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     order.ID,
		StockName:   order.StockName,
		OrderType:   string(order.OrderType),
		Quantity:    order.Quantity,
		Price:       order.Price.InexactFloat64(),
		TotalAmount: order.TotalAmount.InexactFloat64(),
		Status:      string(order.Status),
		ExecutedAt:  order.ExecutedAt,
	}
}

type PositionResponse struct {
	StockName       string  `json:"stockName"`
	Quantity        int64   `json:"quantity"`
	AveragePrice    float64 `json:"averagePrice"`
	TotalInvestment float64 `json:"totalInvestment"`
}

// Buy POST TradingBuyRoute.
func (h *TradingHandler) Buy(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	args, ok := bindTradeParams(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, buyErr := h.tradingService.Buy(ctx, currentUserID, args)
	if buyErr != nil {
		var fundsErr *domain.InsufficientFundsError
		var floorErr *domain.MinimumBalanceError

		switch {
		case errors.Is(buyErr, service.ErrInvalidStockName):
			respondError(c, http.StatusBadRequest, "Valid stock name is required", nil)
		case errors.Is(buyErr, service.ErrInvalidAmount):
			respondError(c, http.StatusBadRequest,
				"Valid price is required (must be a positive number)", nil)
		case errors.As(buyErr, &fundsErr):
			respondError(c, http.StatusBadRequest, "Insufficient balance for this purchase", gin.H{
				"details": gin.H{
					"stockName":      fundsErr.StockName,
					"price":          fundsErr.Price.InexactFloat64(),
					"quantity":       fundsErr.Quantity,
					"requiredAmount": fundsErr.RequiredAmount.InexactFloat64(),
					"currentBalance": fundsErr.CurrentBalance.InexactFloat64(),
					"shortfall":      fundsErr.Shortfall().InexactFloat64(),
				},
				"alert": gin.H{
					"type":    "INSUFFICIENT_BALANCE",
					"message": fundsErr.Error(),
				},
			})
		case errors.As(buyErr, &floorErr):
			respondError(c, http.StatusBadRequest, "Purchase would leave insufficient balance", gin.H{
				"details": gin.H{
					"remainingBalance": floorErr.RemainingBalance.InexactFloat64(),
					"minimumRequired":  floorErr.MinimumRequired.InexactFloat64(),
					"shortfall":        floorErr.Shortfall().InexactFloat64(),
				},
				"alert": gin.H{
					"type":    "MINIMUM_BALANCE_VIOLATION",
					"message": floorErr.Error(),
				},
			})
		default:
			respondInternalError(c, buyErr)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Buy order executed successfully",
		"order":   newOrderResponse(result.Order),
		"balance": gin.H{
			"previousBalance": result.PreviousBalance.InexactFloat64(),
			"amountSpent":     result.Order.TotalAmount.InexactFloat64(),
			"newBalance":      result.NewBalance.InexactFloat64(),
			"currency":        service.Currency,
		},
		"portfolio": PositionResponse{
			StockName:       result.Position.StockName,
			Quantity:        result.Position.Quantity,
			AveragePrice:    result.Position.AveragePrice.InexactFloat64(),
			TotalInvestment: result.Position.TotalInvestment.InexactFloat64(),
		},
	})
}

// Sell POST TradingSellRoute. profitLoss.percentage is null when the cost
// basis is zero.
func (h *TradingHandler) Sell(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	args, ok := bindTradeParams(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, sellErr := h.tradingService.Sell(ctx, currentUserID, args)
	if sellErr != nil {
		var noHoldingErr *domain.NoHoldingError
		var sharesErr *domain.InsufficientSharesError

		switch {
		case errors.Is(sellErr, service.ErrInvalidStockName):
			respondError(c, http.StatusBadRequest, "Valid stock name is required", nil)
		case errors.Is(sellErr, service.ErrInvalidAmount):
			respondError(c, http.StatusBadRequest,
				"Valid price is required (must be a positive number)", nil)
		case errors.As(sellErr, &noHoldingErr):
			respondError(c, http.StatusBadRequest, "You do not own any shares of this stock", gin.H{
				"details": gin.H{
					"stockName":         noHoldingErr.StockName,
					"requestedQuantity": noHoldingErr.RequestedQuantity,
				},
			})
		case errors.As(sellErr, &sharesErr):
			respondError(c, http.StatusBadRequest, "Insufficient shares to sell", gin.H{
				"details": gin.H{
					"stockName":         sharesErr.StockName,
					"ownedQuantity":     sharesErr.OwnedQuantity,
					"requestedQuantity": sharesErr.RequestedQuantity,
					"shortfall":         sharesErr.RequestedQuantity - sharesErr.OwnedQuantity,
				},
			})
		default:
			respondInternalError(c, sellErr)
		}
		return
	}

	profitLossType := "profit"
	if result.ProfitLoss.IsNegative() {
		profitLossType = "loss"
	}
	var percentage *float64
	if result.ProfitLossPercentage != nil {
		value := result.ProfitLossPercentage.InexactFloat64()
		percentage = &value
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sell order executed successfully",
		"order":   newOrderResponse(result.Order),
		"balance": gin.H{
			"previousBalance": result.PreviousBalance.InexactFloat64(),
			"amountReceived":  result.Order.TotalAmount.InexactFloat64(),
			"newBalance":      result.NewBalance.InexactFloat64(),
			"currency":        service.Currency,
		},
		"profitLoss": gin.H{
			"amount":     result.ProfitLoss.InexactFloat64(),
			"percentage": percentage,
			"type":       profitLossType,
		},
		"portfolio": gin.H{
			"stockName":         result.Order.StockName,
			"remainingQuantity": result.RemainingQuantity,
			"averagePrice":      result.AveragePrice.InexactFloat64(),
		},
	})
}

// Portfolio GET TradingPortfolioRoute.
func (h *TradingHandler) Portfolio(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, portfolioErr := h.tradingService.Portfolio(ctx, currentUserID)
	if portfolioErr != nil {
		respondInternalError(c, portfolioErr)
		return
	}

	stocks := make([]gin.H, len(summary.Positions))
	for i, position := range summary.Positions {
		stocks[i] = gin.H{
			"stockName":       position.StockName,
			"quantity":        position.Quantity,
			"averagePrice":    position.AveragePrice.InexactFloat64(),
			"totalInvestment": position.TotalInvestment.InexactFloat64(),
			"currentValue":    position.CurrentValue.InexactFloat64(),
			"createdAt":       position.CreatedAt,
			"updatedAt":       position.UpdatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Portfolio retrieved successfully",
		"portfolio": gin.H{
			"totalStocks":      summary.TotalStocks,
			"totalInvestment":  summary.TotalInvestment.InexactFloat64(),
			"numberOfHoldings": summary.NumberOfHoldings,
			"stocks":           stocks,
		},
	})
}
