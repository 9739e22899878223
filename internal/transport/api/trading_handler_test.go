package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/logger"
	"github.com/bhupeshkr/sebi-trading/internal/service"
	"github.com/bhupeshkr/sebi-trading/internal/service/tokens"
	"github.com/bhupeshkr/sebi-trading/internal/transport/api/mocks"
	"github.com/bhupeshkr/sebi-trading/internal/transport/api/testutils"
)

type TradingHandlerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	router             *gin.Engine
	mockTradingService *mocks.MockTradingServicer
	jwtSecret          []byte
	jwtToken           string
	currentUserID      int64
}

func TestTradingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradingHandlerTestSuite))
}

func (s *TradingHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTradingService = mocks.NewMockTradingServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 1

	token, tokenErr := tokens.GenerateUserJWT(s.currentUserID, "trader1", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		TradingService: s.mockTradingService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *TradingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TradingHandlerTestSuite) decodeBody(resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint:errcheck
	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (s *TradingHandlerTestSuite) postJSON(url string, payload any) *http.Response {
	raw, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    url,
		Body:   bytes.NewReader(raw),
	}, testutils.WithBearerToken(s.jwtToken))
	s.Require().NoError(err)
	return resp
}

func (s *TradingHandlerTestSuite) TestBuy_Validation() {
	cases := []struct {
		name      string
		payload   map[string]any
		wantError string
	}{
		{
			name:      "missing stock name",
			payload:   map[string]any{"price": 350, "quantity": 10},
			wantError: "Valid stock name is required",
		},
		{
			name:      "zero price",
			payload:   map[string]any{"stockName": "TCS", "price": 0, "quantity": 10},
			wantError: "Valid price is required (must be a positive number)",
		},
		{
			name:      "negative quantity",
			payload:   map[string]any{"stockName": "TCS", "price": 350, "quantity": -1},
			wantError: "Valid quantity is required (must be a positive integer)",
		},
		{
			name:      "fractional quantity",
			payload:   map[string]any{"stockName": "TCS", "price": 350, "quantity": 2.5},
			wantError: "Valid quantity is required (must be a positive integer)",
		},
		{
			name:      "price is not a number",
			payload:   map[string]any{"stockName": "TCS", "price": "350", "quantity": 10},
			wantError: "Valid price is required (must be a positive number)",
		},
		{
			name:      "quantity is not a number",
			payload:   map[string]any{"stockName": "TCS", "price": 350, "quantity": "10"},
			wantError: "Valid quantity is required (must be a positive integer)",
		},
		{
			name:      "blank stock name",
			payload:   map[string]any{"stockName": "   ", "price": 350, "quantity": 10},
			wantError: "Valid stock name is required",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.postJSON(TradingBuyRoute, t.payload)
			s.Equal(http.StatusBadRequest, resp.StatusCode)
			s.Equal(t.wantError, s.decodeBody(resp)["error"])
		})
	}
}

func (s *TradingHandlerTestSuite) TestBuy() {
	executedAt := time.Now()
	result := service.BuyResult{
		Order: &domain.Order{
			ID:          1,
			UserID:      s.currentUserID,
			StockName:   "TCS",
			OrderType:   domain.OrderTypeBuy,
			Quantity:    10,
			Price:       decimal.NewFromInt(350),
			TotalAmount: decimal.NewFromInt(3500),
			Status:      domain.OrderStatusExecuted,
			ExecutedAt:  executedAt,
		},
		PreviousBalance: decimal.NewFromInt(5000),
		NewBalance:      decimal.NewFromInt(1500),
		Position: &domain.Position{
			UserID:          s.currentUserID,
			StockName:       "TCS",
			Quantity:        10,
			AveragePrice:    decimal.NewFromInt(350),
			TotalInvestment: decimal.NewFromInt(3500),
		},
	}

	s.mockTradingService.EXPECT().
		Buy(gomock.Any(), s.currentUserID, gomock.Any()).
		DoAndReturn(func(_ any, _ int64, args service.TradeArgs) (*service.BuyResult, error) {
			s.Equal("TCS", args.StockName)
			s.True(args.Price.Equal(decimal.NewFromInt(350)))
			s.EqualValues(10, args.Quantity)
			return &result, nil
		})

	resp := s.postJSON(TradingBuyRoute, map[string]any{
		"stockName": "TCS", "price": 350, "quantity": 10,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal(true, body["success"])
	s.Equal("Buy order executed successfully", body["message"])

	order := body["order"].(map[string]any) //nolint:errcheck
	s.EqualValues(1, order["orderId"])
	s.Equal("buy", order["orderType"])

	balance := body["balance"].(map[string]any) //nolint:errcheck
	s.EqualValues(5000, balance["previousBalance"])
	s.EqualValues(3500, balance["amountSpent"])
	s.EqualValues(1500, balance["newBalance"])
	s.Equal("INR", balance["currency"])

	portfolio := body["portfolio"].(map[string]any) //nolint:errcheck
	s.EqualValues(10, portfolio["quantity"])
	s.EqualValues(350, portfolio["averagePrice"])
}

func (s *TradingHandlerTestSuite) TestBuy_InsufficientFunds() {
	s.mockTradingService.EXPECT().
		Buy(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(nil, &domain.InsufficientFundsError{
			StockName:      "TCS",
			Price:          decimal.NewFromInt(350),
			Quantity:       10,
			RequiredAmount: decimal.NewFromInt(3500),
			CurrentBalance: decimal.NewFromInt(2000),
		})

	resp := s.postJSON(TradingBuyRoute, map[string]any{
		"stockName": "TCS", "price": 350, "quantity": 10,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("Insufficient balance for this purchase", body["error"])

	details := body["details"].(map[string]any) //nolint:errcheck
	s.EqualValues(3500, details["requiredAmount"])
	s.EqualValues(2000, details["currentBalance"])
	s.EqualValues(1500, details["shortfall"])

	alert := body["alert"].(map[string]any) //nolint:errcheck
	s.Equal("INSUFFICIENT_BALANCE", alert["type"])
}

func (s *TradingHandlerTestSuite) TestBuy_MinimumBalanceViolation() {
	s.mockTradingService.EXPECT().
		Buy(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(nil, &domain.MinimumBalanceError{
			RemainingBalance: decimal.NewFromInt(500),
			MinimumRequired:  decimal.NewFromInt(1000),
		})

	resp := s.postJSON(TradingBuyRoute, map[string]any{
		"stockName": "TCS", "price": 350, "quantity": 10,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("Purchase would leave insufficient balance", body["error"])

	details := body["details"].(map[string]any) //nolint:errcheck
	s.EqualValues(500, details["remainingBalance"])
	s.EqualValues(1000, details["minimumRequired"])
	s.EqualValues(500, details["shortfall"])

	alert := body["alert"].(map[string]any) //nolint:errcheck
	s.Equal("MINIMUM_BALANCE_VIOLATION", alert["type"])
}

func (s *TradingHandlerTestSuite) TestSell() {
	pct := decimal.NewFromFloat(14.29)
	result := service.SellResult{
		Order: &domain.Order{
			ID:          3,
			UserID:      s.currentUserID,
			StockName:   "TCS",
			OrderType:   domain.OrderTypeSell,
			Quantity:    4,
			Price:       decimal.NewFromInt(400),
			TotalAmount: decimal.NewFromInt(1600),
			Status:      domain.OrderStatusExecuted,
			ExecutedAt:  time.Now(),
		},
		PreviousBalance:      decimal.NewFromInt(1500),
		NewBalance:           decimal.NewFromInt(3100),
		ProfitLoss:           decimal.NewFromInt(200),
		ProfitLossPercentage: &pct,
		AveragePrice:         decimal.NewFromInt(350),
		RemainingQuantity:    6,
	}

	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(&result, nil)

	resp := s.postJSON(TradingSellRoute, map[string]any{
		"stockName": "TCS", "price": 400, "quantity": 4,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("Sell order executed successfully", body["message"])

	balance := body["balance"].(map[string]any) //nolint:errcheck
	s.EqualValues(1600, balance["amountReceived"])
	s.EqualValues(3100, balance["newBalance"])

	profitLoss := body["profitLoss"].(map[string]any) //nolint:errcheck
	s.EqualValues(200, profitLoss["amount"])
	s.Equal("profit", profitLoss["type"])
	s.InDelta(14.29, profitLoss["percentage"].(float64), 0.001) //nolint:errcheck

	portfolio := body["portfolio"].(map[string]any) //nolint:errcheck
	s.Equal("TCS", portfolio["stockName"])
	s.EqualValues(6, portfolio["remainingQuantity"])
	s.EqualValues(350, portfolio["averagePrice"])
}

// Undefined percentage renders as JSON null, never Infinity or NaN.
func (s *TradingHandlerTestSuite) TestSell_NullPercentage() {
	result := service.SellResult{
		Order: &domain.Order{
			ID:          4,
			StockName:   "TCS",
			OrderType:   domain.OrderTypeSell,
			Quantity:    4,
			Price:       decimal.NewFromInt(100),
			TotalAmount: decimal.NewFromInt(400),
		},
		PreviousBalance:      decimal.NewFromInt(1000),
		NewBalance:           decimal.NewFromInt(1400),
		ProfitLoss:           decimal.NewFromInt(400),
		ProfitLossPercentage: nil,
		AveragePrice:         decimal.Zero,
		RemainingQuantity:    6,
	}

	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(&result, nil)

	resp := s.postJSON(TradingSellRoute, map[string]any{
		"stockName": "TCS", "price": 100, "quantity": 4,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	profitLoss := body["profitLoss"].(map[string]any) //nolint:errcheck
	s.Nil(profitLoss["percentage"])
}

func (s *TradingHandlerTestSuite) TestSell_NoHolding() {
	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(nil, &domain.NoHoldingError{StockName: "WIPRO", RequestedQuantity: 5})

	resp := s.postJSON(TradingSellRoute, map[string]any{
		"stockName": "WIPRO", "price": 100, "quantity": 5,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("You do not own any shares of this stock", body["error"])

	details := body["details"].(map[string]any) //nolint:errcheck
	s.Equal("WIPRO", details["stockName"])
}

func (s *TradingHandlerTestSuite) TestSell_InsufficientShares() {
	s.mockTradingService.EXPECT().
		Sell(gomock.Any(), s.currentUserID, gomock.Any()).
		Return(nil, &domain.InsufficientSharesError{
			StockName:         "TCS",
			OwnedQuantity:     3,
			RequestedQuantity: 5,
		})

	resp := s.postJSON(TradingSellRoute, map[string]any{
		"stockName": "TCS", "price": 100, "quantity": 5,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("Insufficient shares to sell", body["error"])

	details := body["details"].(map[string]any) //nolint:errcheck
	s.EqualValues(3, details["ownedQuantity"])
	s.EqualValues(2, details["shortfall"])
}

func (s *TradingHandlerTestSuite) TestPortfolio() {
	summary := service.PortfolioSummary{
		TotalStocks:      15,
		TotalInvestment:  decimal.NewFromInt(4500),
		NumberOfHoldings: 2,
		Positions: []service.PositionView{
			{
				Position: domain.Position{
					StockName:       "TCS",
					Quantity:        10,
					AveragePrice:    decimal.NewFromInt(350),
					TotalInvestment: decimal.NewFromInt(3500),
				},
				CurrentValue: decimal.NewFromInt(3500),
			},
			{
				Position: domain.Position{
					StockName:       "INFY",
					Quantity:        5,
					AveragePrice:    decimal.NewFromInt(200),
					TotalInvestment: decimal.NewFromInt(1000),
				},
				CurrentValue: decimal.NewFromInt(1000),
			},
		},
	}

	s.mockTradingService.EXPECT().
		Portfolio(gomock.Any(), s.currentUserID).
		Return(&summary, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    TradingPortfolioRoute,
	}, testutils.WithBearerToken(s.jwtToken))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	portfolio := body["portfolio"].(map[string]any) //nolint:errcheck
	s.EqualValues(15, portfolio["totalStocks"])
	s.EqualValues(4500, portfolio["totalInvestment"])
	s.EqualValues(2, portfolio["numberOfHoldings"])

	stocks := portfolio["stocks"].([]any) //nolint:errcheck
	s.Len(stocks, 2)
	first := stocks[0].(map[string]any) //nolint:errcheck
	s.Equal("TCS", first["stockName"])
	s.EqualValues(3500, first["currentValue"])
}
