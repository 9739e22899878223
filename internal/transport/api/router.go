package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bhupeshkr/sebi-trading/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RootRoute = "/"

	AuthSignupRoute = "/auth/signup"
	AuthLoginRoute  = "/auth/login"

	KYCRegisterRoute = "/kyc/register"
	KYCValidateRoute = "/kyc/validate"
	KYCStatusRoute   = "/kyc/status"

	BalanceAddRoute          = "/balance/add"
	BalanceCheckRoute        = "/balance/check"
	BalanceCheckLowRoute     = "/balance/check-low-balance"
	BalanceAlertRoute        = "/balance/alert"
	BalanceTransactionsRoute = "/balance/transactions"

	TradingBuyRoute       = "/trading/buy"
	TradingSellRoute      = "/trading/sell"
	TradingPortfolioRoute = "/trading/portfolio"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	KYCService     KYCServicer
	BalanceService BalanceServicer
	TradingService TradingServicer
	JWTSecretKey   []byte
	CORSOrigins    []string
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if len(args.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     args.CORSOrigins,
			AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}))
	}

	authHandler := NewAuthHandler(args.UserService)
	kycHandler := NewKYCHandler(args.KYCService)
	balanceHandler := NewBalanceHandler(args.BalanceService)
	tradingHandler := NewTradingHandler(args.TradingService)

	r.GET(RootRoute, serviceMetadata)

	r.POST(AuthSignupRoute, authHandler.Signup)
	r.POST(AuthLoginRoute, authHandler.Login)

	authorized := r.Group("/", middlewares.AuthRequired(args.JWTSecretKey))

	authorized.POST(KYCRegisterRoute, kycHandler.Register)
	authorized.POST(KYCValidateRoute, kycHandler.Validate)
	authorized.GET(KYCStatusRoute, kycHandler.Status)

	authorized.POST(BalanceAddRoute, balanceHandler.Add)
	authorized.GET(BalanceCheckRoute, balanceHandler.Check)
	authorized.GET(BalanceCheckLowRoute, balanceHandler.CheckLowBalance)
	authorized.GET(BalanceAlertRoute, balanceHandler.Alert)
	authorized.GET(BalanceTransactionsRoute, balanceHandler.Transactions)

	authorized.POST(TradingBuyRoute, tradingHandler.Buy)
	authorized.POST(TradingSellRoute, tradingHandler.Sell)
	authorized.GET(TradingPortfolioRoute, tradingHandler.Portfolio)

	return r
}

// serviceMetadata GET /. Unauthenticated route map for API discovery.
func serviceMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SEBI Hackathon Trading Platform API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"auth": gin.H{
				"signup": "POST " + AuthSignupRoute,
				"login":  "POST " + AuthLoginRoute,
			},
			"kyc": gin.H{
				"register": "POST " + KYCRegisterRoute,
				"validate": "POST " + KYCValidateRoute,
				"status":   "GET " + KYCStatusRoute,
			},
			"balance": gin.H{
				"add":             "POST " + BalanceAddRoute,
				"check":           "GET " + BalanceCheckRoute,
				"checkLowBalance": "GET " + BalanceCheckLowRoute,
				"alert":           "GET " + BalanceAlertRoute,
				"transactions":    "GET " + BalanceTransactionsRoute,
			},
			"trading": gin.H{
				"buy":       "POST " + TradingBuyRoute,
				"sell":      "POST " + TradingSellRoute,
				"portfolio": "GET " + TradingPortfolioRoute,
			},
		},
	})
}
