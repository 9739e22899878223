package service

import (
	"fmt"

	"github.com/bhupeshkr/sebi-trading/internal/service/psswd"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	KYCService     *KYCService
	BalanceService *BalanceService
	TradingService *TradingService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.BcryptHasher{})
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	kycService, kycServiceErr := NewKYCService(unitOfWork)
	if kycServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", kycServiceErr.Error())
	}

	balanceService, balanceServiceErr := NewBalanceService(unitOfWork)
	if balanceServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", balanceServiceErr.Error())
	}

	tradingService, tradingServiceErr := NewTradingService(unitOfWork)
	if tradingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tradingServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		KYCService:     kycService,
		BalanceService: balanceService,
		TradingService: tradingService,
	}, nil
}
