package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/internal/service/mocks"
	"github.com/bhupeshkr/sebi-trading/internal/service/tokens"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
	uowmocks "github.com/bhupeshkr/sebi-trading/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)

	s.jwtSecret = []byte("secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{
		Username: "trader1",
		Email:    "trader1@example.com",
		Phone:    "9876543210",
		Name:     "Trader One",
		Password: "plain password",
	}
	argsDuplicateUsername := RegisterUserArgs{
		Username: "duplicateUser",
		Email:    "dup@example.com",
		Phone:    "9876543211",
		Name:     "Dup User",
		Password: "plain password",
	}

	validHashedPassword := "hashedPassword"

	createdUser := domain.User{
		ID:                1,
		Username:          argsOk.Username,
		Email:             argsOk.Email,
		Phone:             argsOk.Phone,
		Name:              argsOk.Name,
		EncryptedPassword: validHashedPassword,
		KYCStatus:         domain.KYCStatusNotRegistered,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(validHashedPassword, nil)
	s.mockPsswd.EXPECT().HashPassword(argsDuplicateUsername.Password).Return(validHashedPassword, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username:          argsOk.Username,
			Email:             argsOk.Email,
			Phone:             argsOk.Phone,
			Name:              argsOk.Name,
			EncryptedPassword: validHashedPassword,
		})).
		Return(&createdUser, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username:          argsDuplicateUsername.Username,
			Email:             argsDuplicateUsername.Email,
			Phone:             argsDuplicateUsername.Phone,
			Name:              argsDuplicateUsername.Name,
			EncryptedPassword: validHashedPassword,
		})).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name     string
		args     RegisterUserArgs
		wantErr  error
		wantUser *domain.User
	}{
		{name: "ok", args: argsOk, wantUser: &createdUser},
		{name: "duplicate username", args: argsDuplicateUsername, wantErr: domain.ErrDuplicateKey},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.Register(context.Background(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)
		})
	}
}

// The stored password must never be the plaintext one.
func (s *UserServiceTestSuite) TestRegisterStoresHash() {
	args := RegisterUserArgs{
		Username: "trader1",
		Email:    "trader1@example.com",
		Phone:    "9876543210",
		Name:     "Trader One",
		Password: "plain password",
	}

	s.mockPsswd.EXPECT().HashPassword(args.Password).Return("bcrypt output", nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, createArgs repoargs.CreateUser) (*domain.User, error) {
			s.NotEqual(args.Password, createArgs.EncryptedPassword)
			return &domain.User{ID: 1, Username: args.Username}, nil
		})

	_, err := s.userService.Register(context.Background(), args)
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUserUsername := "trader1"

	argsOk := LoginUserArgs{
		Username: savedUserUsername,
		Password: "<PASSWORD>",
	}
	argsWrongUsername := LoginUserArgs{
		Username: "wrong",
		Password: "<PASSWORD>",
	}
	argsWrongPass := LoginUserArgs{
		Username: savedUserUsername,
		Password: "wrong pass",
	}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:                1,
		Username:          savedUserUsername,
		EncryptedPassword: validHashPassword,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongUsername.Password, validHashPassword).Times(0)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), savedUserUsername).
		Return(&savedUser, nil).Times(2)

	s.mockUserRepo.EXPECT().
		FindUserByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(context.Background(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.NotNil(user)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)

				claims := token.Claims.(*tokens.UserClaims) //nolint:errcheck
				s.Equal(savedUser.ID, claims.ID)
				s.Equal(savedUser.Username, claims.Username)
			}
		})
	}
}
