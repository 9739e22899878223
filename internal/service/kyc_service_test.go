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
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
	uowmocks "github.com/bhupeshkr/sebi-trading/pkg/uow/mocks"
)

type KYCServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockKYCRepo  *mocks.MockKYCRepository
	mockUserRepo *mocks.MockUserRepository
	kycService   *KYCService
}

func TestKYCServiceSuite(t *testing.T) {
	suite.Run(t, new(KYCServiceTestSuite))
}

func (s *KYCServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockKYCRepo = mocks.NewMockKYCRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.KYCRepoName)).
		Return(s.mockKYCRepo, nil).AnyTimes()

	kycService, servErr := NewKYCService(s.mockUOW)
	s.Require().NoError(servErr)
	s.kycService = kycService
}

func (s *KYCServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// stubTransaction makes uow.Do run its callback against the mocked TX.
func (s *KYCServiceTestSuite) stubTransaction() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.KYCRepoName)).
		Return(s.mockKYCRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *KYCServiceTestSuite) TestRegister_PANFormat() {
	var currentUserID int64 = 1

	cases := []struct {
		name       string
		pan        string
		normalized string
		wantErr    error
	}{
		{name: "valid", pan: "ABCDE1234F", normalized: "ABCDE1234F"},
		{name: "lowercase is normalized", pan: "abcde1234f", normalized: "ABCDE1234F"},
		{name: "surrounding spaces", pan: "  ABCDE1234F ", normalized: "ABCDE1234F"},
		{name: "digits first", pan: "12345ABCDE", wantErr: ErrInvalidPAN},
		{name: "too short", pan: "ABCDE1234", wantErr: ErrInvalidPAN},
		{name: "too long", pan: "ABCDE1234FF", wantErr: ErrInvalidPAN},
		{name: "empty", pan: "", wantErr: ErrInvalidPAN},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			if t.wantErr == nil {
				s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
					Return(nil, domain.ErrRecordNotFound)
				s.mockKYCRepo.EXPECT().Create(gomock.Any(), currentUserID, t.normalized).
					Return(&domain.KYCRecord{ID: 1, UserID: currentUserID, PAN: t.normalized}, nil)
			}

			record, err := s.kycService.Register(context.Background(), currentUserID, t.pan)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(t.normalized, record.PAN)
			}
		})
	}
}

func (s *KYCServiceTestSuite) TestRegister_Duplicate() {
	var currentUserID int64 = 1

	existing := domain.KYCRecord{
		ID:     10,
		UserID: currentUserID,
		PAN:    "ABCDE1234F",
		Status: domain.KYCStatusPending,
	}

	s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
		Return(&existing, nil)

	_, err := s.kycService.Register(context.Background(), currentUserID, "FGHIJ5678K")

	var dupErr *domain.DuplicateKYCError
	s.Require().ErrorAs(err, &dupErr)
	s.Equal(&existing, dupErr.Existing)
}

// A concurrent registration that wins the unique constraint race must still
// come back as a duplicate carrying the winning record.
func (s *KYCServiceTestSuite) TestRegister_DuplicateRace() {
	var currentUserID int64 = 1

	winner := domain.KYCRecord{ID: 11, UserID: currentUserID, PAN: "ABCDE1234F"}

	gomock.InOrder(
		s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
			Return(nil, domain.ErrRecordNotFound),
		s.mockKYCRepo.EXPECT().Create(gomock.Any(), currentUserID, "ABCDE1234F").
			Return(nil, domain.ErrDuplicateKey),
		s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
			Return(&winner, nil),
	)

	_, err := s.kycService.Register(context.Background(), currentUserID, "ABCDE1234F")

	var dupErr *domain.DuplicateKYCError
	s.Require().ErrorAs(err, &dupErr)
	s.Equal(&winner, dupErr.Existing)
}

func (s *KYCServiceTestSuite) TestValidate() {
	var currentUserID int64 = 1
	var kycID int64 = 10

	s.stubTransaction()

	pending := domain.KYCRecord{
		ID:     kycID,
		UserID: currentUserID,
		PAN:    "ABCDE1234F",
		Status: domain.KYCStatusPending,
	}

	s.mockKYCRepo.EXPECT().FindByIDAndUserID(gomock.Any(), kycID, currentUserID).
		Return(&pending, nil)
	s.mockKYCRepo.EXPECT().MarkValidated(gomock.Any(), kycID, gomock.Any()).
		Return(nil)
	s.mockUserRepo.EXPECT().UpdateKYCStatus(gomock.Any(), currentUserID, domain.KYCStatusValidated).
		Return(nil)

	record, err := s.kycService.Validate(context.Background(), currentUserID, kycID)
	s.Require().NoError(err)
	s.Equal(domain.KYCStatusValidated, record.Status)
	s.Require().NotNil(record.ValidatedAt)
	s.WithinDuration(time.Now(), *record.ValidatedAt, time.Minute)
}

func (s *KYCServiceTestSuite) TestValidate_AlreadyValidated() {
	var currentUserID int64 = 1
	var kycID int64 = 10

	s.stubTransaction()

	validatedAt := time.Now().Add(-time.Hour)
	s.mockKYCRepo.EXPECT().FindByIDAndUserID(gomock.Any(), kycID, currentUserID).
		Return(&domain.KYCRecord{
			ID:          kycID,
			UserID:      currentUserID,
			Status:      domain.KYCStatusValidated,
			ValidatedAt: &validatedAt,
		}, nil)

	_, err := s.kycService.Validate(context.Background(), currentUserID, kycID)
	s.Require().ErrorIs(err, domain.ErrKYCAlreadyValidated)
}

func (s *KYCServiceTestSuite) TestValidate_NotFound() {
	var currentUserID int64 = 1

	s.stubTransaction()

	s.mockKYCRepo.EXPECT().FindByIDAndUserID(gomock.Any(), int64(999), currentUserID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.kycService.Validate(context.Background(), currentUserID, 999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *KYCServiceTestSuite) TestStatus() {
	var currentUserID int64 = 1

	record := domain.KYCRecord{ID: 10, UserID: currentUserID, PAN: "ABCDE1234F"}

	s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
		Return(&record, nil)

	got, err := s.kycService.Status(context.Background(), currentUserID)
	s.Require().NoError(err)
	s.Equal(&record, got)

	s.mockKYCRepo.EXPECT().FindByUserID(gomock.Any(), currentUserID).
		Return(nil, domain.ErrRecordNotFound)

	_, notFoundErr := s.kycService.Status(context.Background(), currentUserID)
	s.Require().ErrorIs(notFoundErr, domain.ErrRecordNotFound)
}
