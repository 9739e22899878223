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
	"github.com/stretchr/testify/suite"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/logger"
	"github.com/bhupeshkr/sebi-trading/internal/service"
	"github.com/bhupeshkr/sebi-trading/internal/service/tokens"
	"github.com/bhupeshkr/sebi-trading/internal/transport/api/mocks"
	"github.com/bhupeshkr/sebi-trading/internal/transport/api/testutils"
)

type KYCHandlerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	router         *gin.Engine
	mockKYCService *mocks.MockKYCServicer
	jwtSecret      []byte
	jwtToken       string
	currentUserID  int64
}

func TestKYCHandlerSuite(t *testing.T) {
	suite.Run(t, new(KYCHandlerTestSuite))
}

func (s *KYCHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockKYCService = mocks.NewMockKYCServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 1

	token, tokenErr := tokens.GenerateUserJWT(s.currentUserID, "trader1", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		KYCService:   s.mockKYCService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *KYCHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *KYCHandlerTestSuite) decodeBody(resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint:errcheck
	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (s *KYCHandlerTestSuite) postJSON(url string, payload any) *http.Response {
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

func (s *KYCHandlerTestSuite) TestRegister() {
	record := domain.KYCRecord{
		ID:     10,
		UserID: s.currentUserID,
		PAN:    "ABCDE1234F",
		Status: domain.KYCStatusPending,
	}
	existing := domain.KYCRecord{
		ID:     9,
		UserID: s.currentUserID,
		PAN:    "FGHIJ5678K",
		Status: domain.KYCStatusPending,
	}

	s.mockKYCService.EXPECT().
		Register(gomock.Any(), s.currentUserID, "ABCDE1234F").
		Return(&record, nil)
	s.mockKYCService.EXPECT().
		Register(gomock.Any(), s.currentUserID, "12345ABCDE").
		Return(nil, service.ErrInvalidPAN)
	s.mockKYCService.EXPECT().
		Register(gomock.Any(), s.currentUserID, "KLMNO9012P").
		Return(nil, domain.NewDuplicateKYCError(&existing))

	s.Run("ok", func() {
		resp := s.postJSON(KYCRegisterRoute, map[string]string{"pan": "ABCDE1234F"})
		s.Equal(http.StatusOK, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal(true, body["success"])
		s.EqualValues(record.ID, body["kycId"])
		s.Equal(record.PAN, body["pan"])
		s.Equal(false, body["kycExists"])
	})

	s.Run("invalid pan", func() {
		resp := s.postJSON(KYCRegisterRoute, map[string]string{"pan": "12345ABCDE"})
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal("Invalid PAN format. PAN should be 10 characters (5 letters + 4 digits + 1 letter)",
			body["error"])
	})

	s.Run("duplicate", func() {
		resp := s.postJSON(KYCRegisterRoute, map[string]string{"pan": "KLMNO9012P"})
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal("KYC already registered for this user", body["error"])
		s.Equal(true, body["kycExists"])

		existingKyc := body["existingKyc"].(map[string]any) //nolint:errcheck
		s.Equal(existing.PAN, existingKyc["pan"])
	})

	s.Run("missing pan", func() {
		resp := s.postJSON(KYCRegisterRoute, map[string]string{})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal("PAN is required", s.decodeBody(resp)["error"])
	})
}

func (s *KYCHandlerTestSuite) TestValidate() {
	validatedAt := time.Now()
	validated := domain.KYCRecord{
		ID:          10,
		UserID:      s.currentUserID,
		PAN:         "ABCDE1234F",
		Status:      domain.KYCStatusValidated,
		ValidatedAt: &validatedAt,
	}

	s.mockKYCService.EXPECT().
		Validate(gomock.Any(), s.currentUserID, int64(10)).
		Return(&validated, nil)
	s.mockKYCService.EXPECT().
		Validate(gomock.Any(), s.currentUserID, int64(999)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockKYCService.EXPECT().
		Validate(gomock.Any(), s.currentUserID, int64(10)).
		Return(nil, domain.ErrKYCAlreadyValidated)

	s.Run("ok", func() {
		resp := s.postJSON(KYCValidateRoute, map[string]int64{"kycId": 10})
		s.Equal(http.StatusOK, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal(true, body["success"])
		s.Equal(string(domain.KYCStatusValidated), body["status"])
		s.NotNil(body["validatedAt"])
	})

	s.Run("not found", func() {
		resp := s.postJSON(KYCValidateRoute, map[string]int64{"kycId": 999})
		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.Equal("KYC record not found", s.decodeBody(resp)["error"])
	})

	s.Run("already validated", func() {
		resp := s.postJSON(KYCValidateRoute, map[string]int64{"kycId": 10})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal("KYC is already validated", s.decodeBody(resp)["error"])
	})
}

func (s *KYCHandlerTestSuite) TestStatus() {
	record := domain.KYCRecord{
		ID:     10,
		UserID: s.currentUserID,
		PAN:    "ABCDE1234F",
		Status: domain.KYCStatusPending,
	}

	s.Run("registered", func() {
		s.mockKYCService.EXPECT().
			Status(gomock.Any(), s.currentUserID).
			Return(&record, nil)

		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    KYCStatusRoute,
		}, testutils.WithBearerToken(s.jwtToken))
		s.Require().NoError(err)
		s.Equal(http.StatusOK, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal(true, body["kycExists"])
		kyc := body["kyc"].(map[string]any) //nolint:errcheck
		s.Equal(record.PAN, kyc["pan"])
	})

	s.Run("not registered sentinel", func() {
		s.mockKYCService.EXPECT().
			Status(gomock.Any(), s.currentUserID).
			Return(nil, domain.ErrRecordNotFound)

		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    KYCStatusRoute,
		}, testutils.WithBearerToken(s.jwtToken))
		s.Require().NoError(err)
		s.Equal(http.StatusOK, resp.StatusCode)

		body := s.decodeBody(resp)
		s.Equal(true, body["success"])
		s.Equal(string(domain.KYCStatusNotRegistered), body["kycStatus"])
		s.Equal(false, body["kycExists"])
	})
}

func (s *KYCHandlerTestSuite) TestAuthRequired() {
	s.Run("no header", func() {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    KYCStatusRoute,
		})
		s.Require().NoError(err)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		s.Equal("Authorization header required", s.decodeBody(resp)["error"])
	})

	s.Run("garbage token", func() {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    KYCStatusRoute,
		}, testutils.WithBearerToken("garbage"))
		s.Require().NoError(err)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		s.Equal("Invalid or expired token", s.decodeBody(resp)["error"])
	})

	s.Run("expired token", func() {
		expired, tokenErr := tokens.GenerateUserJWT(s.currentUserID, "trader1", -time.Minute, s.jwtSecret)
		s.Require().NoError(tokenErr)

		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    KYCStatusRoute,
		}, testutils.WithBearerToken(expired))
		s.Require().NoError(err)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}
