package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/service"
)

type KYCHandler struct {
	kycService KYCServicer
}

func NewKYCHandler(kycService KYCServicer) *KYCHandler {
	return &KYCHandler{
		kycService: kycService,
	}
}

type KYCRecordResponse struct {
	ID          int64      `json:"id"`
	PAN         string     `json:"pan"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ValidatedAt *time.Time `json:"validatedAt"`
}

func newKYCRecordResponse(record *domain.KYCRecord) KYCRecordResponse {
	return KYCRecordResponse{
		ID:          record.ID,
		PAN:         record.PAN,
		Status:      string(record.Status),
		CreatedAt:   record.CreatedAt,
		ValidatedAt: record.ValidatedAt,
	}
}

type KYCRegisterParams struct {
	PAN string `binding:"required" json:"pan"`
}

// Register POST KYCRegisterRoute.
func (h *KYCHandler) Register(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params KYCRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		respondError(c, http.StatusBadRequest, "PAN is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, registerErr := h.kycService.Register(ctx, currentUserID, params.PAN)
	if registerErr != nil {
		if errors.Is(registerErr, service.ErrInvalidPAN) {
			respondError(c, http.StatusBadRequest,
				"Invalid PAN format. PAN should be 10 characters (5 letters + 4 digits + 1 letter)", nil)
			return
		}
		var duplicateErr *domain.DuplicateKYCError
		if errors.As(registerErr, &duplicateErr) {
			respondError(c, http.StatusBadRequest, "KYC already registered for this user", gin.H{
				"existingKyc": newKYCRecordResponse(duplicateErr.Existing),
				"kycExists":   true,
			})
			return
		}
		respondInternalError(c, registerErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "KYC registration successful",
		"kycId":     record.ID,
		"pan":       record.PAN,
		"status":    record.Status,
		"kycExists": false,
	})
}

type KYCValidateParams struct {
	KYCID int64 `binding:"required" json:"kycId"`
}

// Validate POST KYCValidateRoute.
func (h *KYCHandler) Validate(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params KYCValidateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		respondError(c, http.StatusBadRequest, "KYC ID is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, validateErr := h.kycService.Validate(ctx, currentUserID, params.KYCID)
	if validateErr != nil {
		switch {
		case errors.Is(validateErr, domain.ErrRecordNotFound):
			respondError(c, http.StatusNotFound, "KYC record not found", nil)
		case errors.Is(validateErr, domain.ErrKYCAlreadyValidated):
			respondError(c, http.StatusBadRequest, "KYC is already validated", nil)
		default:
			respondInternalError(c, validateErr)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "KYC validation successful",
		"kycId":       record.ID,
		"status":      record.Status,
		"validatedAt": record.ValidatedAt,
	})
}

// Status GET KYCStatusRoute. A user with no KYC record gets the
// not_registered sentinel, not an error.
func (h *KYCHandler) Status(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, statusErr := h.kycService.Status(ctx, currentUserID)
	if statusErr != nil {
		if errors.Is(statusErr, domain.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "No KYC record found",
				"kycStatus": domain.KYCStatusNotRegistered,
				"kycExists": false,
			})
			return
		}
		respondInternalError(c, statusErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "KYC status retrieved successfully",
		"kyc":       newKYCRecordResponse(record),
		"kycExists": true,
	})
}
