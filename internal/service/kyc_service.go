package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

// panPattern: 5 letters, 4 digits, 1 letter. Input is upper-cased before the
// check and stored upper-cased.
var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

var ErrInvalidPAN = errors.New("invalid PAN format")

type KYCService struct {
	uow     uow.UOW
	kycRepo KYCRepository
}

func NewKYCService(u uow.UOW) (*KYCService, error) {
	kycRepo, kycRepoErr := uow.GetRepositoryAs[KYCRepository](u, uow.RepositoryName(repoargs.KYCRepoName))
	if kycRepoErr != nil {
		return nil, kycRepoErr
	}
	return &KYCService{
		uow:     u,
		kycRepo: kycRepo,
	}, nil
}

// NormalizePAN upper-cases and trims a raw PAN value.
func NormalizePAN(pan string) string {
	return strings.ToUpper(strings.TrimSpace(pan))
}

// Register stores a pending KYC record for the user. Fails with
// ErrInvalidPAN on a malformed PAN and *domain.DuplicateKYCError (carrying
// the existing record) when the user already registered one.
func (s *KYCService) Register(ctx context.Context, userID int64, pan string) (*domain.KYCRecord, error) {
	normalized := NormalizePAN(pan)
	if !panPattern.MatchString(normalized) {
		return nil, fmt.Errorf("registering kyc: %w", ErrInvalidPAN)
	}

	existing, findErr := s.kycRepo.FindByUserID(ctx, userID)
	if findErr == nil {
		return nil, domain.NewDuplicateKYCError(existing)
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("registering kyc: %w", findErr)
	}

	record, createErr := s.kycRepo.Create(ctx, userID, normalized)
	if createErr != nil {
		// two concurrent registrations can slip past the lookup; the unique
		// constraint on user_id decides the winner.
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			winner, winnerErr := s.kycRepo.FindByUserID(ctx, userID)
			if winnerErr != nil {
				return nil, fmt.Errorf("registering kyc: %w", winnerErr)
			}
			return nil, domain.NewDuplicateKYCError(winner)
		}
		return nil, fmt.Errorf("registering kyc: %w", createErr)
	}
	return record, nil
}

// Validate transitions the record pending -> validated and mirrors the
// status onto the user row, both inside one transaction. Fails with
// domain.ErrRecordNotFound when (kycID, userID) does not match and
// domain.ErrKYCAlreadyValidated on a repeat call.
func (s *KYCService) Validate(ctx context.Context, userID, kycID int64) (*domain.KYCRecord, error) {
	var record *domain.KYCRecord

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		kycRepo, kycRepoErr := uow.GetAs[KYCRepository](tx, uow.RepositoryName(repoargs.KYCRepoName))
		if kycRepoErr != nil {
			return kycRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		found, findErr := kycRepo.FindByIDAndUserID(c, kycID, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if found.Status == domain.KYCStatusValidated {
			return domain.ErrKYCAlreadyValidated
		}

		validatedAt := time.Now()
		if markErr := kycRepo.MarkValidated(c, found.ID, validatedAt); markErr != nil {
			return markErr //nolint:wrapcheck
		}
		if userErr := userRepo.UpdateKYCStatus(c, userID, domain.KYCStatusValidated); userErr != nil {
			return userErr //nolint:wrapcheck
		}

		found.Status = domain.KYCStatusValidated
		found.ValidatedAt = &validatedAt
		record = found
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("validating kyc: %w", txErr)
	}
	return record, nil
}

// Status returns the user's KYC record, or domain.ErrRecordNotFound when the
// user never registered one (rendered as the not_registered sentinel by the
// transport layer).
func (s *KYCService) Status(ctx context.Context, userID int64) (*domain.KYCRecord, error) {
	record, err := s.kycRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return record, nil
}
