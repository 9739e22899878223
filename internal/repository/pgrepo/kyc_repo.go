package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

const kycColumns = `id, user_id, pan, status, created_at, validated_at`

type KYCRepository struct {
	db uow.DBTX
}

func NewKYCRepository(db uow.DBTX) *KYCRepository {
	return &KYCRepository{db: db}
}

// Create inserts a pending KYC record. A second record for the same user
// comes back as domain.ErrDuplicateKey.
func (k *KYCRepository) Create(ctx context.Context, userID int64, pan string) (*domain.KYCRecord, error) {
	row := k.db.QueryRow(ctx, `
		INSERT INTO kyc (user_id, pan, status)
		VALUES ($1, $2, $3)
		RETURNING `+kycColumns,
		userID, pan, domain.KYCStatusPending,
	)
	record, err := scanKYCRecord(row)
	if err != nil {
		return nil, convertErr(err, "creating kyc record for user %d", userID)
	}
	return record, nil
}

func (k *KYCRepository) FindByUserID(ctx context.Context, userID int64) (*domain.KYCRecord, error) {
	row := k.db.QueryRow(ctx, `SELECT `+kycColumns+` FROM kyc WHERE user_id = $1`, userID)
	record, err := scanKYCRecord(row)
	if err != nil {
		return nil, convertErr(err, "finding kyc record for user %d", userID)
	}
	return record, nil
}

// FindByIDAndUserID scopes the lookup to the owning user so one user can
// never validate another's record.
func (k *KYCRepository) FindByIDAndUserID(ctx context.Context, id, userID int64) (*domain.KYCRecord, error) {
	row := k.db.QueryRow(ctx, `SELECT `+kycColumns+` FROM kyc WHERE id = $1 AND user_id = $2`, id, userID)
	record, err := scanKYCRecord(row)
	if err != nil {
		return nil, convertErr(err, "finding kyc record %d for user %d", id, userID)
	}
	return record, nil
}

func (k *KYCRepository) MarkValidated(ctx context.Context, id int64, validatedAt time.Time) error {
	tag, err := k.db.Exec(ctx, `
		UPDATE kyc SET status = $1, validated_at = $2 WHERE id = $3`,
		domain.KYCStatusValidated, validatedAt, id,
	)
	if err != nil {
		return convertErr(err, "validating kyc record %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "validating kyc record %d", id)
	}
	return nil
}

func scanKYCRecord(row rowScanner) (*domain.KYCRecord, error) {
	var record domain.KYCRecord
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.PAN,
		&record.Status,
		&record.CreatedAt,
		&record.ValidatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
