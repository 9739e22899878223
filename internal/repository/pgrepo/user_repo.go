package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

const userColumns = `id, created_at, updated_at, username, email, phone, name, encrypted_password, kyc_status`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a user. A username conflict comes back as
// domain.ErrDuplicateKey, anything else as domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (username, email, phone, name, encrypted_password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		args.Username, args.Email, args.Phone, args.Name, args.EncryptedPassword,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByUsername returns domain.ErrRecordNotFound when no such user
// exists.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

// UpdateKYCStatus mirrors the KYC state onto the user record.
func (u *UserRepository) UpdateKYCStatus(ctx context.Context, userID int64, status domain.KYCStatusType) error {
	tag, err := u.db.Exec(ctx, `UPDATE users SET kyc_status = $1, updated_at = now() WHERE id = $2`, status, userID)
	if err != nil {
		return convertErr(err, "updating kyc status for user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating kyc status for user %d", userID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.Name,
		&user.EncryptedPassword,
		&user.KYCStatus,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
