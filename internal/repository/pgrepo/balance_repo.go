package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

type BalanceRepository struct {
	db uow.DBTX
}

func NewBalanceRepository(db uow.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// CreateIfAbsent lazily provisions the zero balance row. The user_id primary
// key makes the first-access race harmless: concurrent callers collapse onto
// one row.
func (b *BalanceRepository) CreateIfAbsent(ctx context.Context, userID int64) error {
	_, err := b.db.Exec(ctx, `
		INSERT INTO balances (user_id, amount) VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return convertErr(err, "creating balance for user %d", userID)
	}
	return nil
}

func (b *BalanceRepository) Get(ctx context.Context, userID int64) (*domain.Balance, error) {
	row := b.db.QueryRow(ctx, `SELECT user_id, amount, updated_at FROM balances WHERE user_id = $1`, userID)
	return b.scanBalance(row, userID)
}

// GetForUpdate locks the balance row for the rest of the enclosing
// transaction. Only valid inside uow.Do.
func (b *BalanceRepository) GetForUpdate(ctx context.Context, userID int64) (*domain.Balance, error) {
	row := b.db.QueryRow(ctx,
		`SELECT user_id, amount, updated_at FROM balances WHERE user_id = $1 FOR UPDATE`, userID)
	return b.scanBalance(row, userID)
}

func (b *BalanceRepository) UpdateAmount(ctx context.Context, userID int64, amount decimal.Decimal) error {
	tag, err := b.db.Exec(ctx, `
		UPDATE balances SET amount = $1, updated_at = $2 WHERE user_id = $3`,
		amount, time.Now(), userID,
	)
	if err != nil {
		return convertErr(err, "updating balance for user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating balance for user %d", userID)
	}
	return nil
}

// scanBalance reads the amount through pgtype.Numeric so corruption (NULL,
// NaN, negative) surfaces as domain.ErrDataIntegrity instead of being
// coerced to zero.
func (b *BalanceRepository) scanBalance(row pgx.Row, userID int64) (*domain.Balance, error) {
	var balance domain.Balance
	var rawAmount pgtype.Numeric
	if err := row.Scan(&balance.UserID, &rawAmount, &balance.UpdatedAt); err != nil {
		return nil, convertErr(err, "getting balance for user %d", userID)
	}

	amount, amountErr := numericToDecimal(rawAmount)
	if amountErr != nil {
		return nil, fmt.Errorf("[repository/getting balance for user %d] %w: %s",
			userID, domain.ErrDataIntegrity, amountErr.Error())
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("[repository/getting balance for user %d] %w: negative amount %s",
			userID, domain.ErrDataIntegrity, amount)
	}
	balance.Amount = amount
	return &balance, nil
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, fmt.Errorf("amount is null")
	}
	if n.NaN {
		return decimal.Zero, fmt.Errorf("amount is NaN")
	}
	if n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, fmt.Errorf("amount is infinite")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
