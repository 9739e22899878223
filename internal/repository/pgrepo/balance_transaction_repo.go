package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

const balanceTransactionColumns = `id, created_at, user_id, type, amount, description`

type BalanceTransactionRepository struct {
	db uow.DBTX
}

func NewBalanceTransactionRepository(db uow.DBTX) *BalanceTransactionRepository {
	return &BalanceTransactionRepository{db: db}
}

// Create appends an entry to the transaction log. The log is append-only:
// there are no update or delete queries in this repository.
func (b *BalanceTransactionRepository) Create(
	ctx context.Context,
	args repoargs.BalanceTransactionCreate,
) (*domain.BalanceTransaction, error) {
	row := b.db.QueryRow(ctx, `
		INSERT INTO balance_transactions (user_id, type, amount, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+balanceTransactionColumns,
		args.UserID, args.Type, args.Amount, args.Description,
	)
	transaction, err := scanBalanceTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating balance transaction for user %d", args.UserID)
	}
	return transaction, nil
}

// GetRecent returns the newest limit entries for a user.
func (b *BalanceTransactionRepository) GetRecent(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]domain.BalanceTransaction, error) {
	rows, err := b.db.Query(ctx, `
		SELECT `+balanceTransactionColumns+`
		FROM balance_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "getting recent balance transactions for user %d", userID)
	}
	return collectBalanceTransactions(rows, userID)
}

// GetPage returns one newest-first page of the transaction log.
func (b *BalanceTransactionRepository) GetPage(
	ctx context.Context,
	userID int64,
	page repoargs.TransactionPage,
) ([]domain.BalanceTransaction, error) {
	rows, err := b.db.Query(ctx, `
		SELECT `+balanceTransactionColumns+`
		FROM balance_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userID, int64(page.Limit), int64(page.Offset),
	)
	if err != nil {
		return nil, convertErr(err, "getting balance transactions page for user %d", userID)
	}
	return collectBalanceTransactions(rows, userID)
}

func (b *BalanceTransactionRepository) CountByUserID(ctx context.Context, userID int64) (uint, error) {
	var count uint
	err := b.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM balance_transactions WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting balance transactions for user %d", userID)
	}
	return count, nil
}

func collectBalanceTransactions(rows pgx.Rows, userID int64) ([]domain.BalanceTransaction, error) {
	defer rows.Close()

	var transactions []domain.BalanceTransaction
	for rows.Next() {
		transaction, scanErr := scanBalanceTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning balance transaction for user %d", userID)
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading balance transactions for user %d", userID)
	}
	return transactions, nil
}

func scanBalanceTransaction(row rowScanner) (*domain.BalanceTransaction, error) {
	var transaction domain.BalanceTransaction
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UserID,
		&transaction.Type,
		&transaction.Amount,
		&transaction.Description,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
