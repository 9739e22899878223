package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

const positionColumns = `id, created_at, updated_at, user_id, stock_name, quantity, average_price, total_investment`

type PortfolioRepository struct {
	db uow.DBTX
}

func NewPortfolioRepository(db uow.DBTX) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (p *PortfolioRepository) Create(ctx context.Context, args repoargs.CreatePosition) (*domain.Position, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO portfolio (user_id, stock_name, quantity, average_price, total_investment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+positionColumns,
		args.UserID, args.StockName, args.Quantity, args.AveragePrice, args.TotalInvestment,
	)
	position, err := scanPosition(row)
	if err != nil {
		return nil, convertErr(err, "creating position %s for user %d", args.StockName, args.UserID)
	}
	return position, nil
}

func (p *PortfolioRepository) FindByUserAndStock(
	ctx context.Context,
	userID int64,
	stockName string,
) (*domain.Position, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM portfolio WHERE user_id = $1 AND stock_name = $2`,
		userID, stockName,
	)
	position, err := scanPosition(row)
	if err != nil {
		return nil, convertErr(err, "finding position %s for user %d", stockName, userID)
	}
	return position, nil
}

// FindForUpdate locks the position row for the rest of the enclosing
// transaction. Only valid inside uow.Do.
func (p *PortfolioRepository) FindForUpdate(
	ctx context.Context,
	userID int64,
	stockName string,
) (*domain.Position, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM portfolio WHERE user_id = $1 AND stock_name = $2 FOR UPDATE`,
		userID, stockName,
	)
	position, err := scanPosition(row)
	if err != nil {
		return nil, convertErr(err, "locking position %s for user %d", stockName, userID)
	}
	return position, nil
}

// GetByUserID returns positions most recently traded first.
func (p *PortfolioRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Position, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+positionColumns+` FROM portfolio WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting portfolio for user %d", userID)
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		position, scanErr := scanPosition(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning position for user %d", userID)
		}
		positions = append(positions, *position)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading portfolio for user %d", userID)
	}
	return positions, nil
}

// UpdateOnBuy writes the recomputed weighted-average position.
func (p *PortfolioRepository) UpdateOnBuy(ctx context.Context, args repoargs.UpdatePositionOnBuy) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE portfolio
		SET quantity = $1, average_price = $2, total_investment = $3, updated_at = $4
		WHERE user_id = $5 AND stock_name = $6`,
		args.Quantity, args.AveragePrice, args.TotalInvestment, time.Now(), args.UserID, args.StockName,
	)
	if err != nil {
		return convertErr(err, "updating position %s for user %d", args.StockName, args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating position %s for user %d", args.StockName, args.UserID)
	}
	return nil
}

// UpdateOnSell scales quantity and investment after a partial sale. The
// stored average price is untouched; the proportional scaling keeps it exact.
func (p *PortfolioRepository) UpdateOnSell(ctx context.Context, args repoargs.UpdatePositionOnSell) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE portfolio
		SET quantity = $1, total_investment = $2, updated_at = $3
		WHERE user_id = $4 AND stock_name = $5`,
		args.Quantity, args.TotalInvestment, time.Now(), args.UserID, args.StockName,
	)
	if err != nil {
		return convertErr(err, "updating position %s for user %d", args.StockName, args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating position %s for user %d", args.StockName, args.UserID)
	}
	return nil
}

// Delete removes a fully liquidated position.
func (p *PortfolioRepository) Delete(ctx context.Context, userID int64, stockName string) error {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM portfolio WHERE user_id = $1 AND stock_name = $2`,
		userID, stockName,
	)
	if err != nil {
		return convertErr(err, "deleting position %s for user %d", stockName, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting position %s for user %d", stockName, userID)
	}
	return nil
}

func scanPosition(row rowScanner) (*domain.Position, error) {
	var position domain.Position
	err := row.Scan(
		&position.ID,
		&position.CreatedAt,
		&position.UpdatedAt,
		&position.UserID,
		&position.StockName,
		&position.Quantity,
		&position.AveragePrice,
		&position.TotalInvestment,
	)
	if err != nil {
		return nil, err
	}
	return &position, nil
}
