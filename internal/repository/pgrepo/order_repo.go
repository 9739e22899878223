package pgrepo

import (
	"context"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/repository/repoargs"
	"github.com/bhupeshkr/sebi-trading/pkg/uow"
)

const orderColumns = `id, created_at, executed_at, user_id, stock_name, order_type, quantity, price, total_amount, status`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateExecuted inserts an order that is already executed; there is no
// pending or cancel path.
func (o *OrderRepository) CreateExecuted(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, stock_name, order_type, quantity, price, total_amount, status, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING `+orderColumns,
		args.UserID, args.StockName, args.OrderType, args.Quantity,
		args.Price, args.TotalAmount, domain.OrderStatusExecuted,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating %s order for user %d", args.OrderType, args.UserID)
	}
	return order, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.ExecutedAt,
		&order.UserID,
		&order.StockName,
		&order.OrderType,
		&order.Quantity,
		&order.Price,
		&order.TotalAmount,
		&order.Status,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
