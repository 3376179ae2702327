package repositories

import (
	"context"
	"errors"
	"fmt"

	"storefront/config"
	"storefront/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateFromCart creates a Pending order whose total is derived from the
// cart's current lines inside a single transaction, so the stored total and
// the items it was computed from cannot diverge. Returns ErrEmptyCart when
// the cart has no lines by the time the transaction reads them.
func (r *OrderRepository) CreateFromCart(ctx context.Context, customerID, cartID int) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var order models.Order
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, customer_id, cart_id, status, total_amount, created_at, updated_at)
		 SELECT $1, $2, $3, $4, SUM(ci.quantity * p.price), NOW(), NOW()
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $3
		 HAVING COUNT(*) > 0
		 RETURNING id, order_number, customer_id, cart_id, status, total_amount, created_at, updated_at`,
		uuid.NewString(), customerID, cartID, models.OrderStatusPending,
	).Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.CartID,
		&order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, order_number, customer_id, cart_id, status, total_amount, created_at, updated_at
	          FROM orders WHERE id = $1`

	var order models.Order
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.CartID,
		&order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int) ([]models.Order, error) {
	query := `SELECT id, order_number, customer_id, cart_id, status, total_amount, created_at, updated_at
	          FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *OrderRepository) ListAll(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM orders`
	listQuery := `SELECT id, order_number, customer_id, cart_id, status, total_amount, created_at, updated_at
	              FROM orders`

	args := []interface{}{}
	if status != "" && status != "All" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.CustomerID, &order.CartID,
			&order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
