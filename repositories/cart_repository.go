package repositories

import (
	"context"
	"errors"

	"storefront/config"
	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// GetByCustomer returns the customer's cart or ErrNotFound when none has
// been created yet.
func (r *CartRepository) GetByCustomer(ctx context.Context, customerID int) (*models.Cart, error) {
	query := `SELECT id, customer_id, created_at FROM carts WHERE customer_id = $1`

	var cart models.Cart
	err := config.DB.QueryRow(ctx, query, customerID).Scan(&cart.ID, &cart.CustomerID, &cart.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreate resolves the customer's cart, creating it on first use. The
// insert is ON CONFLICT DO NOTHING against the customer_id uniqueness, so
// concurrent first adds converge on a single cart row.
func (r *CartRepository) GetOrCreate(ctx context.Context, customerID int) (*models.Cart, error) {
	_, err := config.DB.Exec(ctx,
		`INSERT INTO carts (customer_id, created_at) VALUES ($1, NOW())
		 ON CONFLICT (customer_id) DO NOTHING`, customerID)
	if err != nil {
		return nil, err
	}
	return r.GetByCustomer(ctx, customerID)
}

// UpsertItemIncrement adds the product to the cart, or bumps its quantity by
// one if the line already exists. Single statement, so concurrent adds on
// the same (cart, product) pair cannot lose updates.
func (r *CartRepository) UpsertItemIncrement(ctx context.Context, cartID, productID int) (*models.CartItem, error) {
	query := `INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
	          VALUES ($1, $2, 1, NOW(), NOW())
	          ON CONFLICT (cart_id, product_id)
	          DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = NOW()
	          RETURNING id, cart_id, product_id, quantity, created_at, updated_at`

	var item models.CartItem
	err := config.DB.QueryRow(ctx, query, cartID, productID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) ListItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	query := `SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
	                 p.id, p.name, p.description, p.price, COALESCE(p.image_url, ''), p.is_active, p.created_at, p.updated_at
	          FROM cart_items ci
	          JOIN products p ON p.id = ci.product_id
	          WHERE ci.cart_id = $1
	          ORDER BY ci.id`

	rows, err := config.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var p models.Product
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteItemOwned removes the item only when it belongs to the given cart.
// A foreign item id reads as not found, never as someone else's deletion.
func (r *CartRepository) DeleteItemOwned(ctx context.Context, itemID, cartID int) error {
	tag, err := config.DB.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
