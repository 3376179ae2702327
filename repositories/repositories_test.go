package repositories

import (
	"context"
	"os"
	"testing"

	"storefront/config"
	"storefront/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests. They need a migrated Postgres reachable via TEST_DATABASE_URL
// and are skipped otherwise.
func openTestPool(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Integration test - set TEST_DATABASE_URL to run")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	config.DB = pool
}

func seedCustomer(t *testing.T, ctx context.Context, email string) int {
	t.Helper()

	var userID int
	err := config.DB.QueryRow(ctx,
		`INSERT INTO users (email, password, role) VALUES ($1, 'x', 'customer') RETURNING id`,
		email).Scan(&userID)
	require.NoError(t, err)

	var customerID int
	err = config.DB.QueryRow(ctx,
		`INSERT INTO customers (user_id, address) VALUES ($1, '') RETURNING id`,
		userID).Scan(&customerID)
	require.NoError(t, err)
	return customerID
}

func seedProduct(t *testing.T, ctx context.Context, name string, price float64) int {
	t.Helper()

	var id int
	err := config.DB.QueryRow(ctx,
		`INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id`,
		name, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestCreateUserWithCustomer_DuplicateEmailIsValidationFailure(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	repo := NewCustomerRepository()

	first := &models.User{Email: "dup@example.com", Password: "x", Role: "customer"}
	_, err := repo.CreateUserWithCustomer(ctx, first)
	require.NoError(t, err)

	// Same email again, as a racing registration would insert it.
	second := &models.User{Email: "dup@example.com", Password: "y", Role: "customer"}
	_, err = repo.CreateUserWithCustomer(ctx, second)
	assert.ErrorIs(t, err, models.ErrValidationFailed)
}

func TestUpsertItemIncrement_NoDuplicateRows(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	customerID := seedCustomer(t, ctx, "upsert@example.com")
	productID := seedProduct(t, ctx, "Mug", 10.00)

	repo := NewCartRepository()
	cart, err := repo.GetOrCreate(ctx, customerID)
	require.NoError(t, err)

	first, err := repo.UpsertItemIncrement(ctx, cart.ID, productID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := repo.UpsertItemIncrement(ctx, cart.ID, productID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetOrCreate_ConvergesOnOneCart(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	customerID := seedCustomer(t, ctx, "converge@example.com")

	repo := NewCartRepository()
	a, err := repo.GetOrCreate(ctx, customerID)
	require.NoError(t, err)
	b, err := repo.GetOrCreate(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestDeleteItemOwned_ScopedToCart(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	victim := seedCustomer(t, ctx, "victim@example.com")
	attacker := seedCustomer(t, ctx, "attacker@example.com")
	productID := seedProduct(t, ctx, "Beans", 5.50)

	repo := NewCartRepository()
	victimCart, err := repo.GetOrCreate(ctx, victim)
	require.NoError(t, err)
	attackerCart, err := repo.GetOrCreate(ctx, attacker)
	require.NoError(t, err)

	item, err := repo.UpsertItemIncrement(ctx, victimCart.ID, productID)
	require.NoError(t, err)

	err = repo.DeleteItemOwned(ctx, item.ID, attackerCart.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	items, err := repo.ListItems(ctx, victimCart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateFromCart_EmptyCartCreatesNoOrder(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	customerID := seedCustomer(t, ctx, "emptyorder@example.com")

	carts := NewCartRepository()
	cart, err := carts.GetOrCreate(ctx, customerID)
	require.NoError(t, err)

	orders := NewOrderRepository()
	_, err = orders.CreateFromCart(ctx, customerID, cart.ID)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCreateFromCart_TotalMatchesItems(t *testing.T) {
	openTestPool(t)
	ctx := context.Background()

	customerID := seedCustomer(t, ctx, "order@example.com")
	mug := seedProduct(t, ctx, "Mug", 10.00)
	beans := seedProduct(t, ctx, "Beans", 5.50)

	carts := NewCartRepository()
	cart, err := carts.GetOrCreate(ctx, customerID)
	require.NoError(t, err)

	_, err = carts.UpsertItemIncrement(ctx, cart.ID, mug)
	require.NoError(t, err)
	_, err = carts.UpsertItemIncrement(ctx, cart.ID, beans)
	require.NoError(t, err)
	_, err = carts.UpsertItemIncrement(ctx, cart.ID, beans)
	require.NoError(t, err)

	orders := NewOrderRepository()
	order, err := orders.CreateFromCart(ctx, customerID, cart.ID)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 21.00, order.TotalAmount, 0.001)
}
