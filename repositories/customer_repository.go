package repositories

import (
	"context"
	"errors"
	"time"

	"storefront/config"
	"storefront/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUserWithCustomer inserts the user row and its paired customer row in
// one transaction. Registration never leaves a user without a profile.
func (r *CustomerRepository) CreateUserWithCustomer(ctx context.Context, user *models.User) (*models.Customer, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4) RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.Role, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// A concurrent registration can slip past the pre-insert email check;
		// the unique violation is still a duplicate email to the caller.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, models.ErrValidationFailed
		}
		return nil, err
	}

	customer := &models.Customer{UserID: user.ID, Address: ""}
	err = tx.QueryRow(ctx,
		`INSERT INTO customers (user_id, address, created_at)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		customer.UserID, customer.Address, now,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) GetByUserID(ctx context.Context, userID int) (*models.Customer, error) {
	query := `SELECT id, user_id, address, created_at FROM customers WHERE user_id = $1`

	var c models.Customer
	err := config.DB.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.Address, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetProfile(ctx context.Context, userID int) (*models.CustomerProfile, error) {
	query := `SELECT c.id, c.user_id, u.email, u.role, c.address
	          FROM customers c JOIN users u ON u.id = c.user_id WHERE c.user_id = $1`

	var p models.CustomerProfile
	err := config.DB.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Email, &p.Role, &p.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CustomerRepository) UpdateAddress(ctx context.Context, userID int, address string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE customers SET address = $1 WHERE user_id = $2`, address, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProfileMissing
	}
	return nil
}
