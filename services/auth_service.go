package services

import (
	"context"
	"errors"
	"time"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type customerStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUserWithCustomer(ctx context.Context, user *models.User) (*models.Customer, error)
	GetByUserID(ctx context.Context, userID int) (*models.Customer, error)
	GetProfile(ctx context.Context, userID int) (*models.CustomerProfile, error)
	UpdateAddress(ctx context.Context, userID int, address string) error
}

type AuthService struct {
	customers customerStore
}

func NewAuthService() *AuthService {
	return &AuthService{
		customers: repositories.NewCustomerRepository(),
	}
}

// Register creates the account and its paired customer profile with an empty
// address, then mints a session token. Duplicate emails surface as the same
// generic validation failure as any other bad input.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.customers.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrValidationFailed
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     "customer",
	}

	if _, err := s.customers.CreateUserWithCustomer(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	utils.RegistrationsTotal.Inc()

	return &models.LoginResponse{
		Token: token,
		User: models.CustomerProfile{
			UserID:  user.ID,
			Email:   user.Email,
			Role:    user.Role,
			Address: "",
		},
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.customers.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, models.ErrValidationFailed
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, models.ErrValidationFailed
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	profile, err := s.customers.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *profile}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *utils.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	return utils.Revocations.Revoke(ctx, claims.ID, ttl)
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.CustomerProfile, error) {
	return s.customers.GetProfile(ctx, userID)
}

func (s *AuthService) UpdateAddress(ctx context.Context, userID int, address string) error {
	return s.customers.UpdateAddress(ctx, userID, address)
}
