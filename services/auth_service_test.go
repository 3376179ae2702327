package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/models"
	"storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestRegister_CreatesPairedCustomerWithEmptyAddress(t *testing.T) {
	setTestConfig(t)
	customers := newFakeCustomerStore()
	svc := &AuthService{customers: customers}

	result, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "new@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Equal(t, "customer", result.User.Role)
	assert.Equal(t, "", result.User.Address)

	require.Len(t, customers.customers, 1)
	customer, err := customers.GetByUserID(context.Background(), result.User.UserID)
	require.NoError(t, err)
	assert.Equal(t, "", customer.Address)
}

func TestRegister_DuplicateEmailIsGenericValidationFailure(t *testing.T) {
	setTestConfig(t)
	customers := newFakeCustomerStore()
	customers.addCustomer("taken@example.com")
	svc := &AuthService{customers: customers}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, models.ErrValidationFailed)
	assert.Len(t, customers.customers, 1, "no second customer created")
}

// racingCustomerStore simulates a concurrent registration landing between
// the email pre-check and the insert: the lookup misses, the insert hits the
// unique constraint.
type racingCustomerStore struct {
	*fakeCustomerStore
}

func (r *racingCustomerStore) FindUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, models.ErrNotFound
}

func (r *racingCustomerStore) CreateUserWithCustomer(_ context.Context, _ *models.User) (*models.Customer, error) {
	return nil, models.ErrValidationFailed
}

func TestRegister_ConcurrentDuplicateSurfacesAsValidationFailure(t *testing.T) {
	setTestConfig(t)
	svc := &AuthService{customers: &racingCustomerStore{newFakeCustomerStore()}}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "raced@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, models.ErrValidationFailed)
}

func TestLogin_WrongPasswordIsGenericFailure(t *testing.T) {
	setTestConfig(t)
	customers := newFakeCustomerStore()
	svc := &AuthService{customers: customers}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "c@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "c@example.com",
		Password: "battery-staple",
	})
	assert.ErrorIs(t, err, models.ErrValidationFailed)
}

func TestLogin_RoundTrip(t *testing.T) {
	setTestConfig(t)
	customers := newFakeCustomerStore()
	svc := &AuthService{customers: customers}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "c@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "c@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "c@example.com", claims.Email)
}

type fakeRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (f *fakeRevocationStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeRevocationStore) IsRevoked(_ context.Context, jti string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti]
}

func TestLogout_RevokesTokenID(t *testing.T) {
	setTestConfig(t)
	store := &fakeRevocationStore{revoked: map[string]bool{}}
	prev := utils.Revocations
	utils.Revocations = store
	t.Cleanup(func() { utils.Revocations = prev })

	customers := newFakeCustomerStore()
	svc := &AuthService{customers: customers}

	result, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "c@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.False(t, utils.Revocations.IsRevoked(context.Background(), claims.ID))

	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.True(t, utils.Revocations.IsRevoked(context.Background(), claims.ID))
}
