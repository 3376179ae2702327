package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

// OrderService covers order history for customers and the admin surface
// (listing, status transitions).
type OrderService struct {
	customers customerStore
	orders    orderStore
}

func NewOrderService() *OrderService {
	return &OrderService{
		customers: repositories.NewCustomerRepository(),
		orders:    repositories.NewOrderRepository(),
	}
}

func (s *OrderService) ListMine(ctx context.Context, userID int) ([]models.Order, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByCustomer(ctx, customer.ID)
}

func (s *OrderService) ListAll(ctx context.Context, status string, page, limit int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit
	return s.orders.ListAll(ctx, status, limit, offset)
}

// UpdateStatus applies a status change only when the transition table allows
// it. Free-form strings are rejected before the order is even read.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, next models.OrderStatus) (*models.Order, error) {
	if !next.IsValid() {
		return nil, models.ErrInvalidTransition
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, models.ErrInvalidTransition
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}
