package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"

	"go.uber.org/zap"
)

type orderStore interface {
	CreateFromCart(ctx context.Context, customerID, cartID int) (*models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]models.Order, error)
	ListAll(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error
}

type confirmationMailer interface {
	SendOrderConfirmation(toEmail string, order models.Order) error
}

type CheckoutService struct {
	customers customerStore
	carts     cartStore
	orders    orderStore
	mailer    confirmationMailer
}

func NewCheckoutService() *CheckoutService {
	svc := &CheckoutService{
		customers: repositories.NewCustomerRepository(),
		carts:     repositories.NewCartRepository(),
		orders:    repositories.NewOrderRepository(),
	}

	if mailer, err := models.NewEmailService(); err == nil {
		svc.mailer = mailer
	}

	return svc
}

// Checkout turns the caller's cart into a Pending order. The total is
// recomputed from the live cart lines inside the order insert's transaction.
// The cart itself is left untouched afterward.
func (s *CheckoutService) Checkout(ctx context.Context, userID int) (*models.OrderSummary, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		utils.CheckoutFailedTotal.WithLabelValues("profile_missing").Inc()
		return nil, err
	}

	cart, err := s.carts.GetByCustomer(ctx, customer.ID)
	if errors.Is(err, models.ErrNotFound) {
		utils.CheckoutFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, models.ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		utils.CheckoutFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, models.ErrEmptyCart
	}

	order, err := s.orders.CreateFromCart(ctx, customer.ID, cart.ID)
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			utils.CheckoutFailedTotal.WithLabelValues("empty_cart").Inc()
		}
		return nil, err
	}

	utils.OrdersCreatedTotal.Inc()

	s.sendConfirmation(ctx, userID, *order)

	return &models.OrderSummary{
		Order:      *order,
		TotalPrice: order.TotalAmount,
	}, nil
}

// sendConfirmation is best effort; a mail failure never fails the checkout.
func (s *CheckoutService) sendConfirmation(ctx context.Context, userID int, order models.Order) {
	if s.mailer == nil {
		return
	}

	profile, err := s.customers.GetProfile(ctx, userID)
	if err != nil {
		return
	}

	go func() {
		if err := s.mailer.SendOrderConfirmation(profile.Email, order); err != nil {
			utils.GetLogger().Warn("Order confirmation email failed",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err),
			)
		}
	}()
}
