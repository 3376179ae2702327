package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type cartStore interface {
	GetByCustomer(ctx context.Context, customerID int) (*models.Cart, error)
	GetOrCreate(ctx context.Context, customerID int) (*models.Cart, error)
	UpsertItemIncrement(ctx context.Context, cartID, productID int) (*models.CartItem, error)
	ListItems(ctx context.Context, cartID int) ([]models.CartItem, error)
	DeleteItemOwned(ctx context.Context, itemID, cartID int) error
}

type CartService struct {
	customers customerStore
	carts     cartStore
	products  productReader
}

func NewCartService() *CartService {
	return &CartService{
		customers: repositories.NewCustomerRepository(),
		carts:     repositories.NewCartRepository(),
		products:  repositories.NewProductRepository(),
	}
}

// View resolves the caller's cart and recomputes the total from the current
// lines. A customer who never added anything gets the explicit empty state,
// not an error.
func (s *CartService) View(ctx context.Context, userID int) (*models.CartView, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetByCustomer(ctx, customer.ID)
	if errors.Is(err, models.ErrNotFound) {
		return &models.CartView{Empty: true, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	return &models.CartView{
		Empty:      len(items) == 0,
		Items:      items,
		TotalPrice: models.CartTotal(items),
	}, nil
}

// AddItem creates the cart on first use, then inserts the line or bumps its
// quantity by one.
func (s *CartService) AddItem(ctx context.Context, userID, productID int) (*models.CartItem, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	item, err := s.carts.UpsertItemIncrement(ctx, cart.ID, productID)
	if err != nil {
		return nil, err
	}

	utils.CartItemsAddedTotal.Inc()
	return item, nil
}

// RemoveItem deletes the line only if it sits in the caller's own cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) error {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	cart, err := s.carts.GetByCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}

	return s.carts.DeleteItemOwned(ctx, itemID, cart.ID)
}
