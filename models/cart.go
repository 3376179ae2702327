package models

import "time"

type Cart struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// CartItem is one (cart, product) line. The database enforces uniqueness on
// (cart_id, product_id); repeat adds increment quantity instead of inserting.
type CartItem struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cart_id"`
	ProductID int       `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is quantity times the current product price. Zero when the
// product has not been joined in.
func (i CartItem) Subtotal() float64 {
	if i.Product == nil {
		return 0
	}
	return float64(i.Quantity) * i.Product.Price
}

type CartView struct {
	Empty      bool       `json:"empty"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

// CartTotal recomputes the cart total from scratch on every call; totals are
// never cached.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
