package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Address string `json:"address"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  CustomerProfile `json:"user"`
}

type OrderSummary struct {
	Order      Order   `json:"order"`
	TotalPrice float64 `json:"total_price"`
}
