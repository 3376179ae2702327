package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Customer extends an authenticated user with commerce fields. Exactly one
// customer row exists per user, created at registration.
type Customer struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerProfile struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Address string `json:"address"`
}
