package models

import "errors"

// Sentinel errors for the failure taxonomy. Controllers map these to HTTP
// status codes and machine-readable error codes; services return them as-is.
var (
	ErrNotAuthenticated  = errors.New("authentication required")
	ErrProfileMissing    = errors.New("customer profile does not exist")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

const (
	CodeNotAuthenticated  = "NOT_AUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeProfileMissing    = "PROFILE_MISSING"
	CodeEmptyCart         = "EMPTY_CART"
	CodeNotFound          = "NOT_FOUND"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInternal          = "INTERNAL"
)
