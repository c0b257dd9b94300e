package errors

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrValidation              = errors.New("validation failed")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAlreadyDelivered        = errors.New("order is already delivered")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidCredentials      = errors.New("invalid credentials")
)
