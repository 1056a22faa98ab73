package services

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

// ErrValidation is wrapped with a field-specific message; controllers match
// it with errors.Is and surface the message as a 400.
var ErrValidation = errors.New("validation error")
