package ticket

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("booking belongs to another user")
	ErrBadDimensions   = errors.New("invalid ticket dimensions")
)
