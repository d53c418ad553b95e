package wizard

import "errors"

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrValidation      = errors.New("missing booking details")
	ErrWrongStep       = errors.New("action not allowed at this step")
	ErrSubmitting      = errors.New("payment already in progress")
	ErrPaymentFailed   = errors.New("payment failed")
	ErrCancelled       = errors.New("wizard session closed")
)
