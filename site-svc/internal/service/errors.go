package service

import "errors"

var (
	ErrItemNotFound       = errors.New("menu item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderInProgress    = errors.New("an order has already been placed, start a new order first")
	ErrOrderNotResettable = errors.New("order is still in progress")
	ErrOrderNotFound      = errors.New("order not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidField       = errors.New("invalid field value")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
