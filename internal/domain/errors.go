package domain

import "errors"

var (
	// ErrProductNotFound is returned when a movement references an unknown product code.
	ErrProductNotFound = errors.New("product not found")
	// ErrNegativeStock is returned when a movement would drive stock below zero.
	ErrNegativeStock = errors.New("stock cannot become negative")
	// ErrQuantityOverflow is returned when a movement would exceed the largest representable quantity.
	ErrQuantityOverflow = errors.New("stock quantity overflow")
	// ErrInvalidDateFormat is returned when a due date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
