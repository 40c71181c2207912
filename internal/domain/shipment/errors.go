package shipment

import "errors"

var (
	ErrInvalidDirection = errors.New("invalid trade direction")
	ErrEmptySearchText  = errors.New("either a classification code or a product name is required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
