package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not exist in the store
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when the catalog snapshot is absent or expired
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreUnavailable is returned when the product store cannot be reached
	ErrStoreUnavailable = errors.New("product store unavailable")
)
