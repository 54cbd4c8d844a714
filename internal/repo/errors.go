package repo

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no product with the requested ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrCatalogUnavailable is returned when the catalog could not be reached or answered with a
	// server error. The caller may retry.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	ErrOrderNotFound = errors.New("order not found")
	ErrCartNotFound  = errors.New("cart not found")
)
