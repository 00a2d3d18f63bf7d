package catalog

import (
	"context"
	"errors"

	"solar-storefront-backend/models"
)

// ErrNotFound is returned when no product exists for the requested id.
var ErrNotFound = errors.New("product not found")

// Store is the read interface over the product catalog. Implementations must
// return normalized products: nil slice fields mapped to empty slices.
type Store interface {
	// GetProduct returns a single product by id, or ErrNotFound.
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// ListProducts returns the full catalog in stable order.
	ListProducts(ctx context.Context) ([]models.Product, error)
}
