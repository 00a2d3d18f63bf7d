package catalog

import (
	"context"

	"solar-storefront-backend/models"
)

// MemoryStore is an in-memory Store used in tests and local development.
type MemoryStore struct {
	products []models.Product
}

func NewMemoryStore(products []models.Product) *MemoryStore {
	copied := make([]models.Product, len(products))
	copy(copied, products)
	for i := range copied {
		copied[i].Normalize()
	}
	return &MemoryStore{products: copied}
}

func (s *MemoryStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	copied := make([]models.Product, len(s.products))
	copy(copied, s.products)
	return copied, nil
}
