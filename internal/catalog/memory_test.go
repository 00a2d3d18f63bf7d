package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/models"
)

func TestMemoryStoreGetProduct(t *testing.T) {
	store := NewMemoryStore(SampleCatalog)

	p, err := store.GetProduct(context.Background(), "solar-street-f2050")
	require.NoError(t, err)
	assert.Equal(t, "F2-050 All-in-One Solar Street Light", p.Name)
	assert.Equal(t, models.CategorySolarStreet, p.Category)
}

func TestMemoryStoreGetProductNotFound(t *testing.T) {
	store := NewMemoryStore(SampleCatalog)

	_, err := store.GetProduct(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListProducts(t *testing.T) {
	store := NewMemoryStore(SampleCatalog)

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, len(SampleCatalog))
}

func TestMemoryStoreNormalizesProducts(t *testing.T) {
	store := NewMemoryStore([]models.Product{
		{ID: "bare", Name: "Bare Product", Category: models.CategoryCabinet},
	})

	p, err := store.GetProduct(context.Background(), "bare")
	require.NoError(t, err)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Variations)
	assert.NotNil(t, p.Specifications)
	assert.NotNil(t, p.Features)
}

func TestSampleCatalogIsValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range SampleCatalog {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Category.IsValid(), "invalid category on %s", p.ID)
		assert.NotEmpty(t, p.Name)
	}
}
