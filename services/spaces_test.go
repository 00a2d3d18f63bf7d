package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/models"
)

func TestApplicableSpacesByID(t *testing.T) {
	p := models.Product{ID: "cabinet-16", Category: models.CategoryCabinet}
	spaces := ApplicableSpaces(p)

	require.NotEmpty(t, spaces)
	joined := ""
	for _, s := range spaces {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "large resort complexes")
	assert.Contains(t, joined, "cluster of factories")
}

func TestApplicableSpacesSharedList(t *testing.T) {
	a := ApplicableSpaces(models.Product{ID: "cabinet-14", Category: models.CategoryCabinet})
	b := ApplicableSpaces(models.Product{ID: "cabinet-15", Category: models.CategoryCabinet})
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestApplicableSpacesCategoryFallback(t *testing.T) {
	p := models.Product{ID: "cabinet-999", Category: models.CategoryCabinet}
	spaces := ApplicableSpaces(p)

	require.NotEmpty(t, spaces)
	assert.NotEqual(t, productSpaces["cabinet-16"], spaces)
	assert.Equal(t, categorySpaces[models.CategoryCabinet], spaces)
}

func TestApplicableSpacesContainer(t *testing.T) {
	spaces := ApplicableSpaces(models.Product{ID: "container-con1", Category: models.CategoryCabinet})
	require.NotEmpty(t, spaces)
	assert.NotEqual(t, categorySpaces[models.CategoryCabinet], spaces)
}

func TestApplicableSpacesUnknownCategory(t *testing.T) {
	assert.Nil(t, ApplicableSpaces(models.Product{ID: "x", Category: "unknown"}))
}
