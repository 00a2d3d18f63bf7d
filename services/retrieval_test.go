package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/models"
)

func sampleChunks() []models.KnowledgeChunk {
	return []models.KnowledgeChunk{
		{
			ID:      "company-info",
			Type:    models.ChunkTypeCompany,
			Content: "Company: SolarBright Energy Philippines\nEstablished: 2015",
		},
		{
			ID:      "contact-info",
			Type:    models.ChunkTypeCompany,
			Content: "Phone: +63 2 8123 4567\nEmail: info@solarbright.ph",
		},
		{
			ID:      "product-solar-street-f2050",
			Type:    models.ChunkTypeProduct,
			Content: "Product: F2-050 All-in-One Solar Street Light\nLED Power: 50W\nPole Height: 8m",
			Metadata: models.ChunkMetadata{
				ProductID:   "solar-street-f2050",
				ProductName: "F2-050 All-in-One Solar Street Light",
				Category:    models.CategorySolarStreet,
			},
		},
		{
			ID:      "category-ev-charging",
			Type:    models.ChunkTypeCategory,
			Content: "Category: EV Charging Stations\nChargers from 7kW to 120kW.",
			Metadata: models.ChunkMetadata{
				Category: models.CategoryEVCharging,
			},
		},
		{
			ID:      "services-overview",
			Type:    models.ChunkTypeService,
			Content: "Services: site assessment, installation, maintenance.",
		},
	}
}

func TestSearchChunksDeterministic(t *testing.T) {
	chunks := sampleChunks()

	first := SearchChunks("solar street light", chunks, 3)
	for i := 0; i < 10; i++ {
		again := SearchChunks("solar street light", chunks, 3)
		assert.Equal(t, first, again)
	}
}

func TestSearchChunksTopKBound(t *testing.T) {
	chunks := sampleChunks()

	for k := 0; k <= len(chunks)+3; k++ {
		got := SearchChunks("solar light", chunks, k)
		want := k
		if want > len(chunks) {
			want = len(chunks)
		}
		assert.Len(t, got, want, "k=%d", k)
	}
}

func TestSearchChunksEmptyInputs(t *testing.T) {
	assert.Empty(t, SearchChunks("anything", nil, 5))
	assert.Empty(t, SearchChunks("anything", []models.KnowledgeChunk{}, 5))
}

func TestSearchChunksUnusableQueryReturnsFirstK(t *testing.T) {
	chunks := sampleChunks()

	got := SearchChunks("!! a b", chunks, 2)
	require.Len(t, got, 2)
	assert.Equal(t, chunks[0].ID, got[0].ID)
	assert.Equal(t, chunks[1].ID, got[1].ID)

	got = SearchChunks("   ", chunks, 100)
	assert.Len(t, got, len(chunks))
}

func TestSearchChunksFullQuerySubstringRanksFirst(t *testing.T) {
	chunks := sampleChunks()

	got := SearchChunks("pole height", chunks, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "product-solar-street-f2050", got[0].ID)
}

func TestSearchChunksContactIntentBoost(t *testing.T) {
	chunks := sampleChunks()

	got := SearchChunks("what is your phone number", chunks, len(chunks))
	require.NotEmpty(t, got)
	assert.Equal(t, "contact-info", got[0].ID)
}

func TestSearchChunksProductNameOutweighsContent(t *testing.T) {
	chunks := []models.KnowledgeChunk{
		{
			ID:      "a",
			Content: "mentions f2-050 once in passing",
		},
		{
			ID:      "b",
			Content: "unrelated text",
			Metadata: models.ChunkMetadata{
				ProductName: "F2-050 All-in-One Solar Street Light",
			},
		},
	}

	got := SearchChunks("f2-050 light", chunks, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}

func TestSearchChunksStableTieBreak(t *testing.T) {
	chunks := []models.KnowledgeChunk{
		{ID: "first", Content: "solar power"},
		{ID: "second", Content: "solar power"},
		{ID: "third", Content: "solar power"},
	}

	got := SearchChunks("solar", chunks, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSearchChunksDoesNotMutateInput(t *testing.T) {
	chunks := sampleChunks()
	original := make([]models.KnowledgeChunk, len(chunks))
	copy(original, chunks)

	SearchChunks("solar street light phone", chunks, 2)
	assert.Equal(t, original, chunks)
}

func TestNormalizeQueryDropsShortWordsAndPunctuation(t *testing.T) {
	normalized, words := NormalizeQuery("  Is an EV OK to buy? charger  ")
	assert.Equal(t, "is an ev ok to buy? charger", normalized)
	assert.Equal(t, []string{"buy", "charger"}, words)

	_, words = NormalizeQuery("F2-050!")
	assert.Equal(t, []string{"f2-050"}, words)
}

func TestSearchChunksPunctuatedQuery(t *testing.T) {
	chunks := sampleChunks()

	got := SearchChunks("pole height?", chunks, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "product-solar-street-f2050", got[0].ID)
}
