package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/internal/catalog"
)

func newTestContextService(t *testing.T) *ContextService {
	t.Helper()
	store := catalog.NewMemoryStore(catalog.SampleCatalog)
	knowledge := NewKnowledgeService(store, nil, time.Minute, nil)
	return NewContextService(knowledge, store, 5)
}

func TestGetRelevantContextGuaranteedInclusion(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "hello", "ev-charging-89", "", 5)

	assert.Contains(t, result.Context, "EVC-120 DC Fast Charging Station")
	assert.Contains(t, result.Context, "Max Output Power: 120kW")
	assert.Contains(t, result.Context, "they mean EVC-120 DC Fast Charging Station")
}

func TestGetRelevantContextCabinetSpaces(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "where can I use this", "cabinet-16", "", 5)

	assert.Contains(t, result.Context, "large resort complexes")
	assert.Contains(t, result.Context, "cluster of factories")
}

func TestGetRelevantContextF2050Specs(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "F2-050 specifications", "", "", 5)

	assert.Contains(t, result.Context, "F2-050 All-in-One Solar Street Light")
	assert.Contains(t, result.Context, "50W")
	assert.Contains(t, result.Context, "8m")
}

func TestGetRelevantContextUnknownProductFallsThrough(t *testing.T) {
	svc := newTestContextService(t)

	withUnknown := svc.GetRelevantContext(context.Background(), "solar street light", "no-such-product", "", 5)
	plain := svc.GetRelevantContext(context.Background(), "solar street light", "", "", 5)

	assert.Equal(t, plain.Context, withUnknown.Context)
	assert.NotContains(t, withUnknown.Context, "currently viewing")
}

func TestGetRelevantContextPageNote(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "what do you offer", "", "/services", 5)

	assert.True(t, strings.HasPrefix(result.Context, "The customer is currently on the Services page."))
	// note consumes one slot of the budget
	assert.LessOrEqual(t, result.ChunkCount, 4)
}

func TestGetRelevantContextSectorPrefixRoute(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "lighting options", "", "/sectors/local-government", 5)
	assert.Contains(t, result.Context, "Local Government Sector")
}

func TestGetRelevantContextSeparator(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "solar", "", "", 3)
	require.Equal(t, 3, result.ChunkCount)

	parts := strings.Split(result.Context, contextSeparator)
	assert.Len(t, parts, 3)
}

func TestGetRelevantContextBudget(t *testing.T) {
	svc := newTestContextService(t)

	result := svc.GetRelevantContext(context.Background(), "solar street light specs", "cabinet-16", "", 5)

	// product chunk + spaces chunk guaranteed, budget leaves 5-2-1 retrieved
	parts := strings.Split(result.Context, contextSeparator)
	assert.LessOrEqual(t, len(parts), 6)
	assert.Equal(t, 4, result.ChunkCount)
}

func TestResolvePage(t *testing.T) {
	info, ok := ResolvePage("/contact")
	require.True(t, ok)
	assert.Equal(t, "Contact", info.Name)

	info, ok = ResolvePage("/products/category/solar-street")
	require.True(t, ok)
	assert.Equal(t, "Solar Street Products", info.Name)

	_, ok = ResolvePage("/no-such-page")
	assert.False(t, ok)
}
