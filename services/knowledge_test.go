package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/internal/telemetry"
	"solar-storefront-backend/models"
)

// failingStore simulates an unreachable product catalog.
type failingStore struct{}

func (failingStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return nil, errors.New("catalog unreachable")
}

func (failingStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return nil, errors.New("catalog unreachable")
}

func newTestKnowledge(t *testing.T) (*KnowledgeService, catalog.Store) {
	t.Helper()
	store := catalog.NewMemoryStore(catalog.SampleCatalog)
	return NewKnowledgeService(store, nil, time.Minute, nil), store
}

func TestBuildChunkOrderAndIDs(t *testing.T) {
	svc, _ := newTestKnowledge(t)
	snap := svc.Build(context.Background())

	require.NotEmpty(t, snap.Chunks)
	assert.Equal(t, "company-info", snap.Chunks[0].ID)
	assert.Equal(t, "contact-info", snap.Chunks[1].ID)

	ids := map[string]bool{}
	for _, c := range snap.Chunks {
		assert.False(t, ids[c.ID], "duplicate chunk id %s", c.ID)
		ids[c.ID] = true
	}

	for _, category := range models.Categories() {
		assert.True(t, ids["category-"+string(category)], "missing category chunk for %s", category)
	}
	assert.True(t, ids["services-overview"])
	assert.True(t, ids["pricing-terms"])
	assert.True(t, ids["product-ev-charging-89"])
	assert.True(t, ids["product-cabinet-16-spaces"])
}

func TestBuildProductChunkContent(t *testing.T) {
	svc, _ := newTestKnowledge(t)
	snap := svc.Build(context.Background())

	var f2050 *models.KnowledgeChunk
	for i := range snap.Chunks {
		if snap.Chunks[i].ID == "product-solar-street-f2050" {
			f2050 = &snap.Chunks[i]
			break
		}
	}
	require.NotNil(t, f2050)

	assert.Equal(t, models.ChunkTypeProduct, f2050.Type)
	assert.Equal(t, "solar-street-f2050", f2050.Metadata.ProductID)
	assert.Contains(t, f2050.Content, "Product: F2-050 All-in-One Solar Street Light")
	assert.Contains(t, f2050.Content, "50W")
	assert.Contains(t, f2050.Content, "8m")
	assert.Contains(t, f2050.Content, "Category: solar-street")
}

func TestBuildGracefulDegradation(t *testing.T) {
	svc := NewKnowledgeService(failingStore{}, nil, time.Minute, nil)
	snap := svc.Build(context.Background())

	// company + contact + 4 categories + services overview + pricing tables
	staticCount := 2 + len(models.Categories()) + 1 + len(pricingReference)
	assert.Len(t, snap.Chunks, staticCount)

	for _, c := range snap.Chunks {
		assert.NotEqual(t, models.ChunkTypeProduct, c.Type, "chunk %s should not be product-typed", c.ID)
	}
}

func TestBuildChunksAreSelfContained(t *testing.T) {
	svc, _ := newTestKnowledge(t)
	snap := svc.Build(context.Background())

	for _, c := range snap.Chunks {
		assert.NotEmpty(t, strings.TrimSpace(c.Content), "chunk %s has empty content", c.ID)
	}
}

func TestSnapshotCachesBetweenCalls(t *testing.T) {
	svc, _ := newTestKnowledge(t)

	first := svc.Snapshot(context.Background())
	second := svc.Snapshot(context.Background())
	assert.Equal(t, first.SnapshotID, second.SnapshotID)

	svc.Invalidate(context.Background())
	third := svc.Snapshot(context.Background())
	assert.NotEqual(t, first.SnapshotID, third.SnapshotID)
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	svc, _ := newTestKnowledge(t)

	first := svc.Snapshot(context.Background())
	refreshed := svc.Refresh(context.Background())
	assert.NotEqual(t, first.SnapshotID, refreshed.SnapshotID)

	current := svc.Snapshot(context.Background())
	assert.Equal(t, refreshed.SnapshotID, current.SnapshotID)
}

func TestSnapshotRecordsBuildAndCacheMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	metrics, err := telemetry.InitMetrics()
	require.NoError(t, err)

	store := catalog.NewMemoryStore(catalog.SampleCatalog)
	svc := NewKnowledgeService(store, nil, time.Minute, metrics)

	svc.Snapshot(context.Background()) // cold: records a build
	svc.Snapshot(context.Background()) // warm: records a memory cache hit

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["knowledge_base.build.duration"], "build duration not recorded")
	assert.True(t, names["knowledge_base.snapshot.cache_hits"], "cache hit not recorded")
}

func TestStatsCountsByType(t *testing.T) {
	svc, _ := newTestKnowledge(t)
	stats := svc.Stats(context.Background())

	assert.Equal(t, 2, stats["company"])
	assert.Equal(t, len(models.Categories()), stats["category"])
	assert.Equal(t, 1+len(pricingReference), stats["service"])
	assert.NotZero(t, stats["product"])
}
