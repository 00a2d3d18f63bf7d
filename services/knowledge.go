package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/internal/telemetry"
	"solar-storefront-backend/models"
	"solar-storefront-backend/utils"
)

const snapshotCacheKey = "kb:snapshot"

// Snapshot is one immutable build of the knowledge base. Chunks are in
// builder order; SnapshotID identifies the build for logging and responses.
type Snapshot struct {
	SnapshotID string                  `json:"snapshot_id"`
	BuiltAt    time.Time               `json:"built_at"`
	Chunks     []models.KnowledgeChunk `json:"chunks"`
}

// cachedSnapshot is the Redis wire form: the chunk list serialized to JSON
// and compressed, with the algorithm recorded alongside.
type cachedSnapshot struct {
	SnapshotID string                     `json:"snapshot_id"`
	BuiltAt    time.Time                  `json:"built_at"`
	Algorithm  utils.CompressionAlgorithm `json:"algorithm"`
	Payload    string                     `json:"payload"`
}

// KnowledgeService builds knowledge base snapshots from the product catalog
// plus the static reference text, with a two-tier cache: an in-process copy
// guarded by TTL, backed by a compressed Redis entry shared across replicas.
// A nil Redis client disables the shared tier.
type KnowledgeService struct {
	store   catalog.Store
	rdb     *redis.Client
	ttl     time.Duration
	metrics *telemetry.Metrics

	mu      sync.RWMutex
	cached  *Snapshot
	expires time.Time
}

func NewKnowledgeService(store catalog.Store, rdb *redis.Client, ttl time.Duration, metrics *telemetry.Metrics) *KnowledgeService {
	return &KnowledgeService{
		store:   store,
		rdb:     rdb,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Build assembles a fresh chunk list. Static chunks are always emitted;
// product chunks are omitted when the catalog is unreachable, so the
// knowledge base degrades rather than failing.
func (s *KnowledgeService) Build(ctx context.Context) *Snapshot {
	start := time.Now()
	chunks := make([]models.KnowledgeChunk, 0, 64)

	chunks = append(chunks,
		models.KnowledgeChunk{
			ID:      "company-info",
			Type:    models.ChunkTypeCompany,
			Content: companyInfoContent,
		},
		models.KnowledgeChunk{
			ID:      contactChunkID,
			Type:    models.ChunkTypeCompany,
			Content: contactInfoContent,
		},
	)

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		logger.Warn("knowledge base build: catalog unavailable, emitting static chunks only", "error", err)
		products = nil
	}

	for _, p := range products {
		chunks = append(chunks, models.KnowledgeChunk{
			ID:      "product-" + p.ID,
			Type:    models.ChunkTypeProduct,
			Content: productChunkContent(p),
			Metadata: models.ChunkMetadata{
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Tags:        productTags(p),
			},
		})

		if spaces := ApplicableSpaces(p); len(spaces) > 0 {
			chunks = append(chunks, models.KnowledgeChunk{
				ID:      "product-" + p.ID + "-spaces",
				Type:    models.ChunkTypeProduct,
				Content: spacesChunkContent(p, spaces),
				Metadata: models.ChunkMetadata{
					ProductID:   p.ID,
					ProductName: p.Name,
					Category:    p.Category,
				},
			})
		}
	}

	for _, category := range models.Categories() {
		chunks = append(chunks, models.KnowledgeChunk{
			ID:      "category-" + string(category),
			Type:    models.ChunkTypeCategory,
			Content: categoryDescriptions[category],
			Metadata: models.ChunkMetadata{
				Category: category,
			},
		})
	}

	chunks = append(chunks, models.KnowledgeChunk{
		ID:      "services-overview",
		Type:    models.ChunkTypeService,
		Content: servicesOverviewContent,
	})

	for _, pc := range pricingReference {
		chunks = append(chunks, models.KnowledgeChunk{
			ID:      pc.ID,
			Type:    models.ChunkTypeService,
			Content: pc.Content,
		})
	}

	if s.metrics != nil {
		s.metrics.RecordKBBuild(time.Since(start).Seconds(), len(chunks))
	}

	return &Snapshot{
		SnapshotID: uuid.NewString(),
		BuiltAt:    time.Now().UTC(),
		Chunks:     chunks,
	}
}

// Snapshot returns the current knowledge base, building it if the cached
// copy is missing or stale. Cache lookups go memory first, then Redis.
func (s *KnowledgeService) Snapshot(ctx context.Context) *Snapshot {
	s.mu.RLock()
	if s.cached != nil && time.Now().Before(s.expires) {
		snap := s.cached
		s.mu.RUnlock()
		if s.metrics != nil {
			s.metrics.RecordSnapshotCacheHit("memory")
		}
		return snap
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock; another request may have refreshed.
	if s.cached != nil && time.Now().Before(s.expires) {
		if s.metrics != nil {
			s.metrics.RecordSnapshotCacheHit("memory")
		}
		return s.cached
	}

	if snap := s.loadFromRedis(ctx); snap != nil {
		s.cached = snap
		s.expires = time.Now().Add(s.ttl)
		if s.metrics != nil {
			s.metrics.RecordSnapshotCacheHit("redis")
		}
		return snap
	}

	snap := s.Build(ctx)
	s.cached = snap
	s.expires = time.Now().Add(s.ttl)
	s.storeToRedis(ctx, snap)

	logger.Info("knowledge base rebuilt",
		"snapshot_id", snap.SnapshotID,
		"chunks", len(snap.Chunks))
	return snap
}

// Refresh forces a rebuild and replaces both cache tiers. Used by the
// scheduled rebuild worker and the admin endpoint.
func (s *KnowledgeService) Refresh(ctx context.Context) *Snapshot {
	snap := s.Build(ctx)

	s.mu.Lock()
	s.cached = snap
	s.expires = time.Now().Add(s.ttl)
	s.mu.Unlock()

	s.storeToRedis(ctx, snap)
	logger.Info("knowledge base refreshed",
		"snapshot_id", snap.SnapshotID,
		"chunks", len(snap.Chunks))
	return snap
}

// Invalidate drops both cache tiers; the next Snapshot call rebuilds.
func (s *KnowledgeService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.cached = nil
	s.expires = time.Time{}
	s.mu.Unlock()

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, snapshotCacheKey).Err(); err != nil {
			logger.Warn("failed to drop knowledge base snapshot from redis", "error", err)
		}
	}
}

// Stats summarizes the current snapshot for the admin API.
func (s *KnowledgeService) Stats(ctx context.Context) map[string]interface{} {
	snap := s.Snapshot(ctx)

	byType := map[models.ChunkType]int{}
	for _, c := range snap.Chunks {
		byType[c.Type]++
	}

	return map[string]interface{}{
		"snapshot_id":  snap.SnapshotID,
		"built_at":     snap.BuiltAt,
		"total_chunks": len(snap.Chunks),
		"company":      byType[models.ChunkTypeCompany],
		"product":      byType[models.ChunkTypeProduct],
		"category":     byType[models.ChunkTypeCategory],
		"service":      byType[models.ChunkTypeService],
	}
}

func (s *KnowledgeService) loadFromRedis(ctx context.Context) *Snapshot {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("redis snapshot read failed", "error", err)
		}
		return nil
	}

	var cached cachedSnapshot
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.Warn("redis snapshot is corrupt, rebuilding", "error", err)
		return nil
	}

	payload, err := base64.StdEncoding.DecodeString(cached.Payload)
	if err != nil {
		logger.Warn("redis snapshot payload is corrupt, rebuilding", "error", err)
		return nil
	}

	text, err := utils.DecompressText(payload, cached.Algorithm)
	if err != nil {
		logger.Warn("redis snapshot decompression failed, rebuilding", "error", err)
		return nil
	}

	var chunks []models.KnowledgeChunk
	if err := json.Unmarshal([]byte(text), &chunks); err != nil {
		logger.Warn("redis snapshot chunk list is corrupt, rebuilding", "error", err)
		return nil
	}

	return &Snapshot{
		SnapshotID: cached.SnapshotID,
		BuiltAt:    cached.BuiltAt,
		Chunks:     chunks,
	}
}

func (s *KnowledgeService) storeToRedis(ctx context.Context, snap *Snapshot) {
	if s.rdb == nil {
		return
	}

	chunkJSON, err := json.Marshal(snap.Chunks)
	if err != nil {
		logger.Warn("failed to serialize snapshot for redis", "error", err)
		return
	}

	compressed, algorithm, err := utils.CompressText(string(chunkJSON))
	if err != nil {
		logger.Warn("failed to compress snapshot for redis", "error", err)
		return
	}

	raw, err := json.Marshal(cachedSnapshot{
		SnapshotID: snap.SnapshotID,
		BuiltAt:    snap.BuiltAt,
		Algorithm:  algorithm,
		Payload:    base64.StdEncoding.EncodeToString(compressed),
	})
	if err != nil {
		logger.Warn("failed to serialize snapshot envelope for redis", "error", err)
		return
	}

	if err := s.rdb.Set(ctx, snapshotCacheKey, raw, s.ttl).Err(); err != nil {
		logger.Warn("failed to store snapshot in redis", "error", err)
	}
}

// productChunkContent denormalizes one product into a single retrievable
// text blob of "Label: value" lines.
func productChunkContent(p models.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Product: %s\n", p.Name)
	if p.Subtitle != "" {
		fmt.Fprintf(&b, "Subtitle: %s\n", p.Subtitle)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	if p.Price != "" {
		fmt.Fprintf(&b, "Price: %s\n", p.Price)
	}
	if p.Tag != "" {
		fmt.Fprintf(&b, "Tag: %s\n", p.Tag)
	}
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	if p.DetailedDescription != "" {
		fmt.Fprintf(&b, "Details: %s\n", p.DetailedDescription)
	}

	if len(p.Specifications) > 0 {
		b.WriteString("Specifications:\n")
		for _, spec := range p.Specifications {
			fmt.Fprintf(&b, "%s: %s\n", spec.Label, spec.Value)
		}
	}

	if len(p.Features) > 0 {
		fmt.Fprintf(&b, "Features: %s\n", strings.Join(p.Features, ", "))
	}

	if len(p.Variations) > 0 {
		b.WriteString("Variations:\n")
		for _, v := range p.Variations {
			if v.Description != "" {
				fmt.Fprintf(&b, "%s: %s (%s)\n", v.Name, v.Value, v.Description)
			} else {
				fmt.Fprintf(&b, "%s: %s\n", v.Name, v.Value)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func spacesChunkContent(p models.Product, spaces []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Applicable Spaces and Use Cases for %s:\n", p.Name)
	for _, space := range spaces {
		fmt.Fprintf(&b, "- %s\n", space)
	}
	return strings.TrimRight(b.String(), "\n")
}

func productTags(p models.Product) []string {
	if p.Tag == "" {
		return nil
	}
	return []string{p.Tag}
}
