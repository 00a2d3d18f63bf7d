package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/internal/logger"
	"solar-storefront-backend/models"
)

// contextSeparator joins the pieces of an assembled context string so a
// consumer can split them back apart.
var contextSeparator = "\n" + strings.Repeat("-", 40) + "\n"

// ContextResult is the assembled context handed to a downstream consumer.
type ContextResult struct {
	Context    string
	ChunkCount int
	SnapshotID string
}

// ContextService combines lexical retrieval with situational grounding: the
// product the user is viewing, or the storefront page they are on.
type ContextService struct {
	knowledge *KnowledgeService
	store     catalog.Store
	maxChunks int
}

func NewContextService(knowledge *KnowledgeService, store catalog.Store, maxChunks int) *ContextService {
	if maxChunks <= 0 {
		maxChunks = 5
	}
	return &ContextService{
		knowledge: knowledge,
		store:     store,
		maxChunks: maxChunks,
	}
}

// GetRelevantContext is the public retrieval entry point. An active product
// id pins that product's chunks into the result; a current page path adds a
// synthesized page note; otherwise plain retrieval over the full chunk list.
// An unknown product id falls through to the page or plain path.
func (s *ContextService) GetRelevantContext(ctx context.Context, query, activeProductID, currentPage string, maxChunks int) ContextResult {
	if maxChunks <= 0 {
		maxChunks = s.maxChunks
	}

	snap := s.knowledge.Snapshot(ctx)

	if activeProductID != "" {
		product, err := s.store.GetProduct(ctx, activeProductID)
		if err == nil {
			return s.productContext(query, product, snap, maxChunks)
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			logger.Warn("active product lookup failed", "product_id", activeProductID, "error", err)
		}
	}

	if currentPage != "" {
		if page, ok := ResolvePage(currentPage); ok {
			return s.pageContext(query, page, snap, maxChunks)
		}
	}

	chunks := SearchChunks(query, snap.Chunks, maxChunks)
	return ContextResult{
		Context:    joinChunks(nil, chunks),
		ChunkCount: len(chunks),
		SnapshotID: snap.SnapshotID,
	}
}

// productContext guarantees inclusion of the active product's own chunks,
// then fills the remaining budget by scoring the rest of the knowledge base.
func (s *ContextService) productContext(query string, product *models.Product, snap *Snapshot, maxChunks int) ContextResult {
	note := fmt.Sprintf(
		"The customer is currently viewing the product %q. When they say \"this product\", \"this page\" or similar, they mean %s.",
		product.Name, product.Name)

	guaranteed := make([]models.KnowledgeChunk, 0, 2)
	remaining := make([]models.KnowledgeChunk, 0, len(snap.Chunks))
	for _, chunk := range snap.Chunks {
		if chunk.Metadata.ProductID == product.ID {
			guaranteed = append(guaranteed, chunk)
		} else {
			remaining = append(remaining, chunk)
		}
	}

	budget := maxChunks - len(guaranteed) - 1
	var retrieved []models.KnowledgeChunk
	if budget > 0 {
		retrieved = SearchChunks(query, remaining, budget)
	}

	chunks := append(guaranteed, retrieved...)
	return ContextResult{
		Context:    joinChunks([]string{note}, chunks),
		ChunkCount: len(chunks),
		SnapshotID: snap.SnapshotID,
	}
}

func (s *ContextService) pageContext(query string, page PageInfo, snap *Snapshot, maxChunks int) ContextResult {
	note := fmt.Sprintf("The customer is currently on the %s page. %s", page.Name, page.Description)

	budget := maxChunks - 1
	var retrieved []models.KnowledgeChunk
	if budget > 0 {
		retrieved = SearchChunks(query, snap.Chunks, budget)
	}

	return ContextResult{
		Context:    joinChunks([]string{note}, retrieved),
		ChunkCount: len(retrieved),
		SnapshotID: snap.SnapshotID,
	}
}

func joinChunks(notes []string, chunks []models.KnowledgeChunk) string {
	parts := make([]string, 0, len(notes)+len(chunks))
	parts = append(parts, notes...)
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, contextSeparator)
}
