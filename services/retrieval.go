package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"solar-storefront-backend/models"
)

// Scoring weights for lexical retrieval. These are hand-tuned: the contact
// boost in particular is a special case that keeps "how do I reach you"
// style questions anchored to the contact chunk, and product name matches
// outweigh generic content matches so product questions stay on the right
// product. Tune with care, tests pin the relative ordering.
const (
	contactIntentBoost = 20
	exactQueryBoost    = 10
	productNameBoost   = 5
	categoryBoost      = 3
	wordMatchScore     = 2
)

// contactChunkID is the id of the dedicated contact-info chunk emitted by
// the knowledge base builder.
const contactChunkID = "contact-info"

var contactIntentPattern = regexp.MustCompile(`contact|phone|email|address|reach|support|return|warranty|policy|help|get in touch`)

// NormalizeQuery lowercases and trims a query and splits it into usable
// words. Edge punctuation is stripped from each word (interior characters
// like the hyphen in a model number survive) and words of length <= 2 are
// discarded as stop-noise.
func NormalizeQuery(query string) (normalized string, words []string) {
	normalized = strings.ToLower(strings.TrimSpace(query))
	for _, w := range strings.Fields(normalized) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return normalized, words
}

type scoredChunk struct {
	chunk models.KnowledgeChunk
	score int
	index int
}

// SearchChunks ranks chunks against a free-text query and returns the top k
// by keyword overlap. Ties keep builder order so results are deterministic.
// If the query yields no usable words the first k chunks are returned
// unscored. The input slice is not mutated.
func SearchChunks(query string, chunks []models.KnowledgeChunk, k int) []models.KnowledgeChunk {
	if k <= 0 || len(chunks) == 0 {
		return nil
	}

	normalized, words := NormalizeQuery(query)
	if len(words) == 0 {
		if k > len(chunks) {
			k = len(chunks)
		}
		out := make([]models.KnowledgeChunk, k)
		copy(out, chunks[:k])
		return out
	}

	isContactIntent := contactIntentPattern.MatchString(normalized)

	scored := make([]scoredChunk, 0, len(chunks))
	for i, chunk := range chunks {
		content := strings.ToLower(chunk.Content)
		score := 0

		if isContactIntent && chunk.ID == contactChunkID {
			score += contactIntentBoost
		}

		if strings.Contains(content, normalized) {
			score += exactQueryBoost
		}

		productName := strings.ToLower(chunk.Metadata.ProductName)
		for _, w := range words {
			if strings.Contains(content, w) {
				score += wordMatchScore
			}
			if productName != "" && strings.Contains(productName, w) {
				score += productNameBoost
			}
		}

		category := strings.ToLower(string(chunk.Metadata.Category))
		if category != "" && (strings.Contains(normalized, category) || strings.Contains(category, normalized)) {
			score += categoryBoost
		}

		scored = append(scored, scoredChunk{chunk: chunk, score: score, index: i})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	if k > len(scored) {
		k = len(scored)
	}
	out := make([]models.KnowledgeChunk, 0, k)
	for _, sc := range scored[:k] {
		out = append(out, sc.chunk)
	}
	return out
}
