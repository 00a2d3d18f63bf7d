package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-storefront-backend/internal/catalog"
)

func newTestResponder(t *testing.T) *ResponderService {
	t.Helper()
	return NewResponderService(catalog.NewMemoryStore(catalog.SampleCatalog))
}

func TestGenerateResponseGreeting(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "hi", "")
	assert.True(t, strings.HasPrefix(reply, "Hello"))
	assert.NotContains(t, reply, ContactRequiredSentinel)
}

func TestGenerateResponseContactHandoff(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "what is the meaning of life", "")
	assert.True(t, strings.HasPrefix(reply, ContactRequiredSentinel+":"))
}

func TestGenerateResponseContactInfo(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "how do I contact you", "")
	assert.Contains(t, reply, CompanyPhone)
	assert.Contains(t, reply, CompanyEmail)
}

func TestGenerateResponseSpecsWithActiveProduct(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "show me the specs", "solar-street-f2050")
	assert.Contains(t, reply, "F2-050")
	assert.Contains(t, reply, "LED Power: 50W")
	assert.Contains(t, reply, "Pole Height: 8m")
}

func TestGenerateResponseSpecsByFuzzyMatch(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "F2-050 All-in-One Solar Street Light specs", "")
	assert.Contains(t, reply, "LED Power: 50W")
}

func TestGenerateResponseSpacesForCabinet(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "where can I use this", "cabinet-16")
	assert.Contains(t, reply, "large resort complexes")
	assert.Contains(t, reply, "cluster of factories")
}

func TestGenerateResponseNeedsProductAsksForOne(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "show me the specs", "")
	assert.NotContains(t, reply, ContactRequiredSentinel)
	assert.Contains(t, reply, "Which product")
}

func TestGenerateResponseDisambiguatesMultipleMatches(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "solar street choices", "")
	assert.Contains(t, reply, "Which one did you mean?")
	assert.Contains(t, reply, "F2-050")
	assert.Contains(t, reply, "M2-100")
}

func TestGenerateResponseWarranty(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "what is your warranty policy", "")
	assert.Contains(t, reply, "2-year warranty")
}

func TestGenerateResponsePricingWithProduct(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "how much is it", "ev-charging-12")
	assert.Contains(t, reply, "EVC-7 Home AC Charger")
	assert.Contains(t, reply, "₱65,000")
}

func TestGenerateResponseCategoryBrowse(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "what EV chargers do you have", "")
	assert.Contains(t, reply, "EVC-120 DC Fast Charging Station")
	assert.Contains(t, reply, "EVC-7 Home AC Charger")
}

func TestCanAnswerAgreesWithGenerator(t *testing.T) {
	svc := newTestResponder(t)

	queries := []string{
		"hi",
		"what is your warranty policy",
		"show me the specs",
		"what is the meaning of life",
		"F2-050 All-in-One Solar Street Light specs",
		"random gibberish zzz",
	}
	productIDs := []string{"", "cabinet-16", "no-such-id"}

	for _, q := range queries {
		for _, productID := range productIDs {
			canAnswer := svc.CanAnswer(context.Background(), q, productID)
			reply := svc.GenerateResponse(context.Background(), q, productID)
			handedOff := strings.HasPrefix(reply, ContactRequiredSentinel)
			assert.Equal(t, canAnswer, !handedOff, "query: %q product: %q", q, productID)
		}
	}
}

func TestGenerateResponseUnknownIntentWithActiveProduct(t *testing.T) {
	svc := newTestResponder(t)

	reply := svc.GenerateResponse(context.Background(), "what is the meaning of life", "cabinet-16")
	assert.NotContains(t, reply, ContactRequiredSentinel)
	assert.Contains(t, reply, "ES-500")
}

func TestCanAnswerWithActiveProduct(t *testing.T) {
	svc := newTestResponder(t)

	require.True(t, svc.CanAnswer(context.Background(), "where can I use this", "cabinet-16"))
}

func TestMatchProductsSubstring(t *testing.T) {
	svc := newTestResponder(t)

	matches := svc.matchProducts(context.Background(), "is the evc-7 home ac charger available")
	require.Len(t, matches, 1)
	assert.Equal(t, "ev-charging-12", matches[0].ID)
}

func TestMatchProductsNoMatch(t *testing.T) {
	svc := newTestResponder(t)

	assert.Empty(t, svc.matchProducts(context.Background(), "completely unrelated query zzz"))
}
