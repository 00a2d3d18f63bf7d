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

// ContactRequiredSentinel prefixes responses the responder cannot answer.
// The caller swaps these for a contact-us affordance instead of showing the
// text verbatim.
const ContactRequiredSentinel = "__CONTACT_REQUIRED__"

const fuzzyMatchThreshold = 0.5

// ResponderService answers a fixed set of intents directly from catalog and
// static data, without retrieval scoring or an LLM.
type ResponderService struct {
	store catalog.Store
}

func NewResponderService(store catalog.Store) *ResponderService {
	return &ResponderService{store: store}
}

// CanAnswer reports whether GenerateResponse would produce a direct answer
// for this query rather than a contact handoff. It runs the same intent
// classification and product matching as the generator.
func (s *ResponderService) CanAnswer(ctx context.Context, query, activeProductID string) bool {
	if ClassifyIntent(query) != IntentUnknown {
		return true
	}
	if activeProductID != "" {
		if _, err := s.store.GetProduct(ctx, activeProductID); err == nil {
			return true
		}
	}
	return len(s.matchProducts(ctx, query)) > 0
}

// GenerateResponse answers a query with canned prose. When the reply cannot
// be produced the result is prefixed with ContactRequiredSentinel.
func (s *ResponderService) GenerateResponse(ctx context.Context, query, activeProductID string) string {
	intent := ClassifyIntent(query)

	var active *models.Product
	if activeProductID != "" {
		p, err := s.store.GetProduct(ctx, activeProductID)
		if err == nil {
			active = p
		} else if !errors.Is(err, catalog.ErrNotFound) {
			logger.Warn("responder product lookup failed", "product_id", activeProductID, "error", err)
		}
	}

	if intent == IntentUnknown {
		// An active product still grounds an otherwise unanswerable query,
		// matching the CanAnswer predicate's view of it.
		if active != nil {
			return s.productOverview(*active)
		}
		matches := s.matchProducts(ctx, query)
		switch len(matches) {
		case 0:
			return ContactRequiredSentinel + ": I'm not able to answer that directly. Please reach our team at " +
				CompanyPhone + " or " + CompanyEmail + " and we'll be happy to help."
		case 1:
			return s.productOverview(matches[0])
		default:
			return s.disambiguate(matches)
		}
	}

	if intent.NeedsProduct() && active == nil {
		matches := s.matchProducts(ctx, query)
		switch len(matches) {
		case 0:
			return "Which product are you asking about? You can open a product page or tell me its name, and I'll pull up the details."
		case 1:
			active = &matches[0]
		default:
			return s.disambiguate(matches)
		}
	}

	switch intent {
	case IntentGreeting:
		return "Hello! Welcome to " + CompanyName + ". I can help you with our EV chargers, solar street lights, home solar systems and energy storage. What are you looking for today?"

	case IntentCompanyInfo:
		return CompanyName + " has been designing, supplying and installing solar energy systems across the Philippines since 2015, from single-home kits to megawatt-hour storage for island microgrids. We handle site assessment, system design, installation, commissioning and after-sales maintenance."

	case IntentContact:
		return "You can reach " + CompanyName + " at " + CompanyPhone + " or " + CompanyEmail +
			". Our office is at Unit 12, GreenTech Industrial Park, Quezon City, open Monday to Saturday, 8:00 AM to 5:00 PM."

	case IntentCategoryBrowse:
		return s.categoryBrowse(ctx, query)

	case IntentPricing:
		return s.pricingAnswer(active)

	case IntentSpecs:
		return s.specsAnswer(*active)

	case IntentFeatures:
		return s.featuresAnswer(*active)

	case IntentOverview:
		return s.productOverview(*active)

	case IntentSpaces:
		return s.spacesAnswer(*active)

	case IntentReviews:
		return fmt.Sprintf("We're still collecting customer reviews for %s. In the meantime, our team can share reference projects and case studies - just ask, or reach us at %s.", active.Name, CompanyEmail)

	case IntentRelated:
		return s.relatedAnswer(ctx, *active)

	case IntentWarranty:
		return "All our products carry a minimum 2-year warranty, and solar panels carry a 25-year performance warranty. Returns are accepted within 7 days for unopened items. For warranty claims, contact our support team at " + CompanyPhone + " with your order number."

	case IntentInstall:
		return "Yes, we install everything we sell. Our in-house teams handle residential, commercial and utility projects, including site assessment, electrical work, commissioning and net metering applications. Installation is quoted per site after a free assessment."

	case IntentServices:
		return "We offer site assessment, system design, supply and installation, commissioning with net metering support, and preventive maintenance contracts with remote monitoring. Site assessments are free within Metro Manila."
	}

	return ContactRequiredSentinel + ": I'm not able to answer that directly. Please reach our team at " +
		CompanyPhone + " or " + CompanyEmail + "."
}

func (s *ResponderService) categoryBrowse(ctx context.Context, query string) string {
	category, ok := detectCategory(query)
	if !ok {
		return "We carry four product lines: EV charging stations, solar street lights, smart home solar systems, and energy storage cabinets. Which one would you like to explore?"
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		logger.Warn("responder catalog listing failed", "error", err)
		return "You can browse our full catalog on the Products page. Which category interests you: EV chargers, street lights, home solar, or energy storage?"
	}

	var names []string
	for _, p := range products {
		if p.Category == category {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return "We don't have products listed in that category right now. Our team can suggest alternatives - reach us at " + CompanyEmail + "."
	}

	return fmt.Sprintf("In that category we carry: %s. Open any product page for full details, or ask me about a specific model.", strings.Join(names, ", "))
}

func (s *ResponderService) pricingAnswer(active *models.Product) string {
	if active != nil && active.Price != "" {
		return fmt.Sprintf("%s is priced at %s. Prices are VAT inclusive; volume and project pricing is available after a site assessment. For a formal quotation, reach us at %s.", active.Name, active.Price, CompanyEmail)
	}
	return "Pricing depends on the model and site conditions. Our published reference prices cover street lights, storage systems and EV chargers; large projects are priced after a free site assessment. For a formal quotation, contact us at " + CompanyPhone + " or " + CompanyEmail + "."
}

func (s *ResponderService) specsAnswer(p models.Product) string {
	if len(p.Specifications) == 0 {
		return fmt.Sprintf("Detailed specifications for %s are available from our engineering team - reach us at %s and we'll send the datasheet.", p.Name, CompanyEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Key specifications for %s:\n", p.Name)
	for _, spec := range p.Specifications {
		fmt.Fprintf(&b, "- %s: %s\n", spec.Label, spec.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ResponderService) featuresAnswer(p models.Product) string {
	if len(p.Features) == 0 {
		return fmt.Sprintf("%s - %s. For the full feature rundown, our team can walk you through a demo: %s.", p.Name, p.Description, CompanyEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s features:\n", p.Name)
	for _, f := range p.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ResponderService) productOverview(p models.Product) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Subtitle != "" {
		b.WriteString(" - " + p.Subtitle)
	}
	if p.Description != "" {
		b.WriteString(". " + p.Description)
	}
	if p.Price != "" {
		fmt.Fprintf(&b, " Priced at %s.", p.Price)
	}
	b.WriteString(" Ask me about its specifications, features, or where it can be used.")
	return b.String()
}

func (s *ResponderService) spacesAnswer(p models.Product) string {
	spaces := ApplicableSpaces(p)
	if len(spaces) == 0 {
		return fmt.Sprintf("%s is a versatile unit; our team can advise whether it fits your site. Reach us at %s for a free assessment.", p.Name, CompanyEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is well suited for:\n", p.Name)
	for _, space := range spaces {
		fmt.Fprintf(&b, "- %s\n", space)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ResponderService) relatedAnswer(ctx context.Context, p models.Product) string {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		logger.Warn("responder catalog listing failed", "error", err)
		return "You can find related models on the category page. Our team can also recommend alternatives at " + CompanyEmail + "."
	}

	var names []string
	for _, candidate := range products {
		if candidate.Category == p.Category && candidate.ID != p.ID {
			names = append(names, candidate.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("%s is currently the only model in its category. Our team can source alternatives on request - reach us at %s.", p.Name, CompanyEmail)
	}

	return fmt.Sprintf("Products related to %s: %s.", p.Name, strings.Join(names, ", "))
}

func (s *ResponderService) disambiguate(matches []models.Product) string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("I found a few products that could match: %s. Which one did you mean?", strings.Join(names, ", "))
}

// matchProducts fuzzily matches a query against the catalog in three tiers
// of decreasing precision: name substring containment, then word-overlap
// ratio, then a Jaccard similarity threshold. A stronger tier producing any
// match suppresses the weaker ones, so an exact model-name mention never
// drags in lookalikes.
func (s *ResponderService) matchProducts(ctx context.Context, query string) []models.Product {
	normalized, queryWords := NormalizeQuery(query)
	if len(queryWords) == 0 {
		return nil
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		logger.Warn("responder catalog listing failed", "error", err)
		return nil
	}

	var substring, overlapTier, jaccardTier []models.Product
	for _, p := range products {
		haystack := strings.ToLower(strings.Join([]string{p.Name, p.Subtitle, p.Tag, string(p.Category)}, " "))
		name := strings.ToLower(p.Name)

		if strings.Contains(normalized, name) || strings.Contains(name, normalized) {
			substring = append(substring, p)
			continue
		}

		haystackWords := map[string]bool{}
		for _, w := range strings.Fields(haystack) {
			if len(w) > 2 {
				haystackWords[w] = true
			}
		}

		overlap := 0
		for _, w := range queryWords {
			if haystackWords[w] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		if float64(overlap)/float64(len(queryWords)) >= fuzzyMatchThreshold {
			overlapTier = append(overlapTier, p)
			continue
		}

		union := len(haystackWords)
		for _, w := range queryWords {
			if !haystackWords[w] {
				union++
			}
		}
		if union > 0 && float64(overlap)/float64(union) >= fuzzyMatchThreshold {
			jaccardTier = append(jaccardTier, p)
		}
	}

	if len(substring) > 0 {
		return substring
	}
	if len(overlapTier) > 0 {
		return overlapTier
	}
	return jaccardTier
}
