package services

import (
	"regexp"
	"strings"

	"solar-storefront-backend/models"
)

// Intent is a classified category of customer request. Both the response
// generator and the can-answer predicate consume the same classification so
// the two never disagree about what is answerable.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentCompanyInfo
	IntentContact
	IntentCategoryBrowse
	IntentPricing
	IntentSpecs
	IntentFeatures
	IntentOverview
	IntentSpaces
	IntentReviews
	IntentRelated
	IntentWarranty
	IntentInstall
	IntentServices
)

type intentPattern struct {
	intent  Intent
	pattern *regexp.Regexp
}

// intentPatterns is tested in order; the first match wins. More specific
// intents must come before broader ones (warranty before contact, specs
// before overview).
var intentPatterns = []intentPattern{
	{IntentGreeting, regexp.MustCompile(`^(hi|hello|hey|good\s+(morning|afternoon|evening)|kumusta|magandang\s+(umaga|hapon|gabi))\b`)},
	{IntentWarranty, regexp.MustCompile(`warrant(y|ies)|guarantee|return\s+policy|refund`)},
	{IntentInstall, regexp.MustCompile(`install(ation|ed|ing)?\b|setup|set\s+up|mount(ing)?`)},
	{IntentServices, regexp.MustCompile(`\bservices?\b|maintenance|site\s+assessment|commissioning|net\s+metering`)},
	{IntentContact, regexp.MustCompile(`contact|phone|email|address|get\s+in\s+touch|reach\s+(you|them|someone)|talk\s+to\s+(a\s+)?(human|person|agent|someone)|customer\s+support`)},
	{IntentCompanyInfo, regexp.MustCompile(`about\s+(your|the)\s+company|who\s+are\s+you|company\s+(background|profile|info)|solarbright`)},
	{IntentPricing, regexp.MustCompile(`\bpric(e|es|ing)\b|\bcost\b|how\s+much|magkano|quotation|quote`)},
	{IntentSpecs, regexp.MustCompile(`spec(s|ification|ifications)?\b|technical\s+detail|dimensions|capacity|wattage|voltage`)},
	{IntentFeatures, regexp.MustCompile(`\bfeatures?\b|what\s+can\s+(it|this)\s+do|capabilit`)},
	{IntentSpaces, regexp.MustCompile(`where\s+can\s+(i|we|you)\s+use|use\s+cases?|applicable|suitable\s+for|good\s+for|applications?\b`)},
	{IntentReviews, regexp.MustCompile(`reviews?|ratings?|testimonial|feedback\s+from`)},
	{IntentRelated, regexp.MustCompile(`related\s+products?|similar\s+products?|alternatives?|other\s+(options|models|products)|compare`)},
	{IntentCategoryBrowse, regexp.MustCompile(`what\s+(products|items)\s+do\s+you\s+(have|sell|offer)|show\s+me|browse|catalog|product\s+line(up)?|(ev\s+)?chargers?\b|street\s*lights?\b|storage\s+(cabinets?|systems?)\b|solar\s+(panels?|systems?|kits?)\b`)},
	{IntentOverview, regexp.MustCompile(`what\s+is\s+(this|it)\b|tell\s+me\s+(more\s+)?about\s+(this|it)\b|overview|describe\s+(this|it)\b`)},
}

// ClassifyIntent normalizes the query and returns the first matching intent.
// An empty query is treated as a greeting.
func ClassifyIntent(query string) Intent {
	normalized, _ := NormalizeQuery(query)
	if normalized == "" {
		return IntentGreeting
	}

	for _, ip := range intentPatterns {
		if ip.pattern.MatchString(normalized) {
			return ip.intent
		}
	}
	return IntentUnknown
}

// NeedsProduct reports whether an intent is about a specific product and so
// requires an active or fuzzily matched product to answer.
func (i Intent) NeedsProduct() bool {
	switch i {
	case IntentSpecs, IntentFeatures, IntentOverview, IntentSpaces, IntentReviews, IntentRelated:
		return true
	}
	return false
}

// categoryKeywords maps query vocabulary to catalog categories for the
// category-browse intent.
var categoryKeywords = []struct {
	keyword  string
	category models.Category
}{
	{"ev", models.CategoryEVCharging},
	{"charger", models.CategoryEVCharging},
	{"charging", models.CategoryEVCharging},
	{"street light", models.CategorySolarStreet},
	{"streetlight", models.CategorySolarStreet},
	{"street", models.CategorySolarStreet},
	{"lamp", models.CategorySolarStreet},
	{"home", models.CategorySmartHome},
	{"house", models.CategorySmartHome},
	{"residential", models.CategorySmartHome},
	{"rooftop", models.CategorySmartHome},
	{"cabinet", models.CategoryCabinet},
	{"storage", models.CategoryCabinet},
	{"battery", models.CategoryCabinet},
	{"bess", models.CategoryCabinet},
	{"container", models.CategoryCabinet},
}

// detectCategory picks the catalog category a query is asking about, if any.
func detectCategory(query string) (models.Category, bool) {
	normalized := strings.ToLower(query)
	for _, ck := range categoryKeywords {
		if strings.Contains(normalized, ck.keyword) {
			return ck.category, true
		}
	}
	return "", false
}
