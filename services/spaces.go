package services

import "solar-storefront-backend/models"

// Applicable-spaces lookup. The mapping is keyed by product id first, then
// falls back to the product's category, so specialized storage models keep
// their tailored lists while the rest of a category shares one. The rule
// responder and the knowledge base builder both read this table.

var productSpaces = map[string][]string{
	"cabinet-14": {
		"Off-grid supply for small islands",
		"LGU facilities and municipal offices",
		"Farms and agricultural processing sites",
	},
	"cabinet-15": {
		"Off-grid supply for small islands",
		"LGU facilities and municipal offices",
		"Farms and agricultural processing sites",
	},
	"cabinet-16": {
		"Microgrid supply for an island barangay",
		"Powering large resort complexes",
		"Shared supply for a cluster of factories",
	},
	"cabinet-item4": {
		"Backup power for a single business",
		"School campuses and computer laboratories",
		"Boutique resorts and dive shops",
		"Telecom tower sites",
	},
	"container-con1": {
		"Remote mining and construction camps",
		"Off-grid industrial parks",
		"Utility-scale peak shaving and diesel displacement",
	},
}

var categorySpaces = map[models.Category][]string{
	models.CategoryEVCharging: {
		"Shopping mall and supermarket parking",
		"Office building and condominium garages",
		"Fleet depots and logistics hubs",
		"Gasoline station forecourts",
		"Residential garages",
	},
	models.CategorySmartHome: {
		"Single-family homes and townhouses",
		"Homes in areas with frequent brownouts",
		"Off-grid rest houses and farms",
		"Net metering participants reducing monthly bills",
	},
	models.CategorySolarStreet: {
		"National and barangay roads",
		"Subdivision streets and perimeter lighting",
		"Parks, plazas and waterfront promenades",
		"Coastal areas without grid access",
	},
	models.CategoryCabinet: {
		"Industrial complexes with high demand charges",
		"Commercial buildings needing backup power",
		"Solar farms smoothing output",
	},
}

// ApplicableSpaces returns the fixed use-case list for a product, or nil
// when no list applies.
func ApplicableSpaces(p models.Product) []string {
	if spaces, ok := productSpaces[p.ID]; ok {
		return spaces
	}
	if spaces, ok := categorySpaces[p.Category]; ok {
		return spaces
	}
	return nil
}
