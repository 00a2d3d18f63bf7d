package models

// Category is the fixed set of catalog categories.
type Category string

const (
	CategoryEVCharging  Category = "ev-charging"
	CategorySolarStreet Category = "solar-street"
	CategorySmartHome   Category = "smart-home"
	CategoryCabinet     Category = "cabinet"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryEVCharging, CategorySolarStreet, CategorySmartHome, CategoryCabinet}
}

// IsValid reports whether c is one of the enumerated categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEVCharging, CategorySolarStreet, CategorySmartHome, CategoryCabinet:
		return true
	}
	return false
}

// Specification is a single "label: value" technical detail line.
// Order matters for display (e.g. "first 5 specs").
type Specification struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
}

// Variation is a configurable SKU layered onto one base product,
// e.g. a capacity option of a storage cabinet.
type Variation struct {
	Name           string          `json:"name" bson:"name"`
	Value          string          `json:"value" bson:"value"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	Image          string          `json:"image,omitempty" bson:"image,omitempty"`
	Price          string          `json:"price,omitempty" bson:"price,omitempty"`
	Specifications []Specification `json:"specifications,omitempty" bson:"specifications,omitempty"`
}

// Product is a catalog entry. Products are read-only from this service's
// perspective; the content-management process owns writes.
type Product struct {
	ID                  string          `json:"id" bson:"_id"`
	Name                string          `json:"name" bson:"name"`
	Subtitle            string          `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Category            Category        `json:"category" bson:"category"`
	Tag                 string          `json:"tag,omitempty" bson:"tag,omitempty"`
	Image               string          `json:"image,omitempty" bson:"image,omitempty"`
	Images              []string        `json:"images" bson:"images"`
	Price               string          `json:"price,omitempty" bson:"price,omitempty"`
	Description         string          `json:"description,omitempty" bson:"description,omitempty"`
	DetailedDescription string          `json:"detailed_description,omitempty" bson:"detailed_description,omitempty"`
	Variations          []Variation     `json:"variations" bson:"variations"`
	Specifications      []Specification `json:"specifications" bson:"specifications"`
	Features            []string        `json:"features" bson:"features"`
}

// Normalize maps nil slice fields to empty slices so downstream consumers
// never see null arrays.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Variations == nil {
		p.Variations = []Variation{}
	}
	if p.Specifications == nil {
		p.Specifications = []Specification{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	for i := range p.Variations {
		if p.Variations[i].Specifications == nil {
			p.Variations[i].Specifications = []Specification{}
		}
	}
}
