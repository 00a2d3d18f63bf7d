package services

import (
	"fmt"
	"strings"

	"solar-storefront-backend/models"
)

// Static company, category, service and pricing reference text. This is
// content-managed copy compiled into the binary; the knowledge base builder
// emits it even when the product catalog is unreachable.

const (
	CompanyName  = "SolarBright Energy Philippines"
	CompanyPhone = "+63 2 8123 4567"
	CompanyEmail = "info@solarbright.ph"
)

const companyInfoContent = `Company: SolarBright Energy Philippines
Established: 2015
About: SolarBright Energy Philippines designs, supplies and installs solar energy systems across the country, from single-home kits to megawatt-hour storage for island microgrids.
Mission: Make reliable, affordable clean energy available to every Filipino home, business and community.
Services: Site assessment, system design, supply and installation, commissioning, and after-sales maintenance.
Product Categories: EV Charging Stations, Solar Street Lights, Smart Home Solar Systems, Energy Storage Cabinets`

const contactInfoContent = `Contact Information for SolarBright Energy Philippines
Address: Unit 12, GreenTech Industrial Park, Quezon City, Metro Manila
Phone: +63 2 8123 4567
Email: info@solarbright.ph
Business Hours: Monday to Saturday, 8:00 AM to 5:00 PM
Support: For warranty claims, returns, and technical support, reach our support team by phone or email and include your order number.
Warranty Policy: All products carry a minimum 2-year warranty; solar panels carry a 25-year performance warranty. Returns are accepted within 7 days for unopened items.`

const servicesOverviewContent = `Services Offered by SolarBright Energy Philippines
Site Assessment: Free ocular inspection and load profiling for projects within Metro Manila; scheduled visits for provincial sites.
System Design: Engineering design and simulation, including structural and electrical sign-off.
Installation: In-house installation teams for residential, commercial and utility projects.
Commissioning: Grid-interconnection assistance and net metering application support.
Maintenance: Preventive maintenance contracts, remote monitoring, and emergency repair dispatch.`

// categoryDescriptions holds the fixed copy for each catalog category.
var categoryDescriptions = map[models.Category]string{
	models.CategoryEVCharging: `Category: EV Charging Stations
Our EV charging line covers everything from 7kW home wallboxes to 120kW dual-gun DC fast chargers. All commercial units are OCPP compliant and support RFID and QR payments. We handle site electrical upgrades, installation and charge point management onboarding.`,

	models.CategorySolarStreet: `Category: Solar Street Lights
Off-grid solar street lighting for roads, subdivisions, parks and coastal areas. All-in-one models install without trenching or grid connection; split-type models serve highways and wide roads. LiFePO4 batteries are standard, rated for 3 rainy days of autonomy.`,

	models.CategorySmartHome: `Category: Smart Home Solar Systems
Residential solar packages: hybrid inverter kits with battery backup, retrofit home batteries, and app-based monitoring. Systems are sized from 3kW starter kits to 8kW whole-home installations, all net metering ready.`,

	models.CategoryCabinet: `Category: Energy Storage Cabinets
Battery energy storage from 30kWh indoor cabinets to 1MWh containerized systems. Applications include peak shaving, backup power, diesel displacement and island microgrids. All cabinets use LiFePO4 chemistry with integrated fire suppression.`,
}

// pricingChunk pairs a stable chunk id with its verbatim pricing table.
type pricingChunk struct {
	ID      string
	Content string
}

// pricingReference is static copy maintained by the sales team. The tables
// are rendered verbatim into knowledge chunks.
var pricingReference = []pricingChunk{
	{
		ID: "pricing-street-lights",
		Content: `Solar Street Light Pricing (per unit, pole included)
F2-030 All-in-One (30W, 6m pole): ₱13,500
F2-050 All-in-One (50W, 8m pole): ₱18,500
M2-100 Split-Type (100W, 10m pole): ₱34,000
M2-150 Split-Type (150W, 12m pole): ₱46,500
Volume discount: 5% for 50+ units, 10% for 200+ units. Installation quoted per site.`,
	},
	{
		ID: "pricing-storage-small",
		Content: `Energy Storage Pricing - Small Systems (10kWh to 100kWh)
ES-30 Commercial Cabinet (30kWh): ₱950,000
ES-100 Cabinet, half rack (50kWh): ₱1,650,000
ES-100 Cabinet, full rack (100kWh): ₱2,800,000
Prices include PCS, BMS and standard commissioning. Delivery outside Luzon quoted separately.`,
	},
	{
		ID: "pricing-storage-medium",
		Content: `Energy Storage Pricing - Medium Systems (100kWh to 500kWh)
ES-215 Liquid-Cooled Cabinet (215kWh): ₱5,200,000
ES-500 Cabinet Cluster (500kWh): ₱11,500,000
Medium systems include EMS integration and one year of remote monitoring.`,
	},
	{
		ID: "pricing-storage-large",
		Content: `Energy Storage Pricing - Large Systems (500kWh and above)
ES-500 Cabinet Cluster (500kWh): ₱11,500,000
ES-1000 Containerized System (1MWh): ₱21,000,000
Multi-container projects priced per megawatt-hour on request. Includes SCADA integration and site acceptance testing.`,
	},
	{
		ID: "pricing-ev-chargers",
		Content: `EV Charger Pricing
EVC-7 Home AC Charger (7kW): ₱65,000
EVC-120 DC Fast Charger (60kW): ₱980,000
EVC-120 DC Fast Charger (90kW): ₱1,200,000
EVC-120 DC Fast Charger (120kW): ₱1,450,000
Commercial installations include load study and utility coordination.`,
	},
	{
		ID: "pricing-terms",
		Content: `Pricing and Payment Terms
All prices are in Philippine pesos, VAT inclusive, and subject to change without notice.
Payment: 50% down payment on order confirmation, 40% on delivery, 10% on commissioning.
Financing: Installment terms available through partner banks for residential systems.
Quotations are valid for 30 days. Large projects are priced after site assessment.`,
	},
}

// PageInfo describes a storefront route for the "current page" context note.
type PageInfo struct {
	Name        string
	Description string
}

// pageRoutes maps exact storefront paths to their descriptions.
var pageRoutes = map[string]PageInfo{
	"/":         {Name: "Home", Description: "The storefront landing page with featured products and company highlights."},
	"/products": {Name: "Products", Description: "The full product catalog across all categories."},
	"/about":    {Name: "About Us", Description: "Company background, mission, and the SolarBright team."},
	"/contact":  {Name: "Contact", Description: "Contact details and the inquiry form for quotations and support."},
	"/services": {Name: "Services", Description: "Installation, maintenance and engineering services offered by SolarBright."},
	"/blog":     {Name: "Blog", Description: "Articles and news about solar energy and recent projects."},
	"/faq":      {Name: "FAQ", Description: "Frequently asked questions about products, installation and warranties."},
}

// ResolvePage resolves a storefront path to page info. Exact routes win;
// hierarchical route families are matched by prefix with the sub-segment
// interpolated into the description.
func ResolvePage(path string) (PageInfo, bool) {
	path = strings.TrimSuffix(strings.TrimSpace(path), "/")
	if path == "" {
		path = "/"
	}

	if info, ok := pageRoutes[path]; ok {
		return info, true
	}

	if seg, ok := strings.CutPrefix(path, "/sectors/"); ok && seg != "" {
		name := formatSegment(seg)
		return PageInfo{
			Name:        name + " Sector",
			Description: fmt.Sprintf("Solutions and case studies for the %s sector.", strings.ToLower(name)),
		}, true
	}

	if seg, ok := strings.CutPrefix(path, "/products/category/"); ok && seg != "" {
		name := formatSegment(seg)
		return PageInfo{
			Name:        name + " Products",
			Description: fmt.Sprintf("The product catalog filtered to the %s category.", strings.ToLower(name)),
		}, true
	}

	return PageInfo{}, false
}

func formatSegment(seg string) string {
	seg = strings.Trim(seg, "/")
	if i := strings.Index(seg, "/"); i >= 0 {
		seg = seg[:i]
	}
	words := strings.Split(strings.ReplaceAll(seg, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
