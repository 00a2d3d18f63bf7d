package catalog

import "solar-storefront-backend/models"

// SampleCatalog is the reference product set used for seeding a fresh
// database and for tests. Ordering is stable: EV chargers, street lights,
// smart home, storage cabinets.
var SampleCatalog = []models.Product{
	{
		ID:       "ev-charging-89",
		Name:     "EVC-120 DC Fast Charging Station",
		Subtitle: "Commercial-grade DC fast charger for public and fleet sites",
		Category: models.CategoryEVCharging,
		Tag:      "commercial",
		Image:    "/images/products/evc-120.jpg",
		Images:   []string{"/images/products/evc-120-side.jpg", "/images/products/evc-120-display.jpg"},
		Price:    "₱1,450,000",
		Description: "Dual-gun DC fast charging station supporting CCS2 and CHAdeMO " +
			"with dynamic power sharing across both connectors.",
		DetailedDescription: "The EVC-120 delivers up to 120kW of DC fast charging with " +
			"simultaneous dual-vehicle support. OCPP 1.6J compliant for integration with " +
			"existing charge point management systems, with a 7-inch touchscreen and " +
			"RFID/QR payment support.",
		Variations: []models.Variation{
			{Name: "Power Output", Value: "60kW", Description: "Single-gun configuration", Price: "₱980,000"},
			{Name: "Power Output", Value: "90kW", Description: "Dual-gun with power sharing", Price: "₱1,200,000"},
			{Name: "Power Output", Value: "120kW", Description: "Dual-gun simultaneous charging", Price: "₱1,450,000"},
		},
		Specifications: []models.Specification{
			{Label: "Max Output Power", Value: "120kW"},
			{Label: "Connectors", Value: "CCS2 x2, CHAdeMO optional"},
			{Label: "Input Voltage", Value: "380V AC 3-phase"},
			{Label: "Efficiency", Value: "≥95%"},
			{Label: "Protocol", Value: "OCPP 1.6J"},
			{Label: "IP Rating", Value: "IP54"},
			{Label: "Operating Temperature", Value: "-20°C to 55°C"},
		},
		Features: []string{
			"Dynamic power sharing between guns",
			"RFID and QR code payment",
			"Remote monitoring and OTA updates",
			"Emergency stop and over-temperature protection",
		},
	},
	{
		ID:       "ev-charging-12",
		Name:     "EVC-7 Home AC Charger",
		Subtitle: "7kW wallbox charger for residential garages",
		Category: models.CategoryEVCharging,
		Tag:      "residential",
		Image:    "/images/products/evc-7.jpg",
		Images:   []string{"/images/products/evc-7-installed.jpg"},
		Price:    "₱65,000",
		Description: "Compact Type 2 wallbox for overnight home charging with " +
			"app-based scheduling and load balancing.",
		Variations: []models.Variation{
			{Name: "Cable Length", Value: "5m"},
			{Name: "Cable Length", Value: "7.5m", Price: "₱69,500"},
		},
		Specifications: []models.Specification{
			{Label: "Max Output Power", Value: "7kW"},
			{Label: "Connector", Value: "Type 2"},
			{Label: "Input Voltage", Value: "230V AC single-phase"},
			{Label: "IP Rating", Value: "IP65"},
		},
		Features: []string{
			"Smartphone app with charging schedules",
			"Built-in residual current protection",
			"Indoor and outdoor installation",
		},
	},
	{
		ID:       "solar-street-f2050",
		Name:     "F2-050 All-in-One Solar Street Light",
		Subtitle: "Integrated solar street light for roads and subdivisions",
		Category: models.CategorySolarStreet,
		Tag:      "best-seller",
		Image:    "/images/products/f2-050.jpg",
		Images:   []string{"/images/products/f2-050-pole.jpg", "/images/products/f2-050-night.jpg"},
		Price:    "₱18,500",
		Description: "All-in-one solar street light combining panel, battery and " +
			"luminaire in a single housing with motion-sensing dimming.",
		DetailedDescription: "The F2-050 is our most deployed street light model. The " +
			"integrated design installs in under 30 minutes per pole with no trenching " +
			"or grid connection, and the LiFePO4 battery is rated for more than 2,000 cycles.",
		Variations: []models.Variation{
			{Name: "Mounting", Value: "Pole top", Description: "For new pole installations"},
			{Name: "Mounting", Value: "Side arm", Description: "For retrofitting existing poles"},
		},
		Specifications: []models.Specification{
			{Label: "LED Power", Value: "50W"},
			{Label: "Pole Height", Value: "8m"},
			{Label: "Solar Panel", Value: "80W monocrystalline"},
			{Label: "Battery", Value: "LiFePO4 12.8V 42Ah"},
			{Label: "Luminous Flux", Value: "5,500lm"},
			{Label: "Autonomy", Value: "3 rainy days"},
			{Label: "IP Rating", Value: "IP65"},
		},
		Features: []string{
			"PIR motion sensor with adaptive dimming",
			"Tool-free installation",
			"Remote control configuration",
			"2,000+ cycle battery life",
		},
	},
	{
		ID:       "solar-street-m2100",
		Name:     "M2-100 Split-Type Solar Street Light",
		Subtitle: "High-output split design for highways and wide roads",
		Category: models.CategorySolarStreet,
		Image:    "/images/products/m2-100.jpg",
		Images:   []string{"/images/products/m2-100-panel.jpg"},
		Price:    "₱34,000",
		Description: "Split-type street light with an adjustable panel for optimal " +
			"sun orientation and a 100W luminaire for major roads.",
		Specifications: []models.Specification{
			{Label: "LED Power", Value: "100W"},
			{Label: "Pole Height", Value: "10m"},
			{Label: "Solar Panel", Value: "200W monocrystalline, adjustable tilt"},
			{Label: "Battery", Value: "LiFePO4 25.6V 50Ah"},
			{Label: "Luminous Flux", Value: "11,000lm"},
			{Label: "IP Rating", Value: "IP66"},
		},
		Features: []string{
			"Adjustable panel tilt for site latitude",
			"Replaceable battery compartment at pole base",
			"Time and lux based dimming profiles",
		},
	},
	{
		ID:       "smart-home-01",
		Name:     "SolarHome 5K Hybrid Inverter Kit",
		Subtitle: "Whole-home hybrid solar kit with battery backup",
		Category: models.CategorySmartHome,
		Tag:      "popular",
		Image:    "/images/products/solarhome-5k.jpg",
		Images:   []string{"/images/products/solarhome-5k-app.jpg"},
		Price:    "₱285,000",
		Description: "Complete hybrid solar package for homes: panels, hybrid " +
			"inverter, and stackable battery with blackout backup.",
		DetailedDescription: "The SolarHome 5K pairs a 5kW hybrid inverter with ten " +
			"550W panels and a 10kWh stackable battery. Automatic transfer keeps " +
			"essential loads running within 10ms of a grid outage.",
		Variations: []models.Variation{
			{Name: "System Size", Value: "3kW", Description: "Starter kit, 6 panels", Price: "₱195,000"},
			{Name: "System Size", Value: "5kW", Description: "Standard kit, 10 panels", Price: "₱285,000"},
			{Name: "System Size", Value: "8kW", Description: "Large home kit, 15 panels", Price: "₱420,000"},
		},
		Specifications: []models.Specification{
			{Label: "Inverter Rating", Value: "5kW hybrid"},
			{Label: "Panel Array", Value: "10 x 550W monocrystalline"},
			{Label: "Battery", Value: "10kWh LiFePO4, stackable to 20kWh"},
			{Label: "Backup Switchover", Value: "<10ms"},
			{Label: "Monitoring", Value: "Wi-Fi app, per-string data"},
		},
		Features: []string{
			"Blackout backup for essential loads",
			"Net metering ready",
			"Stackable battery expansion",
			"10-year inverter warranty",
		},
	},
	{
		ID:       "smart-home-02",
		Name:     "PowerWall 10 Home Battery",
		Subtitle: "Wall-mounted 10kWh storage for existing solar homes",
		Category: models.CategorySmartHome,
		Image:    "/images/products/powerwall-10.jpg",
		Images:   []string{},
		Price:    "₱180,000",
		Description: "Retrofit battery for homes that already have grid-tie solar, " +
			"adding backup power and evening self-consumption.",
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "10kWh usable"},
			{Label: "Chemistry", Value: "LiFePO4"},
			{Label: "Peak Output", Value: "5kW"},
			{Label: "Cycle Life", Value: "6,000 cycles to 80%"},
		},
		Features: []string{
			"Works with most grid-tie inverters",
			"Indoor or sheltered outdoor mounting",
			"Modular expansion up to 4 units",
		},
	},
	{
		ID:       "cabinet-14",
		Name:     "ES-100 Energy Storage Cabinet",
		Subtitle: "100kWh outdoor cabinet for small facilities",
		Category: models.CategoryCabinet,
		Image:    "/images/products/es-100.jpg",
		Images:   []string{"/images/products/es-100-open.jpg"},
		Price:    "₱2,800,000",
		Description: "Self-contained 100kWh battery cabinet with integrated PCS, " +
			"fire suppression and thermal management.",
		Variations: []models.Variation{
			{Name: "Capacity", Value: "50kWh", Description: "Half-populated rack", Price: "₱1,650,000"},
			{Name: "Capacity", Value: "100kWh", Description: "Fully populated rack", Price: "₱2,800,000"},
		},
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "100kWh"},
			{Label: "PCS Rating", Value: "50kW"},
			{Label: "Chemistry", Value: "LiFePO4"},
			{Label: "Cooling", Value: "Forced air"},
			{Label: "IP Rating", Value: "IP55"},
		},
		Features: []string{
			"Integrated aerosol fire suppression",
			"Cell-level monitoring BMS",
			"Outdoor-rated enclosure",
		},
	},
	{
		ID:       "cabinet-15",
		Name:     "ES-215 Energy Storage Cabinet",
		Subtitle: "215kWh liquid-cooled cabinet",
		Category: models.CategoryCabinet,
		Image:    "/images/products/es-215.jpg",
		Images:   []string{},
		Price:    "₱5,200,000",
		Description: "Liquid-cooled 215kWh cabinet in the standard industry form " +
			"factor, for peak shaving and backup at mid-size sites.",
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "215kWh"},
			{Label: "PCS Rating", Value: "100kW"},
			{Label: "Chemistry", Value: "LiFePO4 280Ah cells"},
			{Label: "Cooling", Value: "Liquid"},
			{Label: "Cycle Life", Value: "8,000 cycles"},
		},
		Features: []string{
			"Liquid cooling for tight cell temperature spread",
			"Parallelable up to 10 cabinets",
			"Black start capable",
		},
	},
	{
		ID:       "cabinet-16",
		Name:     "ES-500 Energy Storage Cabinet",
		Subtitle: "500kWh containerized cabinet cluster",
		Category: models.CategoryCabinet,
		Image:    "/images/products/es-500.jpg",
		Images:   []string{"/images/products/es-500-site.jpg"},
		Price:    "₱11,500,000",
		Description: "Half-megawatt-hour storage block built from paralleled " +
			"liquid-cooled racks, sized for microgrids and large commercial loads.",
		DetailedDescription: "The ES-500 combines five liquid-cooled battery racks " +
			"behind a 250kW PCS with an integrated EMS. Designed as the building " +
			"block for island microgrids and factory-scale peak shaving.",
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "500kWh"},
			{Label: "PCS Rating", Value: "250kW"},
			{Label: "Chemistry", Value: "LiFePO4 314Ah cells"},
			{Label: "Cooling", Value: "Liquid"},
			{Label: "Deployment", Value: "Outdoor pad mount"},
		},
		Features: []string{
			"Integrated EMS with microgrid mode",
			"Diesel generator hybrid operation",
			"Remote SCADA integration",
		},
	},
	{
		ID:       "cabinet-item4",
		Name:     "ES-30 Commercial Storage Cabinet",
		Subtitle: "30kWh indoor cabinet for single businesses",
		Category: models.CategoryCabinet,
		Image:    "/images/products/es-30.jpg",
		Images:   []string{},
		Price:    "₱950,000",
		Description: "Compact 30kWh cabinet for shops, schools and small offices " +
			"needing backup power and demand reduction.",
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "30kWh"},
			{Label: "PCS Rating", Value: "15kW"},
			{Label: "Chemistry", Value: "LiFePO4"},
			{Label: "Noise", Value: "<45dB"},
		},
		Features: []string{
			"Fits through a standard doorway",
			"Quiet enough for occupied spaces",
			"Single-phase and three-phase models",
		},
	},
	{
		ID:       "container-con1",
		Name:     "ES-1000 Containerized Storage System",
		Subtitle: "1MWh storage in a 20ft container",
		Category: models.CategoryCabinet,
		Tag:      "utility",
		Image:    "/images/products/es-1000.jpg",
		Images:   []string{"/images/products/es-1000-delivery.jpg"},
		Price:    "₱21,000,000",
		Description: "Turnkey megawatt-hour class storage delivered in a 20ft ISO " +
			"container, commissioned on site within a week.",
		Specifications: []models.Specification{
			{Label: "Capacity", Value: "1MWh"},
			{Label: "PCS Rating", Value: "500kW"},
			{Label: "Enclosure", Value: "20ft ISO container"},
			{Label: "Cooling", Value: "Liquid with HVAC"},
			{Label: "Fire Protection", Value: "Pack-level aerosol + water mist"},
		},
		Features: []string{
			"Factory pre-commissioned",
			"Crane-ready lifting points",
			"Utility-grade metering and SCADA",
		},
	},
}
