package catalog

import "ohioautoparts/internal/domain"

// DefaultCatalog is the bundled fallback inventory served when every feed is
// down and the local store is empty. Ids are stable; callers rely on them.
func DefaultCatalog() []domain.Part {
	return []domain.Part{
		// Body
		{ID: "front-bumper", Name: "Front Bumper Cover", ImageURL: "https://picsum.photos/seed/bumper/800/480", BasePriceCents: 18900, Year: 2020, Make: "Toyota", Model: "Camry", Category: "body", WeightLb: 30, DimLIn: 65, DimWIn: 12, DimHIn: 12, Stock: 4},
		{ID: "rear-bumper", Name: "Rear Bumper Cover", ImageURL: "https://picsum.photos/seed/rear-bumper/800/480", BasePriceCents: 19900, Year: 2020, Make: "Toyota", Model: "Camry", Category: "body", WeightLb: 30, DimLIn: 65, DimWIn: 12, DimHIn: 12, Stock: 3},
		{ID: "left-fender", Name: "Fender (Driver)", ImageURL: "https://picsum.photos/seed/fender-left/800/480", BasePriceCents: 12900, Year: 2019, Make: "Honda", Model: "Civic", Category: "body", WeightLb: 12, DimLIn: 40, DimWIn: 20, DimHIn: 8, Stock: 6},
		{ID: "right-fender", Name: "Fender (Passenger)", ImageURL: "https://picsum.photos/seed/fender-right/800/480", BasePriceCents: 12900, Year: 2019, Make: "Honda", Model: "Civic", Category: "body", WeightLb: 12, DimLIn: 40, DimWIn: 20, DimHIn: 8, Stock: 6},
		{ID: "hood-panel", Name: "Hood Panel", ImageURL: "https://picsum.photos/seed/hood/800/480", BasePriceCents: 24900, Year: 2021, Make: "Ford", Model: "F-150", Category: "body", WeightLb: 28, DimLIn: 60, DimWIn: 58, DimHIn: 6, Stock: 2},
		{ID: "grille-assembly", Name: "Grille Assembly", ImageURL: "https://picsum.photos/seed/grille/800/480", BasePriceCents: 15900, Year: 2018, Make: "Nissan", Model: "Altima", Category: "body", WeightLb: 12, DimLIn: 36, DimWIn: 10, DimHIn: 6, Stock: 5},
		{ID: "side-mirror-rh", Name: "Side Mirror (RH)", ImageURL: "https://picsum.photos/seed/mirror/800/480", BasePriceCents: 8900, Year: 2017, Make: "Chevrolet", Model: "Malibu", Category: "body", WeightLb: 5, DimLIn: 14, DimWIn: 10, DimHIn: 6, Stock: 9},
		{ID: "headlight", Name: "Headlight Assembly", ImageURL: "https://picsum.photos/seed/headlight/800/480", BasePriceCents: 12900, Year: 2014, Make: "Audi", Model: "A4", Category: "body", WeightLb: 9, DimLIn: 18, DimWIn: 12, DimHIn: 10, Stock: 7},
		{ID: "taillight", Name: "Tail Light Assembly", ImageURL: "https://picsum.photos/seed/taillight/800/480", BasePriceCents: 11900, Year: 2015, Make: "BMW", Model: "328i", Category: "body", WeightLb: 6, DimLIn: 16, DimWIn: 8, DimHIn: 8, Stock: 7},
		{ID: "door-shell", Name: "Front Door Shell", ImageURL: "https://picsum.photos/seed/door/800/480", BasePriceCents: 29900, Year: 2018, Make: "Nissan", Model: "Altima", Category: "body", WeightLb: 45, DimLIn: 48, DimWIn: 40, DimHIn: 10, Stock: 2},
		{ID: "quarter-panel", Name: "Quarter Panel (LH)", ImageURL: "https://picsum.photos/seed/quarter/800/480", BasePriceCents: 34900, Year: 2015, Make: "BMW", Model: "328i", Category: "body", WeightLb: 32, DimLIn: 50, DimWIn: 30, DimHIn: 14, Stock: 1},
		{ID: "splash-shield", Name: "Engine Splash Shield", ImageURL: "https://picsum.photos/seed/splash/800/480", BasePriceCents: 6400, Year: 2020, Make: "Toyota", Model: "Camry", Category: "body", WeightLb: 4, DimLIn: 36, DimWIn: 24, DimHIn: 3, Stock: 11},
		{ID: "wheel-liner", Name: "Wheel Arch Liner", ImageURL: "https://picsum.photos/seed/liner/800/480", BasePriceCents: 5400, Year: 2019, Make: "Honda", Model: "Civic", Category: "body", WeightLb: 3, DimLIn: 30, DimWIn: 24, DimHIn: 6, Stock: 10},
		// Mechanical
		{ID: "alternator", Name: "Alternator", ImageURL: "https://picsum.photos/seed/alternator/800/480", BasePriceCents: 19999, Year: 2019, Make: "Honda", Model: "Civic", Category: "mechanical", WeightLb: 14, DimLIn: 10, DimWIn: 8, DimHIn: 8, Stock: 8},
		{ID: "radiator", Name: "Radiator", ImageURL: "https://picsum.photos/seed/radiator/800/480", BasePriceCents: 14999, Year: 2021, Make: "Ford", Model: "F-150", Category: "mechanical", WeightLb: 24, DimLIn: 32, DimWIn: 6, DimHIn: 24, Stock: 4},
		{ID: "car-battery", Name: "12V Car Battery", ImageURL: "https://picsum.photos/seed/battery/800/480", BasePriceCents: 13900, Year: 2023, Make: "Tesla", Model: "Model 3", Category: "mechanical", WeightLb: 38, DimLIn: 12, DimWIn: 7, DimHIn: 9, Stock: 12},
	}
}
