package catalog

import "sort"

// Vehicle-fitment vocabulary served to the storefront filter controls.

const (
	YearMin = 1991
	YearMax = 2026
)

// Years lists the supported model years, newest first.
func Years() []int {
	out := make([]int, 0, YearMax-YearMin+1)
	for y := YearMax; y >= YearMin; y-- {
		out = append(out, y)
	}
	return out
}

func Makes() []string {
	out := make([]string, 0, len(modelsByMake))
	for m := range modelsByMake {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func Models(make string) []string {
	if models, ok := modelsByMake[make]; ok {
		return models
	}
	return []string{}
}

var modelsByMake = map[string][]string{
	"Ford":          {"F-150", "Mustang", "Explorer", "Ranger", "Transit", "Bronco"},
	"Chevrolet":     {"Silverado", "Colorado", "Tahoe", "Suburban", "Camaro", "Equinox", "Malibu"},
	"GMC":           {"Sierra", "Yukon", "Acadia", "Terrain", "Canyon"},
	"Ram":           {"1500", "2500", "ProMaster"},
	"Dodge":         {"Charger", "Challenger", "Durango"},
	"Chrysler":      {"300", "Pacifica", "Voyager"},
	"Jeep":          {"Wrangler", "Grand Cherokee", "Compass", "Gladiator"},
	"Cadillac":      {"Escalade", "XT5", "CT5", "Lyriq"},
	"Buick":         {"Enclave", "Envision"},
	"Lincoln":       {"Aviator", "Navigator"},
	"Tesla":         {"Model 3", "Model Y", "Model S", "Model X", "Cybertruck"},
	"BMW":           {"3 Series", "5 Series", "X3", "X5", "i4"},
	"Mercedes-Benz": {"C-Class", "E-Class", "GLC", "GLE", "EQE"},
	"Audi":          {"A4", "A6", "Q5", "Q7", "Q8"},
	"Volkswagen":    {"Golf", "Jetta", "Passat", "Tiguan", "Atlas", "ID.4"},
	"Porsche":       {"911", "Cayenne", "Macan", "Taycan"},
	"Volvo":         {"XC40", "XC60", "XC90", "S60", "EX30"},
	"Peugeot":       {"208", "308", "3008", "5008"},
	"Renault":       {"Clio", "Megane", "Captur", "Scenic"},
	"Citroën":       {"C3", "C4", "C5 Aircross"},
	"Fiat":          {"500", "Panda", "Tipo", "Ducato"},
	"Alfa Romeo":    {"Giulia", "Stelvio", "Tonale"},
	"Lancia":        {"Ypsilon"},
	"SEAT":          {"Ibiza", "Leon", "Ateca"},
	"Škoda":         {"Fabia", "Octavia", "Kodiaq", "Enyaq"},
	"Dacia":         {"Sandero", "Logan", "Duster", "Jogger"},
	"Land Rover":    {"Defender", "Discovery", "Range Rover", "Evoque"},
	"Jaguar":        {"XF", "F-PACE", "I-PACE"},
	"Aston Martin":  {"Vantage", "DB12", "DBX"},
	"Bentley":       {"Bentayga", "Continental GT"},
	"Rolls-Royce":   {"Ghost", "Phantom", "Cullinan"},
	"Lotus":         {"Emira", "Eletre"},
	"McLaren":       {"Artura", "750S", "GT"},
	"Cupra":         {"Leon", "Formentor", "Born"},
	"Iveco":         {"Daily", "Eurocargo"},
}

// PartTypes is the search chip vocabulary shown on the storefront.
func PartTypes() []string {
	return []string{
		"Alternator", "Battery", "Starter", "Spark Plugs", "Ignition Coils", "ECU",
		"MAF Sensor", "MAP Sensor", "O2 Sensor", "Oil Filter", "Air Filter",
		"Cabin Filter", "Fuel Filter", "Fuel Pump", "Radiator", "Water Pump",
		"Thermostat", "Timing Belt/Chain", "Serpentine Belt", "Catalytic Converter",
		"Exhaust Muffler", "Brake Pads", "Brake Rotors", "Calipers", "ABS Sensor",
		"Master Cylinder", "Suspension Strut", "Shock Absorber", "Control Arm",
		"Ball Joint", "Tie Rod", "Wheel Bearing", "Axle/CV Joint", "AC Compressor",
		"Condenser", "Heater Core", "Power Steering Pump", "Rack and Pinion",
		"Clutch Kit", "Flywheel", "Transmission Filter/Fluid", "Headlight Assembly",
		"Taillight", "Mirror", "Bumper", "Fender", "Hood", "Grille", "Door Handle",
		"Window Regulator", "Wiper Blades", "Floor Mats", "Roof Rack",
		"Infotainment Screen",
	}
}
