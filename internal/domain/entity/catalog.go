package entity

// Fixed catalogues the intake form draws from. Values are stored as free text
// (no DB enum) but validated at intake.

// Divisions the company operates in. The id is the state abbreviation.
var Divisions = []CatalogItem{
	{ID: "NV", Name: "Nevada (NV)"},
	{ID: "MD", Name: "Maryland (MD)"},
	{ID: "GA", Name: "Georgia (GA)"},
	{ID: "DE", Name: "Delaware (DE)"},
}

// Lead sources. "self" triggers the dispatch-job relay on sync.
const (
	LeadSourceCompany = "lead"
	LeadSourceSelf    = "self"
)

var LeadSources = []CatalogItem{
	{ID: LeadSourceCompany, Name: "Company Lead"},
	{ID: LeadSourceSelf, Name: "Self-Generated"},
}

// Financing banks.
var Banks = []CatalogItem{
	{ID: "360", Name: "360 Payments"},
	{ID: "enhancify", Name: "Enhancify"},
}

// Equipment types sold.
var EquipmentTypes = []CatalogItem{
	{ID: "central_air", Name: "Central Air Conditioner"},
	{ID: "gas_furnace", Name: "Gas Furnace"},
	{ID: "electric_furnace", Name: "Electric Furnace"},
	{ID: "heat_pump", Name: "Heat Pump"},
	{ID: "mini_split", Name: "Mini Split / Ductless"},
	{ID: "package_unit", Name: "Package Unit"},
	{ID: "boiler", Name: "Boiler"},
	{ID: "water_heater", Name: "Water Heater"},
	{ID: "dual_fuel", Name: "Dual Fuel System"},
	{ID: "geothermal", Name: "Geothermal"},
	{ID: "other", Name: "Other"},
}

// TonnageOptions for cooling equipment.
var TonnageOptions = []string{"1.5", "2", "2.5", "3", "3.5", "4", "5"}

// CatalogItem is an (id, display name) pair.
type CatalogItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidDivision reports whether code names a real division (not "all").
func ValidDivision(code string) bool {
	for _, d := range Divisions {
		if d.ID == code {
			return true
		}
	}
	return false
}

// LeadSourceName resolves the display name for a lead source id, defaulting
// to the company-lead label for unknown values.
func LeadSourceName(id string) string {
	if id == LeadSourceSelf {
		return "Self-Generated"
	}
	return "Company Lead"
}
