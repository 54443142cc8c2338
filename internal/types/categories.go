package types

// subcategories is the fixed lookup table the reporting form is built
// around. The server validates against the same table, but the client
// rejects mismatches before any request is sent.
var subcategories = map[Category][]string{
	CategoryWASA:         {"Water Supply", "Sewerage", "Drainage", "Water Quality", "Billing Issue"},
	CategoryIESCO:        {"Power Outage", "Billing Issue", "Meter Problem", "Line Fault", "Load Shedding"},
	CategoryMunicipality: {"Road Maintenance", "Street Lights", "Garbage Collection", "Park Maintenance", "Traffic Signal"},
	CategoryOthers:       {"General Complaint", "Public Safety", "Environment", "Noise Pollution", "Other"},
}

// SubcategoriesFor returns the allowed subcategories for category, or nil
// when the category is unknown.
func SubcategoriesFor(category Category) []string {
	subs, ok := subcategories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// ValidSubcategory reports whether sub belongs to category's allowed set.
func ValidSubcategory(category Category, sub string) bool {
	for _, s := range subcategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}
