package common

// CategoryAll is a browse-only sentinel, it is never stored on a listing
const CategoryAll = "All"

// Categories is the fixed marketplace taxonomy, in display order. Every
// stored listing must carry exactly one of these labels.
var Categories = []string{
	"Vehicles",
	"Property Rentals",
	"Apparel",
	"Classifieds",
	"Electronics",
	"Entertainment",
	"Family",
	"Free Stuff",
	"Garden & Outdoor",
	"Hobbies",
	"Home Goods",
	"Home Improvement",
	"Home Sales",
	"Musical Instruments",
	"Office Supplies",
	"Pet Supplies",
	"Sporting Goods",
	"Toys & Games",
	"Buy and sell groups",
}

// IsValidCategory checks membership in the taxonomy. "All" is not a
// storable category.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// IsBrowsableCategory reports whether name can appear in a browse
// route: any taxonomy label, or the "All" sentinel.
func IsBrowsableCategory(name string) bool {
	return name == CategoryAll || IsValidCategory(name)
}

// CategoryFilter maps a browse parameter to a datastore filter. "All"
// and the empty string mean no filter.
func CategoryFilter(name string) string {
	if name == "" || name == CategoryAll {
		return ""
	}
	return name
}
