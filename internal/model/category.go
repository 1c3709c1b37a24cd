package model

// Categories is the fixed set of grocery categories, in display order.
var Categories = []string{
	"Dairy",
	"Fruits",
	"Vegetables",
	"Meat",
	"Bakery",
	"Beverages",
	"Snacks",
	"Grains",
	"Condiments",
	"Other",
}

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
