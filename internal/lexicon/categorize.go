package lexicon

import "strings"

// Categorize returns the grocery category for the given item name.
// It performs case-insensitive matching: exact match first, then substring
// match. Falls back to "Other" if no match is found.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if cat, ok := categoryExact[name]; ok {
		return cat
	}

	for _, entry := range categoryKeywords {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Other"
}

var categoryExact = map[string]string{
	// Dairy
	"milk":    "Dairy",
	"eggs":    "Dairy",
	"butter":  "Dairy",
	"cheese":  "Dairy",
	"yogurt":  "Dairy",
	"cream":   "Dairy",

	// Fruits
	"apples":  "Fruits",
	"bananas": "Fruits",
	"oranges": "Fruits",
	"grapes":  "Fruits",
	"mango":   "Fruits",
	"lemons":  "Fruits",

	// Vegetables
	"tomatoes": "Vegetables",
	"onions":   "Vegetables",
	"potatoes": "Vegetables",
	"spinach":  "Vegetables",
	"carrots":  "Vegetables",
	"broccoli": "Vegetables",
	"lettuce":  "Vegetables",

	// Meat
	"chicken": "Meat",
	"beef":    "Meat",
	"fish":    "Meat",
	"bacon":   "Meat",
	"turkey":  "Meat",
	"pork":    "Meat",

	// Bakery
	"bread":   "Bakery",
	"bagels":  "Bakery",
	"muffins": "Bakery",
	"rolls":   "Bakery",

	// Beverages
	"juice":  "Beverages",
	"soda":   "Beverages",
	"coffee": "Beverages",
	"tea":    "Beverages",
	"water":  "Beverages",

	// Snacks
	"chips":     "Snacks",
	"cookies":   "Snacks",
	"candy":     "Snacks",
	"chocolate": "Snacks",
	"popcorn":   "Snacks",
	"crackers":  "Snacks",

	// Grains
	"rice":    "Grains",
	"pasta":   "Grains",
	"flour":   "Grains",
	"oatmeal": "Grains",
	"cereal":  "Grains",
	"quinoa":  "Grains",

	// Condiments
	"ketchup":    "Condiments",
	"mustard":    "Condiments",
	"mayonnaise": "Condiments",
	"honey":      "Condiments",
	"sugar":      "Condiments",
	"salt":       "Condiments",
	"olive oil":  "Condiments",
	"vinegar":    "Condiments",
	"soy sauce":  "Condiments",
}

type categoryKeyword struct {
	keyword  string
	category string
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var categoryKeywords = []categoryKeyword{
	// Dairy
	{"greek yogurt", "Dairy"},
	{"skim milk", "Dairy"},
	{"whole milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"cream", "Dairy"},
	{"milk", "Dairy"},
	{"egg", "Dairy"},

	// Fruits
	{"fresh fruit", "Fruits"},
	{"apple", "Fruits"},
	{"banana", "Fruits"},
	{"orange", "Fruits"},
	{"berry", "Fruits"},
	{"berries", "Fruits"},
	{"melon", "Fruits"},
	{"peach", "Fruits"},
	{"pear", "Fruits"},
	{"fruit", "Fruits"},

	// Vegetables
	{"sweet potato", "Vegetables"},
	{"tomato", "Vegetables"},
	{"potato", "Vegetables"},
	{"onion", "Vegetables"},
	{"spinach", "Vegetables"},
	{"carrot", "Vegetables"},
	{"pepper", "Vegetables"},
	{"cabbage", "Vegetables"},
	{"salad", "Vegetables"},

	// Meat
	{"lean chicken", "Meat"},
	{"turkey bacon", "Meat"},
	{"chicken", "Meat"},
	{"beef", "Meat"},
	{"fish", "Meat"},
	{"salmon", "Meat"},
	{"bacon", "Meat"},
	{"sausage", "Meat"},
	{"ham", "Meat"},

	// Bakery
	{"whole wheat bread", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"muffin", "Bakery"},
	{"tortilla", "Bakery"},
	{"croissant", "Bakery"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"coffee", "Beverages"},
	{"tea", "Beverages"},
	{"water", "Beverages"},
	{"drink", "Beverages"},

	// Snacks
	{"frozen yogurt", "Snacks"},
	{"dark chocolate", "Snacks"},
	{"ice cream", "Snacks"},
	{"chip", "Snacks"},
	{"cookie", "Snacks"},
	{"candy", "Snacks"},
	{"chocolate", "Snacks"},
	{"cracker", "Snacks"},
	{"snack", "Snacks"},

	// Grains
	{"brown rice", "Grains"},
	{"whole wheat pasta", "Grains"},
	{"rice", "Grains"},
	{"pasta", "Grains"},
	{"noodle", "Grains"},
	{"flour", "Grains"},
	{"oat", "Grains"},
	{"cereal", "Grains"},
	{"grain", "Grains"},

	// Condiments
	{"olive oil", "Condiments"},
	{"mayonnaise", "Condiments"},
	{"ketchup", "Condiments"},
	{"mustard", "Condiments"},
	{"honey", "Condiments"},
	{"sauce", "Condiments"},
	{"dressing", "Condiments"},
	{"vinegar", "Condiments"},
	{"spice", "Condiments"},
	{"sugar", "Condiments"},
	{"oil", "Condiments"},
}
