// Package lexicon holds the static product-name tables behind the
// suggestion and expiry features. Tables are ordered slices rather than
// maps: lookup walks them in definition order and the first match wins,
// so entry order is part of the contract.
package lexicon

import "strings"

// Substitution maps an unhealthy product-name fragment to a healthier
// alternative and the rationale for suggesting it.
type Substitution struct {
	Key    string
	Alt    string
	Reason string
}

// ShelfLifeEntry maps a product-name fragment to shelf life in days.
type ShelfLifeEntry struct {
	Key  string
	Days int
}

var Substitutions = []Substitution{
	{"white bread", "whole wheat bread", "Higher fiber, more nutrients, better for digestion"},
	{"white rice", "brown rice", "More fiber, vitamins, minerals, and protein"},
	{"soda", "sparkling water with lemon", "No added sugar, hydrating, natural flavor"},
	{"potato chips", "baked chips", "Lower fat content, more nutrients"},
	{"ice cream", "frozen yogurt", "Less fat, fewer calories, probiotics"},
	{"butter", "olive oil", "Healthier monounsaturated fats, antioxidants"},
	{"whole milk", "skim milk", "Lower fat, fewer calories, plant-based option"},
	{"beef", "lean chicken", "Lower saturated fat, more protein, omega-3s"},
	{"pasta", "whole wheat pasta", "More fiber, complex carbohydrates, lower calories"},
	{"mayonnaise", "Greek yogurt", "More protein, less fat, probiotics"},
	{"sugar", "honey", "Natural sweeteners, lower glycemic index"},
	{"cookies", "oatmeal cookies", "More fiber, less processed sugar, natural sweetness"},
	{"candy", "dark chocolate", "Antioxidants, natural sugars, fiber"},
	{"cream", "low-fat milk", "Lower fat content, plant-based option"},
	{"bacon", "turkey bacon", "Lower fat, less sodium, more protein"},
	{"juice", "fresh fruit", "More fiber, less sugar, natural hydration"},
}

// ShelfLife is the single shelf-life table. The expiry monitor and the
// purchase commit both resolve through it, so the two call sites always
// agree on a product's shelf life.
var ShelfLife = []ShelfLifeEntry{
	{"milk", 7},
	{"bread", 5},
	{"whole wheat bread", 7},
	{"eggs", 21},
	{"yogurt", 14},
	{"cheese", 30},
	{"rice", 180},
	{"flour", 180},
	{"pasta", 365},
	{"sugar", 365},
	{"honey", 365},
	{"cookies", 120},
	{"chips", 180},
	{"chocolate", 180},
	{"mayonnaise", 60},
	{"meat", 3},
	{"chicken", 3},
	{"fish", 2},
	{"beef", 3},
	{"bananas", 5},
	{"butter", 180},
	{"bacon", 7},
	{"juice", 7},
	{"olive oil", 365},
	{"tomatoes", 7},
	{"onions", 30},
	{"potatoes", 30},
	{"apples", 14},
	{"oranges", 14},
	{"spinach", 5},
}

// matchKey reports whether a lowercased, trimmed name and a table key
// overlap in either direction: the key is contained in the name or the
// name in the key. "whole wheat bread" therefore matches both the
// "bread" and "whole wheat bread" keys; table order decides which fires.
func matchKey(name, key string) bool {
	return strings.Contains(name, key) || strings.Contains(key, name)
}

// FindSubstitution returns the first substitution whose key matches
// name, or nil. Matching is case- and whitespace-insensitive; an empty
// name never matches (the empty string is a substring of every key).
func FindSubstitution(name string, table []Substitution) *Substitution {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	for i := range table {
		if matchKey(name, table[i].Key) {
			return &table[i]
		}
	}
	return nil
}

// FindShelfLife returns the shelf life in days for the first matching
// table entry.
func FindShelfLife(name string, table []ShelfLifeEntry) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for _, e := range table {
		if matchKey(name, e.Key) {
			return e.Days, true
		}
	}
	return 0, false
}
