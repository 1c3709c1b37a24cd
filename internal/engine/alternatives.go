package engine

import (
	"github.com/tfields/pantrymate/internal/lexicon"
	"github.com/tfields/pantrymate/internal/model"
)

// Alternative proposes replacing a listed item with a healthier one.
// ItemID identifies the list row the replacement targets; actually
// rewriting the item is the caller's responsibility.
type Alternative struct {
	Current     string `json:"current"`
	Alternative string `json:"alternative"`
	Reason      string `json:"reason"`
	ItemID      int64  `json:"item_id"`
}

// SuggestAlternatives runs every list item through the substitution
// table and collects the hits, at most one suggestion per item.
func SuggestAlternatives(list []model.GroceryItem, table []lexicon.Substitution) []Alternative {
	var suggestions []Alternative
	for _, item := range list {
		sub := lexicon.FindSubstitution(item.Name, table)
		if sub == nil {
			continue
		}
		suggestions = append(suggestions, Alternative{
			Current:     item.Name,
			Alternative: sub.Alt,
			Reason:      sub.Reason,
			ItemID:      item.ID,
		})
	}
	return suggestions
}
