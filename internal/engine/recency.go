package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/tfields/pantrymate/internal/model"
)

// DefaultWindowDays is the trailing window for purchase recency.
const DefaultWindowDays = 20

// MissingItem proposes re-adding something bought recently but absent
// from the current list.
type MissingItem struct {
	Name     string `json:"item"`
	Reason   string `json:"reason"`
	Category string `json:"category"`
}

// PredictMissing scans purchase history inside the trailing window and
// proposes items that are not on the current list. A record whose date
// does not parse is skipped whole. Names are compared lowercased and
// trimmed; per name the most recent purchase date and its category win.
// Output follows first-seen order of the tracked names, so unchanged
// inputs yield unchanged output.
func PredictMissing(history []model.PurchaseRecord, list []model.GroceryItem, today time.Time, enabled bool, windowDays int) []MissingItem {
	if !enabled {
		return nil
	}

	today = startOfDay(today)
	cutoff := today.AddDate(0, 0, -windowDays)

	lastDate := make(map[string]time.Time)
	category := make(map[string]string)
	var order []string

	for _, record := range history {
		purchased, err := parseDate(record.Date)
		if err != nil {
			continue
		}
		if purchased.Before(cutoff) {
			continue
		}
		for _, item := range record.Items {
			name := strings.ToLower(strings.TrimSpace(item.Name))
			prev, seen := lastDate[name]
			if !seen {
				order = append(order, name)
			}
			if !seen || purchased.After(prev) {
				lastDate[name] = purchased
				category[name] = item.Category
			}
		}
	}

	onList := make(map[string]bool, len(list))
	for _, item := range list {
		onList[strings.ToLower(strings.TrimSpace(item.Name))] = true
	}

	var suggestions []MissingItem
	for _, name := range order {
		if onList[name] {
			continue
		}
		cat := category[name]
		if cat == "" {
			cat = "Other"
		}
		days := daysBetween(lastDate[name], today)
		suggestions = append(suggestions, MissingItem{
			Name:     name,
			Reason:   fmt.Sprintf("You bought %s %d day(s) ago. Should I add it again?", name, days),
			Category: cat,
		})
	}
	return suggestions
}
