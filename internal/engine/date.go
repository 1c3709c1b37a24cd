// Package engine computes the three suggestion feeds from list and
// history state: healthier substitutions, recency-based re-buy
// predictions, and expiry alerts. All functions are pure with respect
// to their inputs plus the supplied date, and total: malformed records
// are skipped, never surfaced as errors.
package engine

import (
	"time"

	"github.com/tfields/pantrymate/internal/model"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, s)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}
