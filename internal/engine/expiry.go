package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/tfields/pantrymate/internal/lexicon"
	"github.com/tfields/pantrymate/internal/model"
)

// DefaultShelfLifeDays is assumed when no shelf-life entry matches.
const DefaultShelfLifeDays = 30

// maxAlertDays is an extra cap on emitted alerts. The urgent and
// warning bounds are already stricter, so it only matters if the class
// thresholds are ever widened.
const maxAlertDays = 8

// ExpiryStatus classifies how close a listed item is to spoiling.
type ExpiryStatus string

const (
	StatusExpired ExpiryStatus = "expired"
	StatusUrgent  ExpiryStatus = "urgent"
	StatusWarning ExpiryStatus = "warning"
	StatusFresh   ExpiryStatus = "fresh"
)

var severity = map[ExpiryStatus]int{
	StatusExpired: 0,
	StatusUrgent:  1,
	StatusWarning: 2,
	StatusFresh:   3,
}

type ExpiryAlert struct {
	Item    string       `json:"item"`
	Status  ExpiryStatus `json:"status"`
	Message string       `json:"message"`
}

// ExpiringItems reports listed items that are expired or close to it.
// Shelf life resolves through the table with the lexicon matcher,
// falling back to defaultDays. days-until-expiry classifies as:
// negative expired, 0-4 urgent, 5-6 warning, 7+ fresh. Fresh items are
// excluded. Items with an unparseable added date are skipped. Results
// are ordered most severe first; ties keep list order.
func ExpiringItems(list []model.GroceryItem, today time.Time, table []lexicon.ShelfLifeEntry, defaultDays int) []ExpiryAlert {
	today = startOfDay(today)

	var alerts []ExpiryAlert
	for _, item := range list {
		added, err := parseDate(item.AddedDate)
		if err != nil {
			continue
		}

		life, ok := lexicon.FindShelfLife(item.Name, table)
		if !ok {
			life = defaultDays
		}

		daysUntil := life - daysBetween(added, today)

		var status ExpiryStatus
		var message string
		switch {
		case daysUntil < 0:
			status = StatusExpired
			message = fmt.Sprintf("%s expired %d day(s) ago!", item.Name, -daysUntil)
		case daysUntil <= 4:
			status = StatusUrgent
			message = fmt.Sprintf("%s expires in %d day(s)!", item.Name, daysUntil)
		case daysUntil <= 6:
			status = StatusWarning
			message = fmt.Sprintf("%s expires in %d day(s)", item.Name, daysUntil)
		default:
			status = StatusFresh
		}

		if status == StatusFresh || daysUntil > maxAlertDays {
			continue
		}
		alerts = append(alerts, ExpiryAlert{Item: item.Name, Status: status, Message: message})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severity[alerts[i].Status] < severity[alerts[j].Status]
	})
	return alerts
}
