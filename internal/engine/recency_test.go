package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/tfields/pantrymate/internal/model"
)

var recencyToday = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

func record(date string, names ...string) model.PurchaseRecord {
	r := model.PurchaseRecord{Date: date}
	for _, n := range names {
		r.Items = append(r.Items, model.PurchasedItem{Name: n, Category: "Dairy", Quantity: 1})
	}
	return r
}

func TestPredictMissingDisabled(t *testing.T) {
	history := []model.PurchaseRecord{record("2026-03-08", "milk")}
	got := PredictMissing(history, nil, recencyToday, false, DefaultWindowDays)
	if got != nil {
		t.Errorf("expected nil when disabled, got %v", got)
	}
}

func TestPredictMissingWindowBoundary(t *testing.T) {
	history := []model.PurchaseRecord{
		record("2026-02-18", "milk"), // exactly 20 days before today: included
		record("2026-02-17", "eggs"), // 21 days: excluded
	}

	got := PredictMissing(history, nil, recencyToday, true, DefaultWindowDays)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if got[0].Name != "milk" {
		t.Errorf("suggestion = %q, want %q", got[0].Name, "milk")
	}
	if !strings.Contains(got[0].Reason, "20 day(s) ago") {
		t.Errorf("reason = %q, want mention of 20 day(s) ago", got[0].Reason)
	}
}

func TestPredictMissingMalformedDateSkipsRecord(t *testing.T) {
	history := []model.PurchaseRecord{
		record("not-a-date", "milk", "eggs"),
		record("2026-03-08", "yogurt"),
	}

	got := PredictMissing(history, nil, recencyToday, true, DefaultWindowDays)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if got[0].Name != "yogurt" {
		t.Errorf("suggestion = %q, want %q (malformed record contributes nothing)", got[0].Name, "yogurt")
	}
}

func TestPredictMissingMostRecentDateWins(t *testing.T) {
	history := []model.PurchaseRecord{
		record("2026-03-05", "milk"),
		record("2026-03-08", "milk"),
		record("2026-03-01", "milk"),
	}

	got := PredictMissing(history, nil, recencyToday, true, DefaultWindowDays)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if !strings.Contains(got[0].Reason, "2 day(s) ago") {
		t.Errorf("reason = %q, want days since the most recent purchase (2)", got[0].Reason)
	}
}

func TestPredictMissingExcludesCurrentList(t *testing.T) {
	history := []model.PurchaseRecord{record("2026-03-08", "milk", "eggs")}
	list := []model.GroceryItem{{ID: 1, Name: "  MILK  "}}

	got := PredictMissing(history, list, recencyToday, true, DefaultWindowDays)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %v", len(got), got)
	}
	if got[0].Name != "eggs" {
		t.Errorf("suggestion = %q, want %q (listed names excluded regardless of case)", got[0].Name, "eggs")
	}
}

func TestPredictMissingCategoryDefault(t *testing.T) {
	history := []model.PurchaseRecord{{
		Date:  "2026-03-08",
		Items: []model.PurchasedItem{{Name: "mystery item", Quantity: 1}},
	}}

	got := PredictMissing(history, nil, recencyToday, true, DefaultWindowDays)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Category != "Other" {
		t.Errorf("category = %q, want %q", got[0].Category, "Other")
	}
}

func TestPredictMissingFirstSeenOrder(t *testing.T) {
	history := []model.PurchaseRecord{
		record("2026-03-05", "milk", "eggs"),
		record("2026-03-08", "yogurt", "milk"),
	}

	got := PredictMissing(history, nil, recencyToday, true, DefaultWindowDays)

	want := []string{"milk", "eggs", "yogurt"}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("suggestion[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}
