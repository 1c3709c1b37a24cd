package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/tfields/pantrymate/internal/database"
	"github.com/tfields/pantrymate/internal/model"
	"github.com/tfields/pantrymate/internal/store"
)

func setupManager(t *testing.T) (*Manager, *store.GroceryStore, *store.PurchaseStore, *store.SettingsStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gs := store.NewGroceryStore(db)
	ps := store.NewPurchaseStore(db)
	ss := store.NewSettingsStore(db)
	return NewManager(gs, ps, ss), gs, ps, ss
}

func TestExportEmptyState(t *testing.T) {
	m, _, _, _ := setupManager(t)

	doc, err := m.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.GroceryList == nil || len(doc.GroceryList) != 0 {
		t.Errorf("grocery_list = %v, want empty slice", doc.GroceryList)
	}
	if doc.PurchaseHistory == nil || len(doc.PurchaseHistory) != 0 {
		t.Errorf("purchase_history = %v, want empty slice", doc.PurchaseHistory)
	}
	if doc.Settings == nil || !doc.Settings.AutoSuggest {
		t.Errorf("settings = %+v, want auto_suggest true", doc.Settings)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m, gs, ps, ss := setupManager(t)

	milk, _ := gs.CreateItem("Milk", "Dairy", 1, "2026-03-08")
	gs.CreateItem("Bread", "Bakery", 2, "2026-03-09")
	ps.Commit([]int64{milk.ID}, "2026-03-10")
	ss.SetAutoSuggest(false)

	doc, err := m.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Wipe state, then restore from the document.
	if err := m.Import(Document{}); err != nil {
		t.Fatalf("wipe: %v", err)
	}
	if err := m.Import(*doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	items, _ := gs.ListItems()
	if len(items) != 1 || items[0].Name != "Bread" {
		t.Fatalf("items = %+v, want only Bread", items)
	}
	if items[0].ID != doc.GroceryList[0].ID {
		t.Errorf("imported id = %d, want %d", items[0].ID, doc.GroceryList[0].ID)
	}

	records, _ := ps.ListRecords()
	if len(records) != 1 || records[0].Date != "2026-03-10" {
		t.Fatalf("records = %+v, want one dated 2026-03-10", records)
	}
	if len(records[0].Items) != 1 || records[0].Items[0].Name != "Milk" {
		t.Errorf("record items = %+v, want Milk", records[0].Items)
	}

	enabled, _ := ss.AutoSuggest()
	if enabled {
		t.Error("expected auto_suggest false after import")
	}
}

func TestImportMissingSettingsDefaultsOn(t *testing.T) {
	m, _, _, ss := setupManager(t)

	ss.SetAutoSuggest(false)

	var doc Document
	if err := json.Unmarshal([]byte(`{"grocery_list": [], "purchase_history": []}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := m.Import(doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	enabled, _ := ss.AutoSuggest()
	if !enabled {
		t.Error("expected auto_suggest to default true when settings block missing")
	}
}

func TestDocumentShape(t *testing.T) {
	m, gs, _, _ := setupManager(t)

	gs.ImportItem(model.GroceryItem{ID: 7, Name: "Milk", Category: "Dairy", Quantity: 1, AddedDate: "2026-03-08"})

	doc, err := m.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"grocery_list", "purchase_history", "settings"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("document missing %q field", field)
		}
	}

	var items []map[string]any
	if err := json.Unmarshal(raw["grocery_list"], &items); err != nil {
		t.Fatalf("unmarshal items: %v", err)
	}
	if items[0]["added_date"] != "2026-03-08" {
		t.Errorf("added_date = %v, want %q", items[0]["added_date"], "2026-03-08")
	}
}
