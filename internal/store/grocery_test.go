package store

import (
	"database/sql"
	"testing"

	"github.com/tfields/pantrymate/internal/database"
	"github.com/tfields/pantrymate/internal/model"
)

func itemFixture(id int64, name string, purchased bool) model.GroceryItem {
	return model.GroceryItem{ID: id, Name: name, Category: "Dairy", Quantity: 1, AddedDate: "2026-03-10", Purchased: purchased}
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestItemCRUD(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	item, err := gs.CreateItem("Milk", "Dairy", 2, "2026-03-10")
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.Name != "Milk" {
		t.Errorf("name = %q, want %q", item.Name, "Milk")
	}
	if item.Category != "Dairy" {
		t.Errorf("category = %q, want %q", item.Category, "Dairy")
	}
	if item.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", item.Quantity)
	}
	if item.AddedDate != "2026-03-10" {
		t.Errorf("added_date = %q, want %q", item.AddedDate, "2026-03-10")
	}
	if item.Purchased {
		t.Error("expected not purchased")
	}

	got, err := gs.GetItemByID(item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Name != "Milk" {
		t.Errorf("got name = %q, want %q", got.Name, "Milk")
	}

	updated, err := gs.UpdateItem(item.ID, "Skim Milk", "Dairy", 1)
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.Name != "Skim Milk" || updated.Quantity != 1 {
		t.Errorf("updated = %+v, want Skim Milk quantity 1", updated)
	}

	if err := gs.DeleteItem(item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	got, err = gs.GetItemByID(item.ID)
	if err != nil {
		t.Fatalf("get deleted item: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted item")
	}
}

func TestItemGetByIDNotFound(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	got, err := gs.GetItemByID(9999)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent item")
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	gs.CreateItem("Milk", "Dairy", 1, "2026-03-08")
	gs.CreateItem("Bread", "Bakery", 1, "2026-03-09")
	gs.CreateItem("Eggs", "Dairy", 1, "2026-03-10")

	items, err := gs.ListItems()
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	want := []string{"Eggs", "Bread", "Milk"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestItemIDsNotReusedAfterDelete(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	first, _ := gs.CreateItem("Milk", "Dairy", 1, "2026-03-10")
	second, _ := gs.CreateItem("Bread", "Bakery", 1, "2026-03-10")

	if err := gs.DeleteItem(second.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	third, err := gs.CreateItem("Eggs", "Dairy", 1, "2026-03-10")
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if third.ID <= second.ID {
		t.Errorf("id %d reuses or precedes deleted id %d", third.ID, second.ID)
	}
	if third.ID <= first.ID {
		t.Errorf("id %d not monotonic past %d", third.ID, first.ID)
	}
}

func TestSetPurchased(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	item, _ := gs.CreateItem("Milk", "Dairy", 1, "2026-03-10")

	checked, err := gs.SetPurchased(item.ID, true)
	if err != nil {
		t.Fatalf("set purchased: %v", err)
	}
	if !checked.Purchased {
		t.Error("expected purchased = true")
	}

	unchecked, err := gs.SetPurchased(item.ID, false)
	if err != nil {
		t.Fatalf("unset purchased: %v", err)
	}
	if unchecked.Purchased {
		t.Error("expected purchased = false")
	}
}

func TestSetPurchasedNotFound(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	got, err := gs.SetPurchased(9999, true)
	if err != nil {
		t.Fatalf("set purchased: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent item")
	}
}

func TestReplaceNameKeepsOtherFields(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	item, _ := gs.CreateItem("white bread", "Bakery", 3, "2026-03-10")

	replaced, err := gs.ReplaceName(item.ID, "whole wheat bread")
	if err != nil {
		t.Fatalf("replace name: %v", err)
	}
	if replaced.Name != "whole wheat bread" {
		t.Errorf("name = %q, want %q", replaced.Name, "whole wheat bread")
	}
	if replaced.Category != "Bakery" || replaced.Quantity != 3 {
		t.Errorf("replace changed other fields: %+v", replaced)
	}
	if replaced.ID != item.ID {
		t.Errorf("id changed from %d to %d", item.ID, replaced.ID)
	}
}

func TestImportItemPreservesID(t *testing.T) {
	gs := NewGroceryStore(setupTestDB(t))

	err := gs.ImportItem(itemFixture(42, "Milk", true))
	if err != nil {
		t.Fatalf("import item: %v", err)
	}

	got, err := gs.GetItemByID(42)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got == nil {
		t.Fatal("expected imported item")
	}
	if !got.Purchased {
		t.Error("expected purchased flag preserved")
	}

	// New inserts continue past the imported id.
	item, err := gs.CreateItem("Bread", "Bakery", 1, "2026-03-10")
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.ID <= 42 {
		t.Errorf("id %d not past imported id 42", item.ID)
	}
}
