// Package snapshot exports and imports the whole application state as
// one JSON document:
//
//	{"grocery_list": [...], "purchase_history": [...], "settings": {"auto_suggest": bool}}
//
// with all dates as "YYYY-MM-DD" strings. A document missing any field
// loads as empty list, empty history, or auto_suggest enabled.
package snapshot

import (
	"fmt"

	"github.com/tfields/pantrymate/internal/model"
	"github.com/tfields/pantrymate/internal/store"
)

type Document struct {
	GroceryList     []model.GroceryItem    `json:"grocery_list"`
	PurchaseHistory []model.PurchaseRecord `json:"purchase_history"`
	Settings        *model.Settings        `json:"settings,omitempty"`
}

type Manager struct {
	groceries *store.GroceryStore
	purchases *store.PurchaseStore
	settings  *store.SettingsStore
}

func NewManager(gs *store.GroceryStore, ps *store.PurchaseStore, ss *store.SettingsStore) *Manager {
	return &Manager{groceries: gs, purchases: ps, settings: ss}
}

// Export captures the current list, history, and settings.
func (m *Manager) Export() (*Document, error) {
	items, err := m.groceries.ListItems()
	if err != nil {
		return nil, fmt.Errorf("export items: %w", err)
	}
	if items == nil {
		items = []model.GroceryItem{}
	}

	records, err := m.purchases.ListRecords()
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	if records == nil {
		records = []model.PurchaseRecord{}
	}

	autoSuggest, err := m.settings.AutoSuggest()
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	return &Document{
		GroceryList:     items,
		PurchaseHistory: records,
		Settings:        &model.Settings{AutoSuggest: autoSuggest},
	}, nil
}

// Import replaces the current state with the document's contents.
// A nil Settings block means auto_suggest stays enabled.
func (m *Manager) Import(doc Document) error {
	if err := m.groceries.DeleteAll(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := m.purchases.DeleteAll(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	// Insert oldest first so generated ids follow document order.
	for i := len(doc.GroceryList) - 1; i >= 0; i-- {
		if err := m.groceries.ImportItem(doc.GroceryList[i]); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}
	for i := len(doc.PurchaseHistory) - 1; i >= 0; i-- {
		if err := m.purchases.CreateRecord(doc.PurchaseHistory[i]); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}

	autoSuggest := true
	if doc.Settings != nil {
		autoSuggest = doc.Settings.AutoSuggest
	}
	if err := m.settings.SetAutoSuggest(autoSuggest); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}
