package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tfields/pantrymate/internal/engine"
	"github.com/tfields/pantrymate/internal/lexicon"
	"github.com/tfields/pantrymate/internal/store"
)

// SuggestionHandler serves the three suggestion feeds. Every request
// recomputes from the live list and history, so a suggestion can never
// refer to state that has since changed.
type SuggestionHandler struct {
	groceryStore  *store.GroceryStore
	purchaseStore *store.PurchaseStore
	settingsStore *store.SettingsStore
	logger        *slog.Logger
}

func NewSuggestionHandler(gs *store.GroceryStore, ps *store.PurchaseStore, ss *store.SettingsStore, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{groceryStore: gs, purchaseStore: ps, settingsStore: ss, logger: logger}
}

func (h *SuggestionHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	items, err := h.groceryStore.ListItems()
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load list")
		return
	}

	suggestions := engine.SuggestAlternatives(items, lexicon.Substitutions)
	if suggestions == nil {
		suggestions = []engine.Alternative{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (h *SuggestionHandler) Missing(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settingsStore.AutoSuggest()
	if err != nil {
		h.logger.Error("get auto_suggest", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	items, err := h.groceryStore.ListItems()
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load list")
		return
	}

	history, err := h.purchaseStore.ListRecords()
	if err != nil {
		h.logger.Error("list purchases", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	suggestions := engine.PredictMissing(history, items, time.Now(), enabled, engine.DefaultWindowDays)
	if suggestions == nil {
		suggestions = []engine.MissingItem{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (h *SuggestionHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	items, err := h.groceryStore.ListItems()
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load list")
		return
	}

	alerts := engine.ExpiringItems(items, time.Now(), lexicon.ShelfLife, engine.DefaultShelfLifeDays)
	if alerts == nil {
		alerts = []engine.ExpiryAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
