package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tfields/pantrymate/internal/model"
	"github.com/tfields/pantrymate/internal/store"
	"github.com/tfields/pantrymate/internal/websocket"
)

type PurchaseHandler struct {
	purchaseStore *store.PurchaseStore
	hub           *websocket.Hub
	logger        *slog.Logger
}

func NewPurchaseHandler(ps *store.PurchaseStore, hub *websocket.Hub, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchaseStore: ps, hub: hub, logger: logger}
}

func (h *PurchaseHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Commit records a purchase of an explicit set of list items. The
// caller decides which rows are bought; the server never infers a
// selection from checkbox state.
func (h *PurchaseHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemIDs []int64 `json:"item_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.ItemIDs) == 0 {
		writeError(w, http.StatusBadRequest, "item_ids is required")
		return
	}

	date := time.Now().Format(model.DateLayout)
	record, err := h.purchaseStore.Commit(req.ItemIDs, date)
	if err != nil {
		h.logger.Error("commit purchase", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to commit purchase")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "no matching items")
		return
	}

	h.broadcast(websocket.Message{Entity: "purchase", Action: "created", ID: record.ID})
	writeJSON(w, http.StatusCreated, record)
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.purchaseStore.ListRecords()
	if err != nil {
		h.logger.Error("list purchases", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list purchases")
		return
	}
	if records == nil {
		records = []model.PurchaseRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
