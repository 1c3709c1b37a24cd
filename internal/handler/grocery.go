package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tfields/pantrymate/internal/lexicon"
	"github.com/tfields/pantrymate/internal/model"
	"github.com/tfields/pantrymate/internal/store"
	"github.com/tfields/pantrymate/internal/websocket"
)

type GroceryHandler struct {
	groceryStore *store.GroceryStore
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewGroceryHandler(gs *store.GroceryStore, hub *websocket.Hub, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{groceryStore: gs, hub: hub, logger: logger}
}

func (h *GroceryHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type groceryItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

func (h *GroceryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req groceryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	// Auto-categorize if no category provided
	if req.Category == "" {
		req.Category = lexicon.Categorize(req.Name)
	} else if !model.ValidCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	addedDate := time.Now().Format(model.DateLayout)
	item, err := h.groceryStore.CreateItem(req.Name, req.Category, req.Quantity, addedDate)
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	h.broadcast(websocket.Message{Entity: "item", Action: "created", ID: item.ID})
	writeJSON(w, http.StatusCreated, item)
}

func (h *GroceryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.groceryStore.ListItems()
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.GroceryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GroceryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.groceryStore.GetItemByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req groceryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = existing.Quantity
	}
	if req.Category == "" {
		req.Category = existing.Category
	} else if !model.ValidCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	item, err := h.groceryStore.UpdateItem(id, req.Name, req.Category, req.Quantity)
	if err != nil {
		h.logger.Error("update item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	h.broadcast(websocket.Message{Entity: "item", Action: "updated", ID: id})
	writeJSON(w, http.StatusOK, item)
}

func (h *GroceryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.groceryStore.GetItemByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.groceryStore.DeleteItem(id); err != nil {
		h.logger.Error("delete item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	h.broadcast(websocket.Message{Entity: "item", Action: "deleted", ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// TogglePurchased flips the checked-off flag on a list row. This only
// marks the row; moving it into the purchase history is a separate
// commit operation.
func (h *GroceryHandler) TogglePurchased(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := h.groceryStore.GetItemByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := h.groceryStore.SetPurchased(id, !existing.Purchased)
	if err != nil {
		h.logger.Error("toggle purchased", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle purchased")
		return
	}

	h.broadcast(websocket.Message{Entity: "item", Action: "updated", ID: id})
	writeJSON(w, http.StatusOK, item)
}

// ReplaceName applies a substitution suggestion: the item keeps its id,
// category, and quantity, only the name is overwritten.
func (h *GroceryHandler) ReplaceName(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	existing, err := h.groceryStore.GetItemByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := h.groceryStore.ReplaceName(id, req.Name)
	if err != nil {
		h.logger.Error("replace name", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to replace item")
		return
	}

	h.broadcast(websocket.Message{Entity: "item", Action: "updated", ID: id})
	writeJSON(w, http.StatusOK, item)
}
