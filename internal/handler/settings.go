package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tfields/pantrymate/internal/model"
	"github.com/tfields/pantrymate/internal/store"
	"github.com/tfields/pantrymate/internal/websocket"
)

type SettingsHandler struct {
	settingsStore *store.SettingsStore
	hub           *websocket.Hub
	logger        *slog.Logger
}

func NewSettingsHandler(ss *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsStore: ss, hub: hub, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	autoSuggest, err := h.settingsStore.AutoSuggest()
	if err != nil {
		h.logger.Error("get settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get settings")
		return
	}
	writeJSON(w, http.StatusOK, model.Settings{AutoSuggest: autoSuggest})
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.settingsStore.SetAutoSuggest(req.AutoSuggest); err != nil {
		h.logger.Error("set auto_suggest", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(websocket.Message{Entity: "settings", Action: "updated"})
	}
	writeJSON(w, http.StatusOK, req)
}
