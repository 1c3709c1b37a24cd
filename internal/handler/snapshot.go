package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tfields/pantrymate/internal/snapshot"
	"github.com/tfields/pantrymate/internal/websocket"
)

type SnapshotHandler struct {
	manager *snapshot.Manager
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewSnapshotHandler(m *snapshot.Manager, hub *websocket.Hub, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{manager: m, hub: hub, logger: logger}
}

func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.manager.Export()
	if err != nil {
		h.logger.Error("export snapshot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	var doc snapshot.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.manager.Import(doc); err != nil {
		h.logger.Error("import snapshot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to import")
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(websocket.Message{Entity: "snapshot", Action: "imported"})
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
