package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tfields/pantrymate/internal/handler"
	"github.com/tfields/pantrymate/internal/middleware"
	"github.com/tfields/pantrymate/internal/snapshot"
	"github.com/tfields/pantrymate/internal/store"
	ws "github.com/tfields/pantrymate/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	groceryH    *handler.GroceryHandler
	purchaseH   *handler.PurchaseHandler
	suggestionH *handler.SuggestionHandler
	settingsH   *handler.SettingsHandler
	snapshotH   *handler.SnapshotHandler
	logger      *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	groceryStore := store.NewGroceryStore(db)
	purchaseStore := store.NewPurchaseStore(db)
	settingsStore := store.NewSettingsStore(db)
	snapshotMgr := snapshot.NewManager(groceryStore, purchaseStore, settingsStore)

	return &Server{
		db:          db,
		hub:         hub,
		groceryH:    handler.NewGroceryHandler(groceryStore, hub, logger.With("component", "grocery")),
		purchaseH:   handler.NewPurchaseHandler(purchaseStore, hub, logger.With("component", "purchase")),
		suggestionH: handler.NewSuggestionHandler(groceryStore, purchaseStore, settingsStore, logger.With("component", "suggestions")),
		settingsH:   handler.NewSettingsHandler(settingsStore, hub, logger.With("component", "settings")),
		snapshotH:   handler.NewSnapshotHandler(snapshotMgr, hub, logger.With("component", "snapshot")),
		logger:      logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Grocery list
	mux.HandleFunc("POST /api/items", s.groceryH.CreateItem)
	mux.HandleFunc("GET /api/items", s.groceryH.ListItems)
	mux.HandleFunc("PUT /api/items/{id}", s.groceryH.UpdateItem)
	mux.HandleFunc("DELETE /api/items/{id}", s.groceryH.DeleteItem)
	mux.HandleFunc("POST /api/items/{id}/toggle", s.groceryH.TogglePurchased)
	mux.HandleFunc("POST /api/items/{id}/replace", s.groceryH.ReplaceName)

	// Purchase history
	mux.HandleFunc("POST /api/purchases", s.purchaseH.Commit)
	mux.HandleFunc("GET /api/purchases", s.purchaseH.List)

	// Suggestion feeds
	mux.HandleFunc("GET /api/suggestions/alternatives", s.suggestionH.Alternatives)
	mux.HandleFunc("GET /api/suggestions/missing", s.suggestionH.Missing)
	mux.HandleFunc("GET /api/suggestions/expiring", s.suggestionH.Expiring)

	// Settings
	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PUT /api/settings", s.settingsH.Update)

	// Snapshot document
	mux.HandleFunc("GET /api/export", s.snapshotH.Export)
	mux.HandleFunc("POST /api/import", s.snapshotH.Import)

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
