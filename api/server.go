package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/wricardo/pong/game/config"
	"github.com/wricardo/pong/game/engine"
	"github.com/wricardo/pong/transport/websocket"
)

// StateSource provides the latest snapshot of the running match.
type StateSource interface {
	MatchID() string
	Latest() (engine.GameState, bool)
}

// Server represents the read-only spectator API
type Server struct {
	feed    StateSource
	hub     *websocket.Hub
	rules   *engine.GameConfig
	configs *config.Manager
	router  *mux.Router
}

// NewServer creates a new API server. configs may be nil, in which case the
// rule set listing routes report 404.
func NewServer(feed StateSource, hub *websocket.Hub, rules *engine.GameConfig, configs *config.Manager) *Server {
	s := &Server{
		feed:    feed,
		hub:     hub,
		rules:   rules,
		configs: configs,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/state", s.handleGetState).Methods("GET")
	api.HandleFunc("/config", s.handleGetRules).Methods("GET")

	// Rule sets on disk
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves the API on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Spectator API listening on %s", addr)
		log.Printf("WebSocket: ws://%s/ws", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, running := s.feed.Latest()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"match_id":   s.feed.MatchID(),
		"running":    running,
		"spectators": s.hub.ClientCount(s.feed.MatchID()),
	})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, ok := s.feed.Latest()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "no frames played yet")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"match_id": s.feed.MatchID(),
		"state":    state,
	})
}

func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.rules)
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	if s.configs == nil {
		respondError(w, http.StatusNotFound, "no config directory")
		return
	}

	configs, err := s.configs.ListConfigs()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if s.configs == nil {
		respondError(w, http.StatusNotFound, "no config directory")
		return
	}

	name := mux.Vars(r)["name"]
	cfg, err := s.configs.LoadConfig(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrConfigNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, config.ErrInvalidConfig) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if match := r.URL.Query().Get("match"); match != "" && match != s.feed.MatchID() {
		respondError(w, http.StatusNotFound, "unknown match")
		return
	}

	s.hub.ServeWS(w, r, s.feed.MatchID())
}
