// Package server exposes the GestiX control core over HTTP: health and
// pipeline state, binding management, the fired-action log, a camera stream
// and a landmark WebSocket feed.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/gestix/internal/app"
	"github.com/ayusman/gestix/internal/server/api"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	App       *app.App
}

// Server is the HTTP front of a running App.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a Server around the given App.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App == nil {
		if s.config.StaticDir != "" {
			s.mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
		}
		return
	}

	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.HandleFunc("/api/action", s.handleAction)

	if st := s.config.App.Store(); st != nil {
		bindingHandler := api.NewBindingHandler(st, s.config.App)
		s.mux.Handle("/api/bindings", bindingHandler)
		s.mux.Handle("/api/bindings/", bindingHandler)

		s.mux.Handle("/api/events", api.NewEventsHandler(st))
	}

	if pm := s.config.App.Plugins(); pm != nil {
		s.mux.Handle("/api/plugins", api.NewPluginsHandler(pm))
	}

	if cam := s.config.App.Camera(); cam != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(cam))

		if det := s.config.App.Detector(); det != nil {
			s.mux.Handle("/api/landmarks", NewLandmarksHandler(det, cam))
		}
	}

	if s.config.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleState handles GET requests to /api/state. It peeks at the mailbox
// without consuming, so watching the state does not swallow gestures meant
// for the control loop.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	label, writtenAt := s.config.App.Mailbox().Peek()

	response := map[string]interface{}{
		"running":    s.config.App.Running(),
		"gesture":    label.String(),
		"action":     string(s.config.App.Resolver().Resolve(label)),
		"written_at": writtenAt.UnixMilli(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleAction handles POST requests to /api/action: one consuming poll of
// the mailbox, resolved to an action token. This is the endpoint a remote
// control loop drives at its own tick rate.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	act := s.config.App.PollAction()

	response := map[string]interface{}{
		"action": string(act),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
