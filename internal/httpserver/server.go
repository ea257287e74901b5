// internal/httpserver/server.go
//
// HTTP server wiring for the Wordy backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Player identity: every other route runs with a player ID taken from the
//     player cookie, issuing a fresh one when missing or invalid.
//   - Game endpoints: mounted under /game (see routes_game.go).
//   - Category listing and audio settings.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Errors are JSON bodies of the form {"error":"code"}.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordy/internal/session"
)

// Options configure a Server.
type Options struct {
	ClientOrigin string
	TokenSecret  string
	TokenTTL     time.Duration
	SecureCookie bool // production: Secure + SameSite=None
}

// Server bundles the router and the session manager.
type Server struct {
	r     *chi.Mux
	games *session.Manager
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(games *session.Manager, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), games: games, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordy","endpoints":["/health","/categories","POST /game/new","/game/{id}","/settings"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Group(func(r chi.Router) {
		r.Use(s.withPlayer())
		r.Get("/categories", s.handleCategories)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
		s.mountGame(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ---------------------------- categories/settings ---------------------------

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.games.Categories(r.Context(), playerID(r))
	if cats == nil {
		cats = []session.CategoryInfo{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"categories": cats})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.games.Tracker(playerID(r)).Settings(r.Context()))
}

// settingsReq fields are optional; omitted ones keep their saved value.
type settingsReq struct {
	MusicEnabled *bool    `json:"musicEnabled"`
	Volume       *float64 `json:"volume"`
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	tr := s.games.Tracker(playerID(r))
	cur := tr.Settings(r.Context())
	if req.MusicEnabled != nil {
		cur.MusicEnabled = *req.MusicEnabled
	}
	if req.Volume != nil {
		cur.Volume = *req.Volume
	}
	_ = json.NewEncoder(w).Encode(tr.SaveSettings(cur))
}
