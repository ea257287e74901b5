// internal/httpserver/routes_game.go
//
// HTTP routes for playing a category. Mounted under /game:
//   - POST /game/new            → start a session at the player's saved level
//   - GET  /game/{id}           → current view plus signals raised by timers
//   - POST /game/{id}/select    → focus a cell {clue, cell}
//   - POST /game/{id}/key       → type one key {key}
//   - POST /game/{id}/backspace, /enter, /hint, /next
//   - POST /game/{id}/reward    → grant hints {amount}
//
// Every response is {sessionId, view, signals}. Sessions belong to the player
// that started them; other players get 404.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/game"
	"github.com/robalobadob/wordy/internal/session"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.withSession(func(ss *session.Session, r *http.Request) ([]game.Event, error) {
				return ss.Events(), nil
			}))
			r.Post("/select", s.withSession(handleSelect))
			r.Post("/key", s.withSession(handleKey))
			r.Post("/backspace", s.withSession(func(ss *session.Session, r *http.Request) ([]game.Event, error) {
				return ss.Backspace(), nil
			}))
			r.Post("/enter", s.withSession(func(ss *session.Session, r *http.Request) ([]game.Event, error) {
				return ss.Enter(), nil
			}))
			r.Post("/hint", s.withSession(func(ss *session.Session, r *http.Request) ([]game.Event, error) {
				return ss.Hint(), nil
			}))
			r.Post("/next", s.withSession(func(ss *session.Session, r *http.Request) ([]game.Event, error) {
				return ss.Next(), nil
			}))
			r.Post("/reward", s.withSession(handleReward))
		})
	})
}

// gameRes is the response of every /game route.
type gameRes struct {
	SessionID string       `json:"sessionId"`
	View      session.View `json:"view"`
	Signals   []game.Event `json:"signals"`
}

func writeGame(w http.ResponseWriter, ss *session.Session, events []game.Event) {
	if events == nil {
		events = []game.Event{}
	}
	_ = json.NewEncoder(w).Encode(gameRes{SessionID: ss.ID, View: ss.View(), Signals: events})
}

type newGameReq struct {
	Category string `json:"category"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	ss, events, err := s.games.Start(r.Context(), playerID(r), req.Category)
	if errors.Is(err, session.ErrUnknownCategory) {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("category", req.Category).Msg("start session")
		http.Error(w, `{"error":"start_failed"}`, http.StatusInternalServerError)
		return
	}
	writeGame(w, ss, events)
}

// errBadRequest marks a request body that could not be used.
var errBadRequest = errors.New("bad request")

type sessionHandler func(ss *session.Session, r *http.Request) ([]game.Event, error)

// withSession resolves {id} to a session owned by the caller and runs h.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := s.games.Get(chi.URLParam(r, "id"))
		if err != nil || ss.Player != playerID(r) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		events, err := h(ss, r)
		if err != nil {
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}
		writeGame(w, ss, events)
	}
}

type selectReq struct {
	Clue int `json:"clue"`
	Cell int `json:"cell"`
}

func handleSelect(ss *session.Session, r *http.Request) ([]game.Event, error) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errBadRequest
	}
	_, events := ss.Select(req.Clue, req.Cell)
	return events, nil
}

type keyReq struct {
	Key string `json:"key"`
}

func handleKey(ss *session.Session, r *http.Request) ([]game.Event, error) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errBadRequest
	}
	return ss.Key(req.Key), nil
}

type rewardReq struct {
	Amount int `json:"amount"`
}

func handleReward(ss *session.Session, r *http.Request) ([]game.Event, error) {
	var req rewardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errBadRequest
	}
	return ss.Reward(req.Amount), nil
}
