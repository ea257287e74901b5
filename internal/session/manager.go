// internal/session/manager.go
//
// Manager owns the live sessions.
// Characteristics:
//   - Sessions keyed by ID; one live session per player (starting a new one
//     closes the previous one, discarding its pending reverts).
//   - Concurrency-safe via RWMutex.
//   - Sessions are lost when the process restarts; progress is not.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/game"
	"github.com/robalobadob/wordy/internal/level"
	"github.com/robalobadob/wordy/internal/progress"
)

var (
	ErrNotFound        = errors.New("session: not found")
	ErrUnknownCategory = errors.New("session: category has no levels")
)

// Options configure new sessions.
type Options struct {
	InitialHints int
	RevertDelay  time.Duration
	Rand         game.Rand // nil: game.CryptoRand
}

// CategoryInfo summarizes a category for one player.
type CategoryInfo struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Levels int    `json:"levels"`
}

// Manager creates and tracks sessions.
type Manager struct {
	parts  *level.Partitioner
	writer *progress.Writer
	opts   Options

	mu       sync.RWMutex
	sessions map[string]*Session // keyed by Session.ID
	byPlayer map[string]string   // player -> live session ID
}

// NewManager constructs a Manager.
func NewManager(parts *level.Partitioner, w *progress.Writer, opts Options) *Manager {
	if opts.Rand == nil {
		opts.Rand = game.CryptoRand{}
	}
	return &Manager{
		parts:    parts,
		writer:   w,
		opts:     opts,
		sessions: make(map[string]*Session),
		byPlayer: make(map[string]string),
	}
}

// Tracker returns the progress tracker for player.
func (m *Manager) Tracker(player string) *progress.Tracker {
	return progress.NewTracker(m.writer, player)
}

// Categories lists every playable category with the player's saved level.
func (m *Manager) Categories(ctx context.Context, player string) []CategoryInfo {
	tr := m.Tracker(player)
	var out []CategoryInfo
	for _, name := range m.parts.Categories() {
		n := m.parts.Count(name)
		if n == 0 {
			continue
		}
		lvl, _ := tr.Level(ctx, name)
		out = append(out, CategoryInfo{Name: name, Level: lvl, Levels: n})
	}
	return out
}

// Start opens a session for player at the saved level of category.
// The returned events include a first-time hint notice on a category's first
// play and CategoryComplete when the saved level is past the last level.
func (m *Manager) Start(ctx context.Context, player, category string) (*Session, []game.Event, error) {
	if m.parts.Count(category) == 0 {
		return nil, nil, ErrUnknownCategory
	}
	tr := m.Tracker(player)

	var events []game.Event
	lvl, saved := tr.Level(ctx, category)
	if !saved && !tr.FirstHintShown(ctx, category) {
		events = append(events, game.Event{Signal: game.SignalFirstHintNotice, Clue: -1})
		tr.MarkFirstHintShown(category)
	}

	s := &Session{
		ID:       uuid.NewString(),
		Player:   player,
		Category: category,
		parts:    m.parts,
		tracker:  tr,
		rng:      m.opts.Rand,
		delay:    m.opts.RevertDelay,
		hints:    m.opts.InitialHints,
		timers:   make(map[int]*time.Timer),
	}
	events = append(events, s.load(lvl)...)

	m.mu.Lock()
	if prev, ok := m.sessions[m.byPlayer[player]]; ok {
		prev.Close()
		delete(m.sessions, prev.ID)
	}
	m.sessions[s.ID] = s
	m.byPlayer[player] = s.ID
	m.mu.Unlock()

	log.Debug().Str("session", s.ID).Str("category", category).Int("level", s.level).Msg("session started")
	return s, events, nil
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.Close()
		delete(m.sessions, id)
	}
	clear(m.byPlayer)
}
