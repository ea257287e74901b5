// internal/session/session.go
//
// A Session is one player's run through a category: the loaded level, its
// puzzle state, the hint budget, and pending wrong-answer reverts.
//
// Responsibilities:
//   - Load levels from the partitioner, wrapping to level 1 when the category runs out.
//   - Route input, hint and reward events to the engine, one at a time.
//   - Persist the next level when a level is completed.
//   - Apply wrong-answer reverts after the configured delay, discarding reverts
//     that belong to a replaced puzzle.
//
// Notes:
//   - Every exported method locks the session; events are fully handled before
//     the next one starts.
//   - The hint budget lives only as long as the session.

package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/game"
	"github.com/robalobadob/wordy/internal/level"
	"github.com/robalobadob/wordy/internal/progress"
	"github.com/robalobadob/wordy/internal/text"
)

// Session is one player's active game in a category.
type Session struct {
	ID       string
	Player   string
	Category string

	parts   *level.Partitioner
	tracker *progress.Tracker
	rng     game.Rand
	delay   time.Duration

	mu      sync.Mutex
	level   int
	puzzle  *game.Puzzle
	hints   int
	timers  map[int]*time.Timer // clue -> pending revert
	pending []game.Event        // emitted by timers, handed out with the next call
	closed  bool
}

// load replaces the puzzle with levelNumber, or level 1 if the category is exhausted.
func (s *Session) load(levelNumber int) []game.Event {
	s.stopTimers()

	var events []game.Event
	pack, ok := s.parts.Pack(s.Category, levelNumber)
	if !ok {
		log.Info().Str("category", s.Category).Int("level", levelNumber).Msg("category complete, restarting at level 1")
		events = append(events, game.Event{Signal: game.SignalCategoryComplete, Clue: -1})
		levelNumber = 1
		s.tracker.SetLevel(s.Category, 1)
		pack, _ = s.parts.Pack(s.Category, 1)
	}
	s.level = levelNumber
	s.puzzle = game.New(s.Category, levelNumber, pack)
	return events
}

// apply runs fn against the puzzle and handles its side effects.
func (s *Session) apply(fn func(p *game.Puzzle) game.Result) []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	res := fn(s.puzzle)

	if res.Revert != nil {
		s.schedule(*res.Revert)
	}
	if res.Has(game.SignalLevelComplete) {
		log.Info().Str("category", s.Category).Int("level", s.level).Str("session", s.ID).Msg("level complete")
		s.tracker.SetLevel(s.Category, s.level+1)
	}
	return s.drain(res.Events)
}

// drain prepends timer-emitted events to events.
func (s *Session) drain(events []game.Event) []game.Event {
	if len(s.pending) == 0 {
		return events
	}
	out := append(s.pending, events...)
	s.pending = nil
	return out
}

// schedule arms the delayed revert for a wrong answer, replacing any older one for the clue.
func (s *Session) schedule(rv game.Revert) {
	if t, ok := s.timers[rv.Clue]; ok {
		t.Stop()
	}
	p := s.puzzle
	var t *time.Timer
	t = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.timers[rv.Clue] == t {
			delete(s.timers, rv.Clue)
		}
		if s.closed || s.puzzle != p {
			return
		}
		if _, ok := p.Revert(rv); ok {
			s.pending = append(s.pending, game.Event{Signal: game.SignalHintReminder, Clue: rv.Clue})
		}
	})
	s.timers[rv.Clue] = t
}

func (s *Session) stopTimers() {
	for clue, t := range s.timers {
		t.Stop()
		delete(s.timers, clue)
	}
}

// Select focuses a cell. ok is false when the cell cannot take input.
func (s *Session) Select(clue, cell int) (ok bool, events []game.Event) {
	events = s.apply(func(p *game.Puzzle) game.Result {
		ok = p.Select(clue, cell)
		return game.Result{}
	})
	return ok, events
}

// Key types one character. Keys that are not a single letter are ignored.
func (s *Session) Key(key string) []game.Event {
	letter, ok := text.Letter(key)
	if !ok {
		return s.apply(func(*game.Puzzle) game.Result { return game.Result{} })
	}
	return s.apply(func(p *game.Puzzle) game.Result { return p.Key(letter) })
}

// Backspace clears the focused cell.
func (s *Session) Backspace() []game.Event {
	return s.apply(func(p *game.Puzzle) game.Result {
		p.Backspace()
		return game.Result{}
	})
}

// Enter submits the focused clue.
func (s *Session) Enter() []game.Event {
	return s.apply(func(p *game.Puzzle) game.Result { return p.Enter() })
}

// Hint spends one hint.
func (s *Session) Hint() []game.Event {
	return s.apply(func(p *game.Puzzle) game.Result {
		var res game.Result
		s.hints, res = p.Hint(s.hints, s.rng)
		return res
	})
}

// Reward adds hints granted by a rewarded ad. Non-positive amounts are ignored.
func (s *Session) Reward(amount int) []game.Event {
	return s.apply(func(*game.Puzzle) game.Result {
		if amount <= 0 {
			return game.Result{}
		}
		s.hints += amount
		return game.Result{Events: []game.Event{{Signal: game.SignalHintGranted, Clue: -1, Amount: amount}}}
	})
}

// Next advances to the following level once the current one is complete.
func (s *Session) Next() []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.puzzle.Complete() {
		return s.drain(nil)
	}
	return s.drain(s.load(s.level + 1))
}

// Events returns and clears events emitted since the last call.
func (s *Session) Events() []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drain(nil)
}

// Level is the one-based level being played.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Hints is the remaining hint budget.
func (s *Session) Hints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hints
}

// Close discards pending reverts. Further calls are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimers()
}
