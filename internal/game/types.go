// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - CellStatus: how a cell got its letter (empty/input/hint/revealed/incorrect).
//   - Cell:       one letter slot of a clue's answer.
//   - Signal:     named outcomes emitted to the host (sounds, modals, ads).
//   - Event:      a Signal plus the clue/amount it refers to.
//   - Result:     everything an operation emitted, plus a pending revert.
//   - Focus:      the input cursor (unselected, or a clue/cell pair).

package game

// CellStatus records the provenance of a cell's letter.
type CellStatus string

const (
	CellEmpty     CellStatus = "empty"
	CellInput     CellStatus = "input"
	CellHint      CellStatus = "hint"
	CellRevealed  CellStatus = "revealed"
	CellIncorrect CellStatus = "incorrect"
)

// Locked reports whether a cell with this status holds a confirmed letter
// that input and backspace must not touch.
func (s CellStatus) Locked() bool {
	return s == CellHint || s == CellRevealed
}

// Cell is one position of a clue's answer. Letter is 0 when empty.
type Cell struct {
	Letter rune
	Status CellStatus
}

// Empty reports whether the cell has no letter.
func (c Cell) Empty() bool { return c.Letter == 0 }

// Signal names an outcome the host maps to audio cues, modals, or ad requests.
type Signal string

const (
	SignalCorrectAnswer    Signal = "correct_answer"
	SignalWrongAnswer      Signal = "wrong_answer"
	SignalLevelComplete    Signal = "level_complete"
	SignalCategoryComplete Signal = "category_complete"
	SignalNoHintsAvailable Signal = "no_hints_available"
	SignalAllSolved        Signal = "all_solved"
	SignalNoHintTargets    Signal = "no_hint_targets_in_clue"
	SignalHintUsed         Signal = "hint_used"
	SignalHintGranted      Signal = "hint_granted"
	SignalHintReminder     Signal = "hint_reminder"
	SignalFirstHintNotice  Signal = "first_hint_notice"
)

// Event is one emitted Signal. Clue is -1 when the signal is not about a clue.
type Event struct {
	Signal Signal `json:"signal"`
	Clue   int    `json:"clue"`
	Amount int    `json:"amount,omitempty"`
}

// Result collects the effects of one engine operation.
type Result struct {
	Events []Event
	// Solved lists clue indices that became solved, in cascade order.
	Solved []int
	// Revert is set after a wrong answer; the host applies it after a delay.
	Revert *Revert
}

func (r *Result) emit(s Signal, clue int) {
	r.Events = append(r.Events, Event{Signal: s, Clue: clue})
}

func (r *Result) merge(o Result) {
	r.Events = append(r.Events, o.Events...)
	r.Solved = append(r.Solved, o.Solved...)
	if o.Revert != nil {
		r.Revert = o.Revert
	}
}

// Has reports whether the result emitted s.
func (r Result) Has(s Signal) bool {
	for _, e := range r.Events {
		if e.Signal == s {
			return true
		}
	}
	return false
}

// Revert identifies a pending wrong-answer reset for one clue.
// It goes stale once the clue is submitted again or solved.
type Revert struct {
	Clue int
	gen  uint64
}

// Focus is the input cursor. Clue and Cell are meaningful only when Active.
type Focus struct {
	Active bool `json:"active"`
	Clue   int  `json:"clue"`
	Cell   int  `json:"cell"`
}

// Rand is the random source used for hint selection.
type Rand interface {
	IntN(n int) int
}
