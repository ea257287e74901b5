// internal/game/engine.go
//
// Puzzle state and answer resolution for a single level.
// Responsibilities:
//   - Build a fresh grid of empty cells for a level pack.
//   - Check a full clue against its answer.
//   - On a correct answer, cascade: reveal the solved answer's letters in
//     every unsolved clue that shares them, solving clues the reveals complete,
//     until no clue is left to process.
//   - On a wrong answer, flag input cells and hand back a Revert that the host
//     applies after a delay.
//
// Notes:
//   - A Puzzle is not safe for concurrent use; the owning session serializes access.
//   - Hint and revealed cells are written only into empty cells and never change again.

package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/bank"
)

// ErrClueIndex reports a clue index outside the puzzle.
var ErrClueIndex = errors.New("game: clue index out of range")

// Puzzle is the state of one loaded level.
type Puzzle struct {
	Category string
	Level    int
	Clues    []bank.Clue
	Cells    [][]Cell
	Solved   []bool

	answers [][]rune
	gens    []uint64 // per-clue submission counter, used to spot stale reverts
	focus   Focus
}

// New builds the initial state for a level: every cell empty, nothing solved.
func New(category string, level int, clues []bank.Clue) *Puzzle {
	p := &Puzzle{
		Category: category,
		Level:    level,
		Clues:    clues,
		Cells:    make([][]Cell, len(clues)),
		Solved:   make([]bool, len(clues)),
		answers:  make([][]rune, len(clues)),
		gens:     make([]uint64, len(clues)),
	}
	for i, c := range clues {
		p.answers[i] = []rune(c.Answer)
		p.Cells[i] = make([]Cell, len(p.answers[i]))
		for j := range p.Cells[i] {
			p.Cells[i][j] = Cell{Status: CellEmpty}
		}
	}
	return p
}

// Answer returns the normalized answer runes of clue i.
func (p *Puzzle) Answer(i int) []rune { return p.answers[i] }

// Focus returns the current input cursor.
func (p *Puzzle) Focus() Focus { return p.focus }

// Complete reports whether every clue is solved. An empty puzzle is never complete.
func (p *Puzzle) Complete() bool {
	if len(p.Solved) == 0 {
		return false
	}
	for _, s := range p.Solved {
		if !s {
			return false
		}
	}
	return true
}

func (p *Puzzle) check(i int) error {
	if i < 0 || i >= len(p.Clues) {
		return ErrClueIndex
	}
	return nil
}

// full reports whether every cell of clue i has a letter.
func (p *Puzzle) full(i int) bool {
	for _, c := range p.Cells[i] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// spells reports whether clue i's letters equal its answer.
func (p *Puzzle) spells(i int) bool {
	for j, c := range p.Cells[i] {
		if c.Letter != p.answers[i][j] {
			return false
		}
	}
	return true
}

// Submit checks a full clue. Already solved, partially filled, or out of range
// clues are ignored: those come from UI races and are not errors.
func (p *Puzzle) Submit(i int) Result {
	var res Result
	if err := p.check(i); err != nil {
		log.Debug().Err(err).Int("clue", i).Msg("submit ignored")
		return res
	}
	if p.Solved[i] || !p.full(i) {
		return res
	}
	p.gens[i]++

	if p.spells(i) {
		res.emit(SignalCorrectAnswer, i)
		res.Solved = p.cascade(i)
		if p.Complete() {
			res.emit(SignalLevelComplete, -1)
		}
		return res
	}

	for j := range p.Cells[i] {
		if p.Cells[i][j].Status == CellInput {
			p.Cells[i][j].Status = CellIncorrect
		}
	}
	res.emit(SignalWrongAnswer, i)
	res.Revert = &Revert{Clue: i, gen: p.gens[i]}
	return res
}

// cascade marks start solved and propagates its letters. Each clue index is
// processed at most once, so the loop ends after at most len(Clues) rounds.
func (p *Puzzle) cascade(start int) []int {
	var solved []int
	processed := make([]bool, len(p.Clues))
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if processed[cur] {
			continue
		}
		processed[cur] = true
		p.Solved[cur] = true
		solved = append(solved, cur)

		word := p.answers[cur]
		for j := range p.Clues {
			if p.Solved[j] {
				continue
			}
			if p.reveal(j, word) && p.full(j) && p.spells(j) {
				queue = append(queue, j)
			}
		}
	}
	return solved
}

// reveal fills every empty cell of clue j whose answer letter occurs in word.
func (p *Puzzle) reveal(j int, word []rune) bool {
	changed := false
	for _, r := range word {
		for pos, want := range p.answers[j] {
			if want == r && p.Cells[j][pos].Empty() {
				p.Cells[j][pos] = Cell{Letter: r, Status: CellRevealed}
				changed = true
			}
		}
	}
	return changed
}

// Revert applies a delayed wrong-answer reset: every cell of the clue that is
// not a hint or revealed letter is emptied and focus returns to the first
// cleared cell (0 when none). ok is false for a stale revert, which changes nothing.
func (p *Puzzle) Revert(rv Revert) (cell int, ok bool) {
	i := rv.Clue
	if p.check(i) != nil || p.Solved[i] || p.gens[i] != rv.gen {
		return 0, false
	}

	first := -1
	for j, c := range p.Cells[i] {
		if c.Status.Locked() {
			continue
		}
		if first == -1 {
			first = j
		}
		p.Cells[i][j] = Cell{Status: CellEmpty}
	}
	if first == -1 {
		first = 0
	}
	p.focus = Focus{Active: true, Clue: i, Cell: first}
	return first, true
}
