// internal/game/hint.go
//
// Hint allocation: reveal one random empty cell of one random unsolved clue.

package game

import "lukechampine.com/frand"

// CryptoRand is the production Rand, backed by frand.
type CryptoRand struct{}

// IntN returns a uniform int in [0, n).
func (CryptoRand) IntN(n int) int { return frand.Intn(n) }

// Hint spends one hint from budget and returns the remaining budget.
//
// Nothing changes (and the budget is returned as is) when the budget is
// exhausted, every clue is solved, or the chosen clue has no empty cell;
// each case emits its own signal. A hint that fills the clue's last empty
// cell submits the clue, which may cascade. A hint on the focused cell moves
// focus on to the next editable cell.
func (p *Puzzle) Hint(budget int, rng Rand) (int, Result) {
	var res Result
	if budget <= 0 {
		res.emit(SignalNoHintsAvailable, -1)
		return budget, res
	}

	var unsolved []int
	for i, s := range p.Solved {
		if !s {
			unsolved = append(unsolved, i)
		}
	}
	if len(unsolved) == 0 {
		res.emit(SignalAllSolved, -1)
		return budget, res
	}

	i := unsolved[rng.IntN(len(unsolved))]
	var targets []int
	for j, c := range p.Cells[i] {
		if c.Empty() {
			targets = append(targets, j)
		}
	}
	if len(targets) == 0 {
		res.emit(SignalNoHintTargets, i)
		return budget, res
	}

	pos := targets[rng.IntN(len(targets))]
	p.Cells[i][pos] = Cell{Letter: p.answers[i][pos], Status: CellHint}
	budget--
	res.emit(SignalHintUsed, i)

	if f := p.focus; f.Active && f.Clue == i && f.Cell == pos {
		p.advance(i, pos)
	}
	if p.full(i) {
		if p.focus.Active && p.focus.Clue == i {
			p.focus = Focus{}
		}
		res.merge(p.Submit(i))
	}
	return budget, res
}
