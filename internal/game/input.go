// internal/game/input.go
//
// Input focus state machine: Unselected, or Selected(clue, cell).
//   - Select moves focus to an editable cell of an unsolved clue.
//   - Key writes an input letter and advances past locked cells; filling the
//     clue submits it and clears focus.
//   - Backspace empties the focused cell and steps back past locked cells.
//   - Enter submits the focused clue when it is full.

package game

// Select focuses cell of clue. Solved clues and locked cells cannot be selected.
func (p *Puzzle) Select(clue, cell int) bool {
	if p.check(clue) != nil || cell < 0 || cell >= len(p.Cells[clue]) {
		return false
	}
	if p.Solved[clue] || p.Cells[clue][cell].Status.Locked() {
		return false
	}
	p.focus = Focus{Active: true, Clue: clue, Cell: cell}
	return true
}

// Deselect clears focus.
func (p *Puzzle) Deselect() { p.focus = Focus{} }

// editable reports whether the focused cell may be written.
func (p *Puzzle) editable() bool {
	f := p.focus
	return f.Active && !p.Solved[f.Clue] && !p.Cells[f.Clue][f.Cell].Status.Locked()
}

// Key writes letter at the focused cell.
func (p *Puzzle) Key(letter rune) Result {
	if !p.editable() {
		return Result{}
	}
	f := p.focus
	p.Cells[f.Clue][f.Cell] = Cell{Letter: letter, Status: CellInput}

	if p.full(f.Clue) {
		p.focus = Focus{}
		return p.Submit(f.Clue)
	}

	p.advance(f.Clue, f.Cell)
	return Result{}
}

// advance moves focus to the first editable cell of clue after cell, or
// clears it when there is none.
func (p *Puzzle) advance(clue, cell int) {
	next := cell + 1
	for next < len(p.Cells[clue]) && p.Cells[clue][next].Status.Locked() {
		next++
	}
	if next < len(p.Cells[clue]) {
		p.focus = Focus{Active: true, Clue: clue, Cell: next}
	} else {
		p.focus = Focus{}
	}
}

// Backspace empties the focused cell and moves to the previous editable cell,
// staying put when there is none.
func (p *Puzzle) Backspace() {
	if !p.editable() {
		return
	}
	f := p.focus
	p.Cells[f.Clue][f.Cell] = Cell{Status: CellEmpty}

	prev := f.Cell - 1
	for prev >= 0 && p.Cells[f.Clue][prev].Status.Locked() {
		prev--
	}
	if prev >= 0 {
		p.focus.Cell = prev
	}
}

// Enter submits the focused clue if every cell has a letter.
func (p *Puzzle) Enter() Result {
	f := p.focus
	if !f.Active || p.Solved[f.Clue] || !p.full(f.Clue) {
		return Result{}
	}
	return p.Submit(f.Clue)
}
