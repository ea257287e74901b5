// internal/session/view.go
//
// View is the client-facing snapshot of a session. Answers are never
// included; a clue's letters are visible only through its cells.

package session

import "github.com/robalobadob/wordy/internal/game"

// CellView is one rendered cell.
type CellView struct {
	Letter string          `json:"letter"`
	Status game.CellStatus `json:"status"`
}

// ClueView is one rendered clue row.
type ClueView struct {
	Text   string     `json:"text"`
	Length int        `json:"length"`
	Solved bool       `json:"solved"`
	Cells  []CellView `json:"cells"`
}

// View is a full session snapshot.
type View struct {
	SessionID string     `json:"sessionId"`
	Category  string     `json:"category"`
	Level     int        `json:"level"`
	Levels    int        `json:"levels"`
	Hints     int        `json:"hints"`
	Complete  bool       `json:"complete"`
	Focus     game.Focus `json:"focus"`
	Clues     []ClueView `json:"clues"`
}

// View snapshots the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.puzzle
	v := View{
		SessionID: s.ID,
		Category:  s.Category,
		Level:     s.level,
		Levels:    s.parts.Count(s.Category),
		Hints:     s.hints,
		Complete:  p.Complete(),
		Focus:     p.Focus(),
		Clues:     make([]ClueView, len(p.Clues)),
	}
	for i, c := range p.Clues {
		cells := make([]CellView, len(p.Cells[i]))
		for j, cell := range p.Cells[i] {
			cells[j] = CellView{Status: cell.Status}
			if !cell.Empty() {
				cells[j].Letter = string(cell.Letter)
			}
		}
		v.Clues[i] = ClueView{Text: c.Text, Length: len(cells), Solved: p.Solved[i], Cells: cells}
	}
	return v
}
