package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand returns its values in order, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestHintNoBudget(t *testing.T) {
	p := newPuzzle("PARIS", "RIVER")

	budget, res := p.Hint(0, &seqRand{vals: []int{0}})

	assert.Equal(t, 0, budget)
	assert.Equal(t, []Event{{Signal: SignalNoHintsAvailable, Clue: -1}}, res.Events)
	assert.Equal(t, "_____", letters(p.Cells[0]))
	assert.Equal(t, "_____", letters(p.Cells[1]))
}

func TestHintRevealsChosenCell(t *testing.T) {
	p := newPuzzle("PARIS", "RIVER")

	budget, res := p.Hint(3, &seqRand{vals: []int{1, 2}})

	assert.Equal(t, 2, budget)
	assert.Equal(t, []Event{{Signal: SignalHintUsed, Clue: 1}}, res.Events)
	assert.Equal(t, Cell{Letter: 'V', Status: CellHint}, p.Cells[1][2])
	assert.Equal(t, "__V__", letters(p.Cells[1]))
}

func TestHintOnlyPicksEmptyCells(t *testing.T) {
	p := newPuzzle("IRON")
	require.True(t, p.Select(0, 0))
	p.Key('I')
	p.Key('R')

	// targets are cells 2 and 3; index 1 picks cell 3.
	_, res := p.Hint(1, &seqRand{vals: []int{0, 1}})
	require.True(t, res.Has(SignalHintUsed))
	assert.Equal(t, "IR_N", letters(p.Cells[0]))
}

func TestHintCompletesClueAndCascades(t *testing.T) {
	p := newPuzzle("AB", "BA")
	require.True(t, p.Select(0, 0))
	p.Key('A')

	budget, res := p.Hint(1, &seqRand{vals: []int{0, 0}})

	assert.Equal(t, 0, budget)
	assert.True(t, res.Has(SignalHintUsed))
	assert.True(t, res.Has(SignalCorrectAnswer))
	assert.True(t, res.Has(SignalLevelComplete))
	assert.Equal(t, []int{0, 1}, res.Solved)
	assert.Equal(t, CellHint, p.Cells[0][1].Status)
	assert.False(t, p.Focus().Active)
}

func TestHintOnFocusedCellMovesFocus(t *testing.T) {
	p := newPuzzle("IRON", "NOON")
	require.True(t, p.Select(0, 1))

	// clue 0, targets 0..3; index 1 picks the focused cell.
	_, res := p.Hint(1, &seqRand{vals: []int{0, 1}})
	require.True(t, res.Has(SignalHintUsed))
	assert.Equal(t, Cell{Letter: 'R', Status: CellHint}, p.Cells[0][1])
	assert.Equal(t, Focus{Active: true, Clue: 0, Cell: 2}, p.Focus())

	p.Key('O')
	assert.Equal(t, "_RO_", letters(p.Cells[0]))
	assert.Equal(t, Focus{Active: true, Clue: 0, Cell: 3}, p.Focus())
}

func TestHintOnFocusedLastCellClearsFocus(t *testing.T) {
	p := newPuzzle("IRON", "NOON")
	require.True(t, p.Select(0, 3))

	_, res := p.Hint(1, &seqRand{vals: []int{0, 3}})
	require.True(t, res.Has(SignalHintUsed))
	assert.Equal(t, "___N", letters(p.Cells[0]))
	assert.False(t, p.Focus().Active)
}

func TestHintAllSolved(t *testing.T) {
	p := newPuzzle("AB")
	typeAnswer(p, 0, "AB")
	require.True(t, p.Complete())

	budget, res := p.Hint(2, &seqRand{vals: []int{0}})
	assert.Equal(t, 2, budget)
	assert.Equal(t, []Event{{Signal: SignalAllSolved, Clue: -1}}, res.Events)
}

func TestHintNoTargetsWhileIncorrect(t *testing.T) {
	p := newPuzzle("AB")
	res := typeAnswer(p, 0, "XY")
	require.NotNil(t, res.Revert)

	budget, res := p.Hint(2, &seqRand{vals: []int{0}})
	assert.Equal(t, 2, budget)
	assert.Equal(t, []Event{{Signal: SignalNoHintTargets, Clue: 0}}, res.Events)
	assert.Equal(t, "XY", letters(p.Cells[0]))
}

func TestCryptoRandInRange(t *testing.T) {
	var r CryptoRand
	for i := 0; i < 100; i++ {
		v := r.IntN(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
