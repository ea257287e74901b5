package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRules(t *testing.T) {
	p := newPuzzle("PARIS", "RIVER")
	p.Cells[1][0] = Cell{Letter: 'R', Status: CellRevealed}
	p.Cells[1][2] = Cell{Letter: 'V', Status: CellHint}

	assert.False(t, p.Select(-1, 0))
	assert.False(t, p.Select(0, 5))
	assert.False(t, p.Select(1, 0))
	assert.False(t, p.Select(1, 2))
	assert.True(t, p.Select(1, 1))
	assert.Equal(t, Focus{Active: true, Clue: 1, Cell: 1}, p.Focus())

	typeAnswer(p, 0, "PARIS")
	assert.False(t, p.Select(0, 0))
}

func TestKeyAdvancesPastLockedCells(t *testing.T) {
	p := newPuzzle("RIVER")
	p.Cells[0][1] = Cell{Letter: 'I', Status: CellRevealed}
	p.Cells[0][2] = Cell{Letter: 'V', Status: CellHint}

	require.True(t, p.Select(0, 0))
	p.Key('R')
	assert.Equal(t, Focus{Active: true, Clue: 0, Cell: 3}, p.Focus())
	assert.Equal(t, Cell{Letter: 'R', Status: CellInput}, p.Cells[0][0])
}

func TestKeyAtEndWithEmptyEarlierCellDeselects(t *testing.T) {
	p := newPuzzle("RIVER")

	require.True(t, p.Select(0, 4))
	res := p.Key('R')

	assert.Empty(t, res.Events)
	assert.False(t, p.Focus().Active)
	assert.Equal(t, "____R", letters(p.Cells[0]))
}

func TestKeyFillingClueSubmitsAndDeselects(t *testing.T) {
	p := newPuzzle("AB")
	require.True(t, p.Select(0, 0))
	p.Key('A')
	res := p.Key('B')

	assert.True(t, res.Has(SignalCorrectAnswer))
	assert.False(t, p.Focus().Active)
}

func TestKeyIgnoredWithoutFocusOrOnLockedCell(t *testing.T) {
	p := newPuzzle("AB")
	assert.Empty(t, p.Key('A').Events)
	assert.Equal(t, "__", letters(p.Cells[0]))

	require.True(t, p.Select(0, 0))
	p.Cells[0][0] = Cell{Letter: 'A', Status: CellHint}
	p.Key('Z')
	assert.Equal(t, Cell{Letter: 'A', Status: CellHint}, p.Cells[0][0])
}

func TestBackspace(t *testing.T) {
	p := newPuzzle("RIVER")
	p.Cells[0][1] = Cell{Letter: 'I', Status: CellRevealed}

	require.True(t, p.Select(0, 0))
	p.Key('R')
	require.Equal(t, 2, p.Focus().Cell)
	p.Key('V')
	require.Equal(t, 3, p.Focus().Cell)

	p.Backspace()
	assert.Equal(t, "RIV__", letters(p.Cells[0]))
	assert.Equal(t, 2, p.Focus().Cell)

	p.Backspace()
	assert.Equal(t, "RI___", letters(p.Cells[0]))
	assert.Equal(t, 0, p.Focus().Cell, "skips the revealed cell")

	p.Backspace()
	assert.Equal(t, "_I___", letters(p.Cells[0]))
	assert.Equal(t, 0, p.Focus().Cell, "stays on the first cell")
	assert.Equal(t, CellRevealed, p.Cells[0][1].Status)
}

func TestEnterResubmitsFullClue(t *testing.T) {
	p := newPuzzle("AB")
	assert.Empty(t, p.Enter().Events, "no focus")

	first := typeAnswer(p, 0, "XY")
	require.True(t, first.Has(SignalWrongAnswer))

	require.True(t, p.Select(0, 0))
	res := p.Enter()
	assert.True(t, res.Has(SignalWrongAnswer))
	require.NotNil(t, res.Revert)

	_, ok := p.Revert(*first.Revert)
	assert.False(t, ok, "older revert is stale after resubmission")
	_, ok = p.Revert(*res.Revert)
	assert.True(t, ok)
	assert.Equal(t, "__", letters(p.Cells[0]))
}
