package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordy/internal/bank"
	"github.com/robalobadob/wordy/internal/level"
	"github.com/robalobadob/wordy/internal/progress"
	"github.com/robalobadob/wordy/internal/session"
	"github.com/robalobadob/wordy/internal/store"
)

func newShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	b := bank.New([]bank.Question{
		{Category: "Science & Nature", Question: "River through Cairo?", Answer: "Nile"},
		{Category: "Science & Nature", Question: "Capital of Italy?", Answer: "Rome"},
	})
	w := progress.NewWriter(store.NewMemory())
	t.Cleanup(w.Close)
	m := session.NewManager(level.NewPartitioner(b, 2), w, session.Options{
		InitialHints: 1,
		RevertDelay:  time.Hour,
	})
	t.Cleanup(m.Close)

	var out bytes.Buffer
	return &shell{games: m, player: "local", out: &out}, &out
}

func run(t *testing.T, sh *shell, line string) {
	t.Helper()
	quit, err := sh.exec(context.Background(), line)
	require.NoError(t, err)
	require.False(t, quit)
}

func TestShellPlaysQuotedCategory(t *testing.T) {
	sh, out := newShell(t)

	run(t, sh, `play "Science & Nature"`)
	assert.Contains(t, out.String(), "tip: use hint")
	assert.Contains(t, out.String(), "Science & Nature, level 1/1, hints: 1")

	out.Reset()
	run(t, sh, "select 1 1")
	assert.Contains(t, out.String(), " [_] _ _ _")

	out.Reset()
	run(t, sh, "type nile")
	assert.Contains(t, out.String(), "clue 1 is correct!")
	assert.Contains(t, out.String(), " _ _ _ e")

	out.Reset()
	run(t, sh, "select 2 1")
	run(t, sh, "type rom")
	assert.Contains(t, out.String(), "level complete!")
}

func TestShellWrongAnswerMarksLetters(t *testing.T) {
	sh, out := newShell(t)
	run(t, sh, "play Science & Nature")

	out.Reset()
	run(t, sh, "select 1 1")
	run(t, sh, "type nope")
	assert.Contains(t, out.String(), "clue 1 is wrong")
	assert.Contains(t, out.String(), "N! O! P! E!")
}

func TestShellErrors(t *testing.T) {
	sh, _ := newShell(t)
	ctx := context.Background()

	_, err := sh.exec(ctx, "hint")
	assert.ErrorIs(t, err, errNoGame)

	_, err = sh.exec(ctx, "play Nowhere")
	assert.ErrorIs(t, err, session.ErrUnknownCategory)

	_, err = sh.exec(ctx, `play "unterminated`)
	assert.Error(t, err)

	run(t, sh, "play Science & Nature")
	_, err = sh.exec(ctx, "select one 1")
	assert.Error(t, err)
	_, err = sh.exec(ctx, "dance")
	assert.Error(t, err)

	quit, err := sh.exec(ctx, "quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestShellHintsAndReward(t *testing.T) {
	sh, out := newShell(t)
	run(t, sh, "play Science & Nature")

	out.Reset()
	run(t, sh, "hint")
	assert.Contains(t, out.String(), "hint placed")
	out.Reset()
	run(t, sh, "hint")
	assert.Contains(t, out.String(), "no hints left")
	out.Reset()
	run(t, sh, "reward 2")
	assert.Contains(t, out.String(), "+2 hints")
	assert.Contains(t, out.String(), "hints: 2")
}
