// cmd/wordy/shell.go
//
// Command interpreter for the terminal client. Each input line is split with
// shell quoting rules, so multi-word categories can be written as
// play "Science & Nature". Clue and cell numbers are one-based.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/robalobadob/wordy/internal/game"
	"github.com/robalobadob/wordy/internal/session"
)

var errNoGame = errors.New("no game in progress, use: play <category>")

const helpText = `commands:
  categories               list categories and your level in each
  play <category>          start or resume a category
  select <clue> <cell>     focus a cell (one-based)
  type <letters>           type letters at the focus
  back                     backspace
  enter                    submit the focused clue
  hint                     reveal one letter
  reward [n]               add n hints (default 1)
  next                     go to the next level once this one is solved
  show                     redraw the puzzle
  quit`

type shell struct {
	games  *session.Manager
	player string
	out    io.Writer
	cur    *session.Session
}

// exec runs one command line. quit is true when the user asked to leave.
func (sh *shell) exec(ctx context.Context, line string) (quit bool, err error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(sh.out, helpText)
		return false, nil
	case "categories":
		for _, c := range sh.games.Categories(ctx, sh.player) {
			fmt.Fprintf(sh.out, "  %-24s level %d/%d\n", c.Name, c.Level, c.Levels)
		}
		return false, nil
	case "play":
		if len(args) == 0 {
			return false, errors.New("usage: play <category>")
		}
		s, events, err := sh.games.Start(ctx, sh.player, strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		sh.cur = s
		sh.report(events)
		sh.render()
		return false, nil
	}

	if sh.cur == nil {
		return false, errNoGame
	}
	var events []game.Event
	switch cmd {
	case "select":
		if len(args) != 2 {
			return false, errors.New("usage: select <clue> <cell>")
		}
		clue, err1 := strconv.Atoi(args[0])
		cell, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return false, errors.New("clue and cell must be numbers")
		}
		var ok bool
		ok, events = sh.cur.Select(clue-1, cell-1)
		if !ok {
			fmt.Fprintln(sh.out, "that cell cannot be selected")
		}
	case "type":
		for _, r := range strings.Join(args, "") {
			events = append(events, sh.cur.Key(string(r))...)
		}
	case "back":
		events = sh.cur.Backspace()
	case "enter":
		events = sh.cur.Enter()
	case "hint":
		events = sh.cur.Hint()
	case "reward":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return false, errors.New("usage: reward [n]")
			}
			n = v
		}
		events = sh.cur.Reward(n)
	case "next":
		events = sh.cur.Next()
	case "show":
		events = sh.cur.Events()
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	sh.report(events)
	sh.render()
	return false, nil
}

func (sh *shell) report(events []game.Event) {
	for _, e := range events {
		fmt.Fprintln(sh.out, "> "+describe(e))
	}
}

func describe(e game.Event) string {
	switch e.Signal {
	case game.SignalCorrectAnswer:
		return fmt.Sprintf("clue %d is correct!", e.Clue+1)
	case game.SignalWrongAnswer:
		return fmt.Sprintf("clue %d is wrong", e.Clue+1)
	case game.SignalLevelComplete:
		return "level complete! type next to continue"
	case game.SignalCategoryComplete:
		return "category complete! starting again from level 1"
	case game.SignalNoHintsAvailable:
		return "no hints left, try reward"
	case game.SignalAllSolved:
		return "everything is already solved"
	case game.SignalNoHintTargets:
		return fmt.Sprintf("clue %d has no empty cells", e.Clue+1)
	case game.SignalHintUsed:
		return fmt.Sprintf("hint placed in clue %d", e.Clue+1)
	case game.SignalHintGranted:
		return fmt.Sprintf("+%d hints", e.Amount)
	case game.SignalHintReminder:
		return "stuck? a hint reveals one letter"
	case game.SignalFirstHintNotice:
		return "tip: use hint to reveal a letter when you are stuck"
	}
	return string(e.Signal)
}

// render prints the puzzle. The focused cell is bracketed; revealed and hint
// letters are lower case, wrong letters are followed by '!'.
func (sh *shell) render() {
	v := sh.cur.View()
	fmt.Fprintf(sh.out, "%s, level %d/%d, hints: %d\n", v.Category, v.Level, v.Levels, v.Hints)
	for i, c := range v.Clues {
		mark := " "
		if c.Solved {
			mark = "x"
		}
		var b strings.Builder
		for j, cell := range c.Cells {
			s := "_"
			switch cell.Status {
			case game.CellHint, game.CellRevealed:
				s = strings.ToLower(cell.Letter)
			case game.CellIncorrect:
				s = cell.Letter + "!"
			case game.CellInput:
				s = cell.Letter
			}
			if v.Focus.Active && v.Focus.Clue == i && v.Focus.Cell == j {
				s = "[" + s + "]"
			}
			b.WriteString(" " + s)
		}
		fmt.Fprintf(sh.out, "%2d [%s] %s\n   %s\n", i+1, mark, c.Text, b.String())
	}
}
