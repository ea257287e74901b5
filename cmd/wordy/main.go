// cmd/wordy/main.go
//
// Terminal client for Wordy. Plays against the same progress store as the
// server (DB_PATH), as the player "local" unless WORDY_PLAYER is set.

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/app"
	"github.com/robalobadob/wordy/internal/config"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	a, err := app.Open(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("close")
		}
	}()

	player := os.Getenv("WORDY_PLAYER")
	if player == "" {
		player = "local"
	}

	completer := readline.NewPrefixCompleter(
		readline.PcItem("categories"),
		readline.PcItem("play", readline.PcItemDynamic(func(string) []string {
			var out []string
			for _, c := range a.Bank.Categories() {
				if strings.ContainsAny(c, " &") {
					c = `"` + c + `"`
				}
				out = append(out, c)
			}
			return out
		})),
		readline.PcItem("select"),
		readline.PcItem("type"),
		readline.PcItem("back"),
		readline.PcItem("enter"),
		readline.PcItem("hint"),
		readline.PcItem("reward"),
		readline.PcItem("next"),
		readline.PcItem("show"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[32mwordy>\033[0m ",
		EOFPrompt:         "quit",
		InterruptPrompt:   "^C",
		AutoComplete:      completer,
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("readline")
	}
	defer l.Close()

	sh := &shell{games: a.Games, player: player, out: l.Stdout()}
	sh.exec(context.Background(), "help")

	ctx := context.Background()
	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return
		}
		quit, err := sh.exec(ctx, strings.TrimSpace(line))
		if err != nil {
			io.WriteString(l.Stderr(), err.Error()+"\n")
			continue
		}
		if quit {
			return
		}
	}
}
