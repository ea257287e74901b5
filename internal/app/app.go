// Package app assembles the game stack shared by the HTTP server and the
// terminal client: question bank, progress store, level partitioner and
// session manager.
package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/bank"
	"github.com/robalobadob/wordy/internal/config"
	"github.com/robalobadob/wordy/internal/game"
	"github.com/robalobadob/wordy/internal/level"
	"github.com/robalobadob/wordy/internal/progress"
	"github.com/robalobadob/wordy/internal/session"
	"github.com/robalobadob/wordy/internal/store"
)

// App owns every long-lived component.
type App struct {
	Bank   *bank.Bank
	Games  *session.Manager
	writer *progress.Writer
	db     io.Closer // nil for the in-memory store
}

// Open builds the stack from cfg. rng may be nil for the production source.
func Open(cfg *config.Config, rng game.Rand) (*App, error) {
	b, err := bank.Load(cfg.QuestionsFile)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	a := &App{Bank: b}
	var kv store.KV
	if cfg.DBPath == "" {
		log.Info().Msg("DB_PATH empty, progress kept in memory")
		kv = store.NewMemory()
	} else {
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open progress db: %w", err)
		}
		kv, a.db = db, db
	}

	a.writer = progress.NewWriter(kv)
	parts := level.NewPartitioner(b, cfg.PackSize)
	a.Games = session.NewManager(parts, a.writer, session.Options{
		InitialHints: cfg.InitialHints,
		RevertDelay:  cfg.RevertDelay,
		Rand:         rng,
	})

	for _, c := range parts.Categories() {
		log.Debug().Str("category", c).Int("levels", parts.Count(c)).Msg("category ready")
	}
	return a, nil
}

// Close ends sessions, drains pending progress writes and closes the store.
func (a *App) Close() error {
	a.Games.Close()
	a.writer.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
