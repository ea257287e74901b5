package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/robalobadob/wordy/internal/config"
)

func testConfig(dbPath string) *config.Config {
	return &config.Config{
		DBPath:       dbPath,
		PackSize:     5,
		InitialHints: 3,
		RevertDelay:  time.Second,
	}
}

func TestOpenInMemory(t *testing.T) {
	is := is.New(t)

	a, err := Open(testConfig(""), nil)
	is.NoErr(err)
	defer a.Close()

	cats := a.Games.Categories(context.Background(), "p1")
	is.Equal(len(cats), 2)
	is.Equal(cats[0].Name, "Planet Earth")
	is.Equal(cats[0].Levels, 3)
	is.Equal(cats[1].Name, "Science & Nature")
	is.Equal(cats[1].Levels, 2)
}

func TestProgressSurvivesReopen(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cfg := testConfig(filepath.Join(t.TempDir(), "wordy.db"))

	a, err := Open(cfg, nil)
	is.NoErr(err)
	a.Games.Tracker("p1").SetLevel("Planet Earth", 3)
	is.NoErr(a.Close())

	a, err = Open(cfg, nil)
	is.NoErr(err)
	defer a.Close()

	s, events, err := a.Games.Start(ctx, "p1", "Planet Earth")
	is.NoErr(err)
	is.Equal(len(events), 0) // saved level: no first-time notice
	is.Equal(s.Level(), 3)
}
