package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)

	c, err := Load()
	is.NoErr(err)
	is.Equal(c.Port, "5175")
	is.Equal(c.PackSize, 5)
	is.Equal(c.InitialHints, 3)
	is.Equal(c.RevertDelay, time.Second)
	is.Equal(c.QuestionsFile, "")
	is.True(!c.Production())
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("PACK_SIZE", "6")
	t.Setenv("REVERT_DELAY", "250ms")
	t.Setenv("DB_PATH", "")

	c, err := Load()
	is.NoErr(err)
	is.Equal(c.PackSize, 6)
	is.Equal(c.RevertDelay, 250*time.Millisecond)
	is.Equal(c.DBPath, "")
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "wordy.yaml")
	is.NoErr(os.WriteFile(path, []byte("initial_hints: 5\nport: \"8080\"\n"), 0o644))
	t.Setenv("WORDY_CONFIG", path)
	t.Setenv("PORT", "9090")

	c, err := Load()
	is.NoErr(err)
	is.Equal(c.InitialHints, 5)
	is.Equal(c.Port, "9090") // env wins over file
}

func TestInvalid(t *testing.T) {
	is := is.New(t)
	t.Setenv("PACK_SIZE", "0")

	_, err := Load()
	is.True(err != nil)
}
