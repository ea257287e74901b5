// Package progress provides typed, per-player access to persisted game
// progress and settings over a store.KV.
//
// Reads never fail: a missing or unreadable value falls back to its default
// (level 1, hint notice not shown, music on at half volume) and the failure is
// logged. Writes go through a Writer and do not block gameplay.
package progress

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordy/internal/store"
)

const (
	musicEnabledKey = "isMusicEnabled"
	musicVolumeKey  = "musicVolume"
)

// categoryKey strips " & " the same way for every per-category key.
func categoryKey(prefix, category string) string {
	return prefix + strings.ReplaceAll(category, " & ", "_")
}

// LevelKey is the store key holding a category's next level.
func LevelKey(category string) string { return categoryKey("level_", category) }

// FirstHintKey is the store key of a category's first-time hint notice flag.
func FirstHintKey(category string) string { return categoryKey("first_time_hint_", category) }

// Settings are the player's audio preferences.
type Settings struct {
	MusicEnabled bool    `json:"musicEnabled"`
	Volume       float64 `json:"volume"`
}

// DefaultSettings is used until the player saves settings.
func DefaultSettings() Settings {
	return Settings{MusicEnabled: true, Volume: 0.5}
}

// Tracker reads and writes one player's keys.
type Tracker struct {
	w  *Writer
	ns string
}

// NewTracker scopes keys to player. An empty player uses unprefixed keys.
func NewTracker(w *Writer, player string) *Tracker {
	ns := ""
	if player != "" {
		ns = "player:" + player + ":"
	}
	return &Tracker{w: w, ns: ns}
}

func (t *Tracker) get(ctx context.Context, key string) (string, bool) {
	v, err := t.w.Get(ctx, t.ns+key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("progress read failed, using default")
		}
		return "", false
	}
	return v, true
}

func (t *Tracker) set(key, value string) { t.w.Set(t.ns+key, value) }

// Level returns the saved level for category and whether one was saved.
// Missing, unreadable, or invalid values give level 1.
func (t *Tracker) Level(ctx context.Context, category string) (int, bool) {
	v, ok := t.get(ctx, LevelKey(category))
	if !ok {
		return 1, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Warn().Str("category", category).Str("value", v).Msg("invalid saved level, using 1")
		return 1, true
	}
	return n, true
}

// SetLevel saves the level to resume category at.
func (t *Tracker) SetLevel(category string, level int) {
	t.set(LevelKey(category), strconv.Itoa(level))
}

// FirstHintShown reports whether the first-time hint notice was shown for category.
func (t *Tracker) FirstHintShown(ctx context.Context, category string) bool {
	v, ok := t.get(ctx, FirstHintKey(category))
	return ok && v == "true"
}

// MarkFirstHintShown records that the notice was shown.
func (t *Tracker) MarkFirstHintShown(category string) {
	t.set(FirstHintKey(category), "true")
}

// Settings returns saved settings merged over the defaults.
func (t *Tracker) Settings(ctx context.Context) Settings {
	s := DefaultSettings()
	if v, ok := t.get(ctx, musicEnabledKey); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.MusicEnabled = b
		}
	}
	if v, ok := t.get(ctx, musicVolumeKey); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Volume = clamp(f)
		}
	}
	return s
}

// SaveSettings stores s with the volume clamped to [0, 1].
func (t *Tracker) SaveSettings(s Settings) Settings {
	s.Volume = clamp(s.Volume)
	t.set(musicEnabledKey, strconv.FormatBool(s.MusicEnabled))
	t.set(musicVolumeKey, strconv.FormatFloat(s.Volume, 'f', -1, 64))
	return s
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
