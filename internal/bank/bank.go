// internal/bank/bank.go
//
// Question bank loading and validation.
//
// Responsibilities:
//   - Read a bank from a file path (JSON or YAML) or fall back to the embedded default.
//   - Decode HTML entities in clue text, normalize answers for comparison.
//   - Reject malformed entries (empty category/question/answer, non-letter answers)
//     with a warning instead of failing the whole load.
//
// Bank format (JSON array, or the same shape in YAML):
//   [{"category": "...", "question": "...", "answer": "..."}]
//
// The bank is read-only after Load; Clue order is the original bank order
// and Clue.ID is the entry's index in the raw file.

package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordy/assets"
	"github.com/robalobadob/wordy/internal/text"
)

var (
	ErrEmptyCategory   = errors.New("bank: empty category")
	ErrEmptyQuestion   = errors.New("bank: empty question")
	ErrEmptyAnswer     = errors.New("bank: empty answer")
	ErrAnswerNotLetter = errors.New("bank: answer contains non-letter characters")
)

// Question is one raw bank record, entity-encoded as stored.
type Question struct {
	Category string `json:"category" yaml:"category"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Clue is a validated bank entry ready for play.
type Clue struct {
	ID       int    // index in the raw bank
	Category string // as stored
	Text     string // decoded display text
	Answer   string // normalized: decoded, diacritics stripped, upper case
}

// Len is the number of cells the clue's answer occupies.
func (c Clue) Len() int { return len([]rune(c.Answer)) }

// Bank holds the validated clues in original order.
type Bank struct {
	clues      []Clue
	categories []string
}

// Load reads the bank at path, or the embedded default when path is empty.
func Load(path string) (*Bank, error) {
	if path == "" {
		data, err := assets.Questions()
		if err != nil {
			return nil, fmt.Errorf("read embedded bank: %w", err)
		}
		qs, err := Parse(data, assets.QuestionsFile)
		if err != nil {
			return nil, err
		}
		return New(qs), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	qs, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return New(qs), nil
}

// Parse decodes raw bank bytes. The format is picked from name's extension:
// .yaml/.yml is YAML, anything else JSON.
func Parse(data []byte, name string) ([]Question, error) {
	var qs []Question
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &qs); err != nil {
			return nil, fmt.Errorf("parse yaml bank %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &qs); err != nil {
			return nil, fmt.Errorf("parse json bank %s: %w", name, err)
		}
	}
	return qs, nil
}

// New validates raw questions and builds a Bank. Invalid entries are logged and skipped.
func New(qs []Question) *Bank {
	b := &Bank{clues: make([]Clue, 0, len(qs))}
	for i, q := range qs {
		c, err := toClue(i, q)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Str("category", q.Category).Msg("skipping bank entry")
			continue
		}
		b.clues = append(b.clues, c)
	}
	b.categories = lo.Uniq(lo.Map(b.clues, func(c Clue, _ int) string { return c.Category }))
	log.Debug().Int("clues", len(b.clues)).Int("rejected", len(qs)-len(b.clues)).Msg("question bank loaded")
	return b
}

func toClue(i int, q Question) (Clue, error) {
	category := strings.TrimSpace(q.Category)
	if category == "" {
		return Clue{}, ErrEmptyCategory
	}
	display := strings.TrimSpace(text.Display(q.Question))
	if display == "" {
		return Clue{}, ErrEmptyQuestion
	}
	answer := text.Answer(q.Answer)
	if answer == "" {
		return Clue{}, ErrEmptyAnswer
	}
	for _, r := range answer {
		if !unicode.IsLetter(r) {
			return Clue{}, fmt.Errorf("%w: %q", ErrAnswerNotLetter, answer)
		}
	}
	return Clue{ID: i, Category: category, Text: display, Answer: answer}, nil
}

// Clues returns all valid clues in bank order.
func (b *Bank) Clues() []Clue { return b.clues }

// Categories returns distinct categories in first-appearance order.
func (b *Bank) Categories() []string { return b.categories }

// InCategory returns the clues of one category in bank order.
func (b *Bank) InCategory(category string) []Clue {
	return lo.Filter(b.clues, func(c Clue, _ int) bool { return c.Category == category })
}

// HasCategory reports whether any valid clue belongs to category.
func (b *Bank) HasCategory(category string) bool {
	return lo.Contains(b.categories, category)
}
