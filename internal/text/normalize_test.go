package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "paris", "PARIS"},
		{"entity umlaut", "Z&uuml;rich", "ZURICH"},
		{"literal accent", "Québec", "QUEBEC"},
		{"numeric entity", "Caf&#233;", "CAFE"},
		{"ampersand", "R&amp;D", "R&D"},
		{"cedilla", "Façade", "FACADE"},
		{"tilde", "São", "SAO"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Answer(tc.raw))
		})
	}
}

func TestAnswerIdentityOnNormalizedInput(t *testing.T) {
	for _, s := range []string{"A", "PARIS", "RIVER", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"} {
		assert.Equal(t, s, Answer(s))
		assert.Equal(t, Answer(s), Answer(Answer(s)))
	}
}

func TestDisplayKeepsCase(t *testing.T) {
	assert.Equal(t, `Which "river" flows through Cairo's center?`,
		Display("Which &quot;river&quot; flows through Cairo&#039;s center?"))
	assert.Equal(t, "Zürich", Display("Z&uuml;rich"))
}

func TestLetter(t *testing.T) {
	r, ok := Letter("q")
	assert.True(t, ok)
	assert.Equal(t, 'Q', r)

	r, ok = Letter("é")
	assert.True(t, ok)
	assert.Equal(t, 'E', r)

	for _, bad := range []string{"", "ab", "1", " ", "-"} {
		_, ok := Letter(bad)
		assert.False(t, ok, "key %q", bad)
	}
}
