// assets/embed.go
//
// Embedded runtime data:
//   - questions_db.json: default question bank (used when QUESTIONS_FILE is unset).
//   - sql/*.sql:         SQLite migrations, applied in lexical order.

package assets

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed questions_db.json sql/*.sql
var FS embed.FS

// QuestionsFile is the embedded bank's file name inside FS.
const QuestionsFile = "questions_db.json"

// Questions returns the raw bytes of the embedded question bank.
func Questions() ([]byte, error) {
	return FS.ReadFile(QuestionsFile)
}

// Migration is one embedded SQL script.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded migrations sorted by name.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(FS, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := FS.ReadFile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: n, SQL: string(b)})
	}
	return out, nil
}
