// Package corpus turns tokenized documents into the categorical grids
// the co-occurrence engine consumes. Token identifiers are 1-based;
// 0 is reserved for padding so that short documents can share one
// rectangular matrix.
package corpus

import (
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
)

// Vocabulary assigns stable 1-based identifiers to token strings.
type Vocabulary struct {
	ids    map[string]int
	tokens []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{ids: make(map[string]int)}
}

// Intern returns the identifier for a token, assigning the next free
// identifier on first sight.
func (v *Vocabulary) Intern(tok string) int {
	if id, ok := v.ids[tok]; ok {
		return id
	}
	v.tokens = append(v.tokens, tok)
	id := len(v.tokens)
	v.ids[tok] = id
	return id
}

// ID returns the identifier for a token, if known.
func (v *Vocabulary) ID(tok string) (int, bool) {
	id, ok := v.ids[tok]
	return id, ok
}

// Token returns the string for an identifier, if assigned.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 1 || id > len(v.tokens) {
		return "", false
	}
	return v.tokens[id-1], true
}

// Size returns the number of assigned identifiers.
func (v *Vocabulary) Size() int { return len(v.tokens) }

// BuildMatrix interns every token of every document and lays the
// identifiers out as one grid row per document, zero-padded on the
// right to the longest document.
func BuildMatrix(docs [][]string, v *Vocabulary) (*raster.Grid, error) {
	width := 0
	for _, doc := range docs {
		if len(doc) > width {
			width = len(doc)
		}
	}

	cells := make([][]int, len(docs))
	for i, doc := range docs {
		row := make([]int, width)
		for j, tok := range doc {
			row[j] = v.Intern(tok)
		}
		cells[i] = row
	}

	return raster.New(cells)
}
