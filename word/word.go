// Package word holds the normalized answer/clue pairs everything else
// consumes. Raw input comes from word-list documents that may be typed in
// Spanish with accents; normalization folds all of that down to plain A-Z
// answers so the placement engine never has to think about encodings.
package word

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// A Word is a single answer/clue pair. The answer contains only the
// letters A-Z; construction goes through Normalize, so anything else
// never reaches the core.
type Word struct {
	Answer string
	Clue   string
}

// Decompose, drop combining marks, recompose. Turns CAMIÓN into CAMION
// and leaves ASCII untouched.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize builds a Word from raw input. The answer is uppercased, has
// its diacritics folded out and every remaining non A-Z rune removed; the
// clue is whitespace-trimmed. ok is false when either side comes out
// empty, which callers treat as "discard this entry".
func Normalize(answer, clue string) (Word, bool) {
	folded, _, err := transform.String(stripMarks, answer)
	if err != nil {
		folded = answer
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(folded) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	w := Word{Answer: b.String(), Clue: strings.TrimSpace(clue)}
	if w.Answer == "" || w.Clue == "" {
		return Word{}, false
	}
	return w, true
}

// Dedupe keeps the first Word seen for each answer.
func Dedupe(ws []Word) []Word {
	return lo.UniqBy(ws, func(w Word) string { return w.Answer })
}
