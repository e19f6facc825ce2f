// Package loader reads the word-list document that feeds the selection
// driver. The document is YAML; because the puzzles this system grew out
// of ship with Spanish word lists, both English and Spanish field names
// are accepted at this boundary. Everything downstream only ever sees
// normalized words.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/palabrota/crucigrama/tier"
	"github.com/palabrota/crucigrama/word"
)

type document struct {
	Title      string    `yaml:"title"`
	Titulo     string    `yaml:"titulo"`
	Difficulty string    `yaml:"difficulty"`
	Dificultad string    `yaml:"dificultad"`
	Words      []rawWord `yaml:"words"`
	Palabras   []rawWord `yaml:"palabras"`
}

type rawWord struct {
	Answer    string `yaml:"answer"`
	Respuesta string `yaml:"respuesta"`
	Palabra   string `yaml:"palabra"`
	Clue      string `yaml:"clue"`
	Pista     string `yaml:"pista"`
}

// Pool is a loaded document after normalization: deduplicated words plus
// the document's metadata.
type Pool struct {
	Title      string
	Difficulty tier.Tier
	Words      []word.Word
}

func Load(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	pool, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pool, nil
}

// Parse decodes and normalizes a word-list document. Entries whose
// answer or clue normalizes to empty are dropped; duplicate answers keep
// their first occurrence. A document with no usable words is an error.
func Parse(r io.Reader) (*Pool, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding word list: %w", err)
	}

	raws := doc.Words
	if len(raws) == 0 {
		raws = doc.Palabras
	}
	words := make([]word.Word, 0, len(raws))
	for _, rw := range raws {
		answer := lo.CoalesceOrEmpty(rw.Answer, rw.Respuesta, rw.Palabra)
		clue := lo.CoalesceOrEmpty(rw.Clue, rw.Pista)
		w, ok := word.Normalize(answer, clue)
		if !ok {
			log.Debug().Str("answer", answer).Msg("dropping unusable word-list entry")
			continue
		}
		words = append(words, w)
	}
	words = word.Dedupe(words)
	if len(words) == 0 {
		return nil, errors.New("word list has no usable words")
	}

	difficulty := tier.Basic
	if raw := lo.CoalesceOrEmpty(doc.Difficulty, doc.Dificultad); raw != "" {
		var err error
		if difficulty, err = tier.Parse(raw); err != nil {
			return nil, err
		}
	}
	return &Pool{
		Title:      lo.CoalesceOrEmpty(doc.Title, doc.Titulo),
		Difficulty: difficulty,
		Words:      words,
	}, nil
}
