package word

import (
	"testing"

	"github.com/matryer/is"
)

func TestNormalize(t *testing.T) {
	is := is.New(t)
	type tc struct {
		answer string
		clue   string
		want   string
		ok     bool
	}
	cases := []tc{
		{"cat", "a feline", "CAT", true},
		{"camión", "vehículo de carga", "CAMION", true},
		{"NIÑO", "persona joven", "NINO", true},
		{"pingüino", "ave antártica", "PINGUINO", true},
		{"e-mail", "correo", "EMAIL", true},
		{"  two words ", "spaces go away", "TWOWORDS", true},
		{"R2D2", "droid", "RD", true},
		{"1234", "only digits", "", false},
		{"cat", "   ", "", false},
		{"", "no answer", "", false},
	}
	for _, c := range cases {
		w, ok := Normalize(c.answer, c.clue)
		is.Equal(ok, c.ok)       // normalization outcome
		is.Equal(w.Answer, c.want)
	}
}

func TestNormalizeTrimsClue(t *testing.T) {
	is := is.New(t)
	w, ok := Normalize("sol", "  estrella del sistema  ")
	is.True(ok)
	is.Equal(w.Clue, "estrella del sistema")
}

func TestDedupeKeepsFirst(t *testing.T) {
	is := is.New(t)
	ws := []Word{
		{Answer: "CAT", Clue: "feline"},
		{Answer: "DOG", Clue: "canine"},
		{Answer: "CAT", Clue: "duplicate"},
	}
	out := Dedupe(ws)
	is.Equal(len(out), 2)
	is.Equal(out[0].Clue, "feline") // first occurrence wins
	is.Equal(out[1].Answer, "DOG")
}
