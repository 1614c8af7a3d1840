// Package cipher implements the affine and Vigenere substitution ciphers over
// a configurable alphabet.
//
// Text is normalised before it is transformed: letters are upper-cased and
// every character outside the alphabet is dropped, so the output contains
// alphabet letters only.
package cipher

import (
	"strings"
	"unicode"
)

// DefaultAlphabet is the Latin alphabet used when none is given.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered set of distinct upper-case letters.
type Alphabet struct {
	letters []rune
	index   map[rune]int
}

// PrepareAlphabet builds an Alphabet from s. Letters are upper-cased,
// non-letters and repeats are dropped, and the first occurrence fixes the
// order. At least two distinct letters are required.
func PrepareAlphabet(s string) (*Alphabet, error) {
	a := &Alphabet{index: make(map[rune]int)}
	for _, r := range s {
		up := unicode.ToUpper(r)
		if !unicode.IsLetter(up) {
			continue
		}
		if _, seen := a.index[up]; seen {
			continue
		}
		a.index[up] = len(a.letters)
		a.letters = append(a.letters, up)
	}
	if len(a.letters) < 2 {
		return nil, ErrAlphabetTooShort
	}
	return a, nil
}

// Len returns the number of letters, the modulus of every cipher operation.
func (a *Alphabet) Len() int {
	return len(a.letters)
}

func (a *Alphabet) String() string {
	return string(a.letters)
}

// CleanText upper-cases text and removes every character not in the alphabet.
func CleanText(text string, alphabet *Alphabet) string {
	var b strings.Builder
	for _, r := range text {
		up := unicode.ToUpper(r)
		if _, ok := alphabet.index[up]; ok {
			b.WriteRune(up)
		}
	}
	return b.String()
}

// positions maps the cleaned text to letter indices.
func (a *Alphabet) positions(text string) []int {
	var out []int
	for _, r := range text {
		if i, ok := a.index[unicode.ToUpper(r)]; ok {
			out = append(out, i)
		}
	}
	return out
}

func (a *Alphabet) render(positions []int) string {
	out := make([]rune, len(positions))
	for i, p := range positions {
		out[i] = a.letters[p]
	}
	return string(out)
}

// mod returns the non-negative remainder of x divided by m.
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
