package cipher

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

const (
	// BlockSize is the number of runes per ciphertext group.
	BlockSize = 5
	// DefaultSymbols are the decoy runes standing in for spaces and fill.
	DefaultSymbols = "@#$%&"
)

// Rand picks uniformly in [0, n). *math/rand.Rand satisfies it, which lets
// tests inject a seeded source.
type Rand interface {
	Intn(n int) int
}

// globalRand adapts the package-level math/rand source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// ValidateSymbols checks a custom block symbol set: non-empty, no letters,
// no whitespace, no repeats. Lower-case letters are rejected too because
// they would collide with letters once normalized.
func ValidateSymbols(symbols string) error {
	if symbols == "" {
		return fmt.Errorf("%w: symbol set is empty", ErrInvalidSymbols)
	}
	seen := make(map[rune]bool, len(symbols))
	for _, r := range symbols {
		switch {
		case unicode.IsLetter(r):
			return fmt.Errorf("%w: %q is a letter", ErrInvalidSymbols, r)
		case unicode.IsSpace(r):
			return fmt.Errorf("%w: whitespace is not allowed", ErrInvalidSymbols)
		case seen[r]:
			return fmt.Errorf("%w: %q appears more than once", ErrInvalidSymbols, r)
		}
		seen[r] = true
	}
	return nil
}

// Blocker hides word boundaries and groups text into blocks of BlockSize.
type Blocker struct {
	symbols []rune
	isSym   map[rune]bool
	rnd     Rand
}

// NewBlocker returns a Blocker drawing from symbols (DefaultSymbols when
// empty) with rnd (the global math/rand source when nil).
func NewBlocker(symbols string, rnd Rand) (*Blocker, error) {
	if symbols == "" {
		symbols = DefaultSymbols
	}
	if err := ValidateSymbols(symbols); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	bl := &Blocker{symbols: []rune(symbols), isSym: make(map[rune]bool), rnd: rnd}
	for _, r := range bl.symbols {
		bl.isSym[r] = true
	}
	return bl, nil
}

func (bl *Blocker) pick() rune {
	return bl.symbols[bl.rnd.Intn(len(bl.symbols))]
}

// ToBlocks replaces whitespace with random symbols, fills the end with
// random symbols up to a multiple of BlockSize, and separates the groups
// with single spaces.
func (bl *Blocker) ToBlocks(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			runes[i] = bl.pick()
		}
	}
	for len(runes)%BlockSize != 0 {
		runes = append(runes, bl.pick())
	}

	var b strings.Builder
	b.Grow(len(runes) + len(runes)/BlockSize)
	for i, r := range runes {
		if i > 0 && i%BlockSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FromBlocks removes grouping whitespace, turns every symbol back into a
// space, and trims trailing spaces. Fill symbols and genuine trailing
// spaces cannot be told apart, so both are dropped.
func (bl *Blocker) FromBlocks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			continue
		case bl.isSym[r]:
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Canonical returns what FromBlocks(ToBlocks(text)) yields: whitespace and
// symbols become spaces and trailing spaces are dropped.
func (bl *Blocker) Canonical(text string) string {
	return strings.TrimRight(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || bl.isSym[r] {
			return ' '
		}
		return r
	}, text), " ")
}
