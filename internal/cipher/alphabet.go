package cipher

// The fixed alphabet shared by every engine, the pad layer, and the block
// formatter.
//
// Positions are 0..25 (A..Z). Anything outside this set is "not a letter"
// and is passed through untouched by every stage, which is what keeps
// lengths and positions stable across encode and decode.
//
// This file exposes:
//   - Constants: Letters, Size
//   - Lookups:   Index(r) -> (pos, ok), Letter(pos)
//   - Helpers:   Mod(a, n) (true modulo), Normalize(s) (ASCII upper-casing)

const (
	// Letters is the ordered alphabet.
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Size is the number of letters in the alphabet.
	Size = len(Letters)
)

// Index returns the alphabet position of r. Only upper-case A..Z are
// letters; callers normalize first.
func Index(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}

// Letter returns the letter at position pos, reduced modulo Size so any
// integer is accepted.
func Letter(pos int) rune {
	return rune(Letters[Mod(pos, Size)])
}

// Mod returns a mod n in [0, n) for n > 0, unlike Go's % which keeps the
// sign of a.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Normalize upper-cases ASCII a..z and leaves every other rune as is.
func Normalize(s string) string {
	b := []rune(s)
	changed := false
	for i, r := range b {
		if r >= 'a' && r <= 'z' {
			b[i] = r - ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
