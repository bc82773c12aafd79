package cipher

import "strings"

// Algorithm names a substitution engine.
type Algorithm string

const (
	Caesar  Algorithm = "caesar"
	Atbash  Algorithm = "atbash"
	Affine  Algorithm = "affine"
	Keyword Algorithm = "keyword"
)

// Direction selects encoding (Forward) or decoding (Backward).
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Engine is a bidirectional letter mapping over the fixed alphabet.
type Engine interface {
	// Algorithm returns the engine's registered name.
	Algorithm() Algorithm

	// Substitute maps a single upper-case letter in the given direction.
	// Runes outside the alphabet are returned unchanged.
	Substitute(r rune, dir Direction) rune
}

// Key carries algorithm-specific key material. Fields that do not apply to
// the selected algorithm are ignored.
type Key struct {
	Offset  int    `json:"offset,omitempty"`  // caesar
	Alpha   int    `json:"alpha,omitempty"`   // affine
	Beta    int    `json:"beta,omitempty"`    // affine
	Keyword string `json:"keyword,omitempty"` // keyword
}

// Default key material.
const (
	DefaultOffset  = 3
	DefaultAlpha   = 5
	DefaultBeta    = 8
	DefaultKeyword = "KRYPTHOS"
)

// DefaultKey returns the key material used when the caller has no
// preference. A zero Key is otherwise taken literally.
func DefaultKey(alg Algorithm) Key {
	switch alg {
	case Caesar:
		return Key{Offset: DefaultOffset}
	case Affine:
		return Key{Alpha: DefaultAlpha, Beta: DefaultBeta}
	case Keyword:
		return Key{Keyword: DefaultKeyword}
	}
	return Key{}
}

// SubstituteText normalizes text and maps it rune by rune through e.
// Lengths and positions never change.
func SubstituteText(e Engine, text string, dir Direction) string {
	return strings.Map(func(r rune) rune {
		return e.Substitute(r, dir)
	}, Normalize(text))
}

// Table renders the forward mapping of e: the i-th rune is the cipher
// letter for the i-th plain letter.
func Table(e Engine) string {
	return SubstituteText(e, Letters, Forward)
}
