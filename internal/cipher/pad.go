package cipher

import (
	"fmt"
	"strings"
)

// ValidatePad reports whether pad is usable as a numeric pad. The empty pad
// (no pad) is valid. Leading zeros are significant and kept.
func ValidatePad(pad string) error {
	for i, r := range pad {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: character %q at position %d is not a digit", ErrInvalidPad, r, i)
		}
	}
	return nil
}

// ApplyPad shifts every letter of text by the pad digit at its position,
// forward (+) when encoding and backward (-) when decoding, modulo 26.
//
// The pad is repeated cyclically to the rune length of text. Non-letters are
// copied unshifted but still consume their pad position, so the digit used
// for a letter depends only on its position in text. An empty pad returns
// text unchanged. pad must satisfy ValidatePad.
func ApplyPad(text, pad string, dir Direction) string {
	if pad == "" {
		return text
	}

	sign := 1
	if dir == Backward {
		sign = -1
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		shift := int(pad[pos%len(pad)] - '0')
		pos++

		i, ok := Index(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(Letter(i + sign*shift))
	}
	return b.String()
}
