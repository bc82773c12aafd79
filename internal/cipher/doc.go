// Package cipher implements classical substitution ciphers (Caesar, Atbash,
// Affine, Keyword) behind a single encode/decode pipeline.
//
// # Overview
//
// Every cipher is an Engine: a letter-to-letter mapping over the fixed
// alphabet A..Z. A Cipher wraps the engine with two optional stages:
//   - a numeric pad that shifts each letter by a repeating digit key
//   - block mode, which hides spaces behind decoy symbols and regroups the
//     ciphertext into blocks of five
//
// Encode runs substitute -> pad -> blocks; Decode runs the exact reverse.
//
// # Quick Start
//
//	c, err := cipher.New(cipher.Config{
//	    Algorithm: cipher.Keyword,
//	    Key:       cipher.DefaultKey(cipher.Keyword),
//	    Pad:       "31415",
//	    Blocks:    true,
//	})
//	if err != nil {
//	    // errors.Is(err, cipher.ErrInvalidKey) / ErrInvalidPad / ErrInvalidSymbols
//	}
//	out := c.Encode("Attack at dawn")
//	back := c.Decode(out) // "ATTACK AT DAWN"
//
// # Pass-through
//
// Input is upper-cased (ASCII only). Any rune outside A..Z is copied to the
// output at the same position by every engine and by the pad, so lengths
// never shift.
//
// # Block mode losses
//
// Fill symbols appended to complete the last block look exactly like
// encoded spaces, so trailing spaces do not survive a round trip. Plaintext
// runes that are themselves block symbols come back as spaces. Canonical
// reports the text a round trip actually recovers.
//
// # Thread Safety
//
// The engine registry is guarded by a RWMutex. A Cipher is immutable after
// New; with the default random source it can be shared between goroutines.
//
// These ciphers offer no security whatsoever.
package cipher
