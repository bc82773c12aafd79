package internal

import (
	"fmt"

	"cipherriot/internal/cipher"
)

// EncodeVerified encodes msg with c and immediately decodes the result,
// comparing it with what a round trip must recover (c.Canonical). If the
// comparison fails, an error is returned and no ciphertext is produced.
func EncodeVerified(c *cipher.Cipher, msg string) (string, error) {
	encoded := c.Encode(msg)
	decoded := c.Decode(encoded)

	want := c.Canonical(msg)
	if decoded == want {
		return encoded, nil
	}

	have, exp := []rune(decoded), []rune(want)
	if len(have) != len(exp) {
		return "", fmt.Errorf("round-trip mismatch: decoded length %d != %d", len(have), len(exp))
	}
	for i := range exp {
		if have[i] != exp[i] {
			return "", fmt.Errorf("round-trip mismatch at position %d", i)
		}
	}
	return "", fmt.Errorf("round-trip mismatch")
}

// VerifyRoundTrip is EncodeVerified with the ciphertext discarded.
func VerifyRoundTrip(c *cipher.Cipher, msg string) error {
	_, err := EncodeVerified(c, msg)
	return err
}
