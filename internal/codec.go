package internal

import (
	"fmt"
	"strings"

	"cipherriot/internal/cipher"

	"go.uber.org/zap"
)

// Mode selects the direction of Transcode.
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

func (m Mode) String() string {
	if m == ModeDecode {
		return "decode"
	}
	return "encode"
}

// ParseMode accepts the words users type for a direction: e, encode,
// encrypt, d, decode, decrypt (any case).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "encode", "encrypt":
		return ModeEncode, nil
	case "d", "decode", "decrypt":
		return ModeDecode, nil
	}
	return ModeEncode, fmt.Errorf("unknown mode %q (use encode or decode)", s)
}

// Transcode runs text through c in the given mode.
//
// Parameters:
//   - c:    a configured cipher (see cipher.New)
//   - mode: ModeEncode or ModeDecode
//   - text: the message; never logged
//   - log:  receives one debug entry describing the call
//
// Returns the transformed text. Encoding and decoding cannot fail once c is
// built; an unknown mode is the only error.
func Transcode(c *cipher.Cipher, mode Mode, text string, log *zap.Logger) (string, error) {
	var out string
	switch mode {
	case ModeEncode:
		out = c.Encode(text)
	case ModeDecode:
		out = c.Decode(text)
	default:
		return "", fmt.Errorf("unknown mode %d", mode)
	}

	log.Debug("transcoded message",
		zap.String("mode", mode.String()),
		zap.String("algorithm", string(c.Algorithm())),
		zap.Strings("stages", c.Stages()),
		zap.Int("in_len", len([]rune(text))),
		zap.Int("out_len", len([]rune(out))),
	)
	return out, nil
}
