package internal

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// ErrWeakKey is returned when a pad passphrase is too short for the policy.
var ErrWeakKey = errors.New("weak pad passphrase")

// MinPassphraseLen is the shortest pad passphrase accepted without AllowWeak.
const MinPassphraseLen = 12

// PadPolicy defines how a pad passphrase is stretched into pad digits.
//   - If KDF == "argon2id" (default), the passphrase goes through Argon2id so
//     every guess is expensive.
//   - If KDF == "none", the passphrase is expanded with SHA-256 only.
type PadPolicy struct {
	KDF         string // "argon2id" (default) or "none"
	KDFMemMB    uint32 // memory in MB (e.g., 64)
	KDFTime     uint32 // iterations (e.g., 3)
	KDFParallel uint8  // parallelism (e.g., 1)
	AllowWeak   bool   // skip the minimum length check
}

// DefaultPadPolicy returns the recommended pad derivation parameters.
func DefaultPadPolicy() PadPolicy {
	return PadPolicy{
		KDF:         "argon2id",
		KDFMemMB:    64,
		KDFTime:     3,
		KDFParallel: 1,
	}
}

// padSalt keeps derived pads distinct from other uses of the same passphrase.
var padSalt = []byte("CipherRiot/v1/pad/domain-sep")

// DerivePad turns passphrase into a pad of length decimal digits. The same
// passphrase, length and policy always give the same pad, so both parties
// can derive it instead of exchanging digits.
//
// The KDF output seeds a SHA-256 counter-mode stream. Stream bytes >= 250 are
// skipped so that every digit is equally likely.
func DerivePad(passphrase string, length int, policy PadPolicy) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("pad length must be positive, got %d", length)
	}
	passphrase = strings.TrimSpace(passphrase)
	if err := ValidatePassphrase(passphrase, policy); err != nil {
		return "", err
	}

	var seed []byte
	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", "argon2id":
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 64
		}
		time := policy.KDFTime
		if time == 0 {
			time = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}
		seed = argon2.IDKey([]byte(passphrase), padSalt, time, mem*1024, par, 32)

	case "none":
		seed = []byte(passphrase)

	default:
		return "", fmt.Errorf("unknown KDF %q (supported: argon2id, none)", policy.KDF)
	}

	digits := make([]byte, 0, length)
	for ctr := uint32(0); len(digits) < length; ctr++ {
		for _, b := range padBlock(seed, ctr) {
			if b >= 250 {
				continue
			}
			digits = append(digits, '0'+b%10)
			if len(digits) == length {
				break
			}
		}
	}
	return string(digits), nil
}

// ValidatePassphrase enforces MinPassphraseLen unless policy.AllowWeak.
// Errors never echo the passphrase.
func ValidatePassphrase(passphrase string, policy PadPolicy) error {
	if policy.AllowWeak {
		return nil
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(passphrase)); n < MinPassphraseLen {
		return fmt.Errorf("%w: need %d+ characters, got %d", ErrWeakKey, MinPassphraseLen, n)
	}
	return nil
}

// padBlock returns block ctr of the SHA-256 counter-mode stream over seed.
func padBlock(seed []byte, ctr uint32) [sha256.Size]byte {
	buf := make([]byte, len(seed)+4)
	copy(buf, seed)
	binary.BigEndian.PutUint32(buf[len(seed):], ctr)
	return sha256.Sum256(buf)
}
