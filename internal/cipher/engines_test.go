package cipher

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeWith(t *testing.T, e Engine, text string) string {
	t.Helper()
	return SubstituteText(e, text, Forward)
}

func decodeWith(t *testing.T, e Engine, text string) string {
	t.Helper()
	return SubstituteText(e, text, Backward)
}

func TestCaesarDefaultOffset(t *testing.T) {
	e := NewCaesar(DefaultOffset)

	assert.Equal(t, "DEF", encodeWith(t, e, "ABC"))
	assert.Equal(t, "ABC", decodeWith(t, e, "DEF"))
	assert.Equal(t, "ABC", encodeWith(t, e, "XYZ"))
}

func TestCaesarOffsetReduction(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		input  string
		want   string
	}{
		{"zero is identity", 0, "HELLO", "HELLO"},
		{"full turn is identity", 26, "HELLO", "HELLO"},
		{"larger than alphabet", 29, "ABC", "DEF"},
		{"negative", -3, "DEF", "ABC"},
		{"large negative", -55, "C", "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewCaesar(tt.offset)
			got := encodeWith(t, e, tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, decodeWith(t, e, got))
		})
	}
}

func TestAtbashSelfInverse(t *testing.T) {
	e := NewAtbash()

	assert.Equal(t, "ZYX", encodeWith(t, e, "ABC"))
	assert.Equal(t, "SVOOL, DLIOW!", encodeWith(t, e, "Hello, World!"))

	for _, msg := range []string{"", "attack at dawn", "The quick brown fox, 1234!", Letters} {
		once := encodeWith(t, e, msg)
		assert.Equal(t, Normalize(msg), encodeWith(t, e, once))
		assert.Equal(t, once, decodeWith(t, e, msg))
	}
}

func TestAffineDefaultKey(t *testing.T) {
	e, err := NewAffine(DefaultAlpha, DefaultBeta)
	require.NoError(t, err)

	// Expected value straight from y = (alpha*x + beta) mod 26.
	var want strings.Builder
	for _, r := range "HELLO" {
		x := int(r - 'A')
		want.WriteByte(Letters[(DefaultAlpha*x+DefaultBeta)%26])
	}

	got := encodeWith(t, e, "HELLO")
	assert.Equal(t, want.String(), got)
	assert.Equal(t, "RCLLA", got)
	assert.Equal(t, "HELLO", decodeWith(t, e, got))
}

func TestAffineInverseTable(t *testing.T) {
	alphas := AffineAlphas()
	require.Len(t, alphas, 12)

	for _, alpha := range alphas {
		inv, ok := affineInverse(alpha)
		require.True(t, ok)
		assert.Equal(t, 1, alpha*inv%26, "alpha %d inverse %d", alpha, inv)
	}
}

func TestAffineAllKeysRoundTrip(t *testing.T) {
	for _, alpha := range AffineAlphas() {
		for _, beta := range []int{0, 1, 8, 25, 26, 100, 1 << 62, math.MaxInt} {
			e, err := NewAffine(alpha, beta)
			require.NoError(t, err)

			reduced, err := NewAffine(alpha, beta%Size)
			require.NoError(t, err)

			enc := encodeWith(t, e, Letters)
			assert.Equal(t, encodeWith(t, reduced, Letters), enc, "alpha=%d beta=%d", alpha, beta)
			assert.Equal(t, Letters, decodeWith(t, e, enc), "alpha=%d beta=%d", alpha, beta)
		}
	}
}

func TestAffineRejectsInvalidKeys(t *testing.T) {
	tests := []struct {
		name        string
		alpha, beta int
	}{
		{"zero alpha", 0, 8},
		{"even alpha", 2, 8},
		{"thirteen", 13, 8},
		{"alpha beyond table", 27, 8},
		{"negative beta", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAffine(tt.alpha, tt.beta)
			require.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestDeriveKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		prefix  string
	}{
		{"default", "KRYPTHOS", "KRYPTHOSABCDEFGIJLMNQUVWXZ"},
		{"lower case with spaces and repeats", "hello world", "HELOWRD"},
		{"digits and punctuation dropped", "a1b2!!a", "AB"},
		{"empty", "", Letters},
		{"only symbols", "123 !?", Letters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveKeyword(tt.keyword)
			assert.True(t, strings.HasPrefix(got, tt.prefix), "got %s", got)
			assertPermutation(t, got)
		})
	}
}

func assertPermutation(t *testing.T, s string) {
	t.Helper()
	require.Len(t, s, Size)
	seen := make(map[rune]bool)
	for _, r := range s {
		_, ok := Index(r)
		require.True(t, ok, "%q is not a letter", r)
		require.False(t, seen[r], "%q repeated in %s", r, s)
		seen[r] = true
	}
}

func TestKeywordEncoding(t *testing.T) {
	e := NewKeyword(DefaultKeyword)
	perm := DeriveKeyword(DefaultKeyword)

	assert.Equal(t, []rune("KRYPTHOSAB"), []rune(perm)[:10])

	// Position 0 maps to the permutation's first letter, not to itself.
	got := encodeWith(t, e, "A")
	assert.Equal(t, string(perm[0]), got)
	assert.NotEqual(t, "A", got)

	assert.Equal(t, perm, Table(e))
	assert.Equal(t, Letters, decodeWith(t, e, perm))
}

func TestEnginesPreserveNonLetters(t *testing.T) {
	affine, err := NewAffine(DefaultAlpha, DefaultBeta)
	require.NoError(t, err)

	engines := []Engine{NewCaesar(7), NewAtbash(), affine, NewKeyword("zebra")}
	input := "0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~\t\né"

	for _, e := range engines {
		t.Run(string(e.Algorithm()), func(t *testing.T) {
			assert.Equal(t, input, encodeWith(t, e, input))
			assert.Equal(t, input, decodeWith(t, e, input))

			mixed := "a-1 b.2"
			enc := encodeWith(t, e, mixed)
			require.Len(t, []rune(enc), len([]rune(mixed)))
			for i, r := range []rune(Normalize(mixed)) {
				if _, ok := Index(r); !ok {
					assert.Equal(t, r, []rune(enc)[i], "position %d", i)
				}
			}
		})
	}
}

func TestEnginesRoundTripPrintableASCII(t *testing.T) {
	var ascii strings.Builder
	for r := rune(0x20); r < 0x7f; r++ {
		ascii.WriteRune(r)
	}
	msg := ascii.String()

	for _, reg := range Algorithms() {
		t.Run(string(reg.Algorithm), func(t *testing.T) {
			e, err := reg.Factory(DefaultKey(reg.Algorithm))
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(msg), decodeWith(t, e, encodeWith(t, e, msg)))
		})
	}
}
