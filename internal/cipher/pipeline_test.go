package cipher

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pipelineMessages = []string{
	"",
	"hello",
	"Attack at dawn!",
	"The quick brown fox jumps over the lazy dog.",
	"Meet me at 10:30 @ the usual place  ",
	"Tabs\tand\nnewlines",
	"ZZZ zzz aaa AAA",
}

func TestPipelineRoundTrip(t *testing.T) {
	for _, reg := range Algorithms() {
		for _, pad := range []string{"", "7", "31415926"} {
			for _, blocks := range []bool{false, true} {
				name := fmt.Sprintf("%s/pad=%q/blocks=%v", reg.Algorithm, pad, blocks)
				t.Run(name, func(t *testing.T) {
					c, err := New(Config{
						Algorithm: reg.Algorithm,
						Key:       DefaultKey(reg.Algorithm),
						Pad:       pad,
						Blocks:    blocks,
						Rand:      rand.New(rand.NewSource(1)),
					})
					require.NoError(t, err)

					for _, msg := range pipelineMessages {
						got := c.Decode(c.Encode(msg))
						assert.Equal(t, c.Canonical(msg), got, "message %q", msg)
					}
				})
			}
		}
	}
}

func TestPipelineRoundTripWithoutOptionsIsExact(t *testing.T) {
	for _, reg := range Algorithms() {
		c, err := New(Config{Algorithm: reg.Algorithm, Key: DefaultKey(reg.Algorithm)})
		require.NoError(t, err)

		for _, msg := range pipelineMessages {
			assert.Equal(t, Normalize(msg), c.Decode(c.Encode(msg)))
		}
	}
}

func TestPipelineStages(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "substitution only",
			cfg:  Config{Algorithm: Atbash},
			want: []string{"substitute(atbash)"},
		},
		{
			name: "with pad",
			cfg:  Config{Algorithm: Caesar, Key: Key{Offset: 3}, Pad: "12"},
			want: []string{"substitute(caesar)", "pad"},
		},
		{
			name: "all stages",
			cfg:  Config{Algorithm: "Keyword", Pad: "9", Blocks: true},
			want: []string{"substitute(keyword)", "pad", "blocks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, c.Stages()); diff != "" {
				t.Errorf("stages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPipelineExactOutput(t *testing.T) {
	c, err := New(Config{
		Algorithm: Caesar,
		Key:       Key{Offset: 3},
		Pad:       "1",
		Blocks:    true,
		Rand:      &seqRand{seq: []int{0}},
	})
	require.NoError(t, err)

	// substitute: "DE F"; pad +1: "EF G"; blocks: "EF@G@".
	assert.Equal(t, "EF@G@", c.Encode("ab c"))
	assert.Equal(t, "AB C", c.Decode("EF@G@"))
	assert.Equal(t, "AB C", c.Decode("ef@g@"))
}

func TestPipelineStageOrderMatters(t *testing.T) {
	c, err := New(Config{Algorithm: Affine, Key: DefaultKey(Affine), Pad: "5"})
	require.NoError(t, err)

	enc := c.Encode("HELLO")
	// Undoing substitution before the pad must not recover the message.
	wrong := ApplyPad(SubstituteText(c.Engine(), enc, Backward), "5", Backward)
	assert.NotEqual(t, "HELLO", wrong)
	assert.Equal(t, "HELLO", c.Decode(enc))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []error
	}{
		{"unknown algorithm", Config{Algorithm: "vigenere"}, []error{ErrInvalidKey, ErrUnknownAlgorithm}},
		{"empty algorithm", Config{}, []error{ErrInvalidKey, ErrUnknownAlgorithm}},
		{"affine bad alpha", Config{Algorithm: Affine, Key: Key{Alpha: 4, Beta: 1}}, []error{ErrInvalidKey}},
		{"affine zero key", Config{Algorithm: Affine}, []error{ErrInvalidKey}},
		{"non-digit pad", Config{Algorithm: Caesar, Pad: "12x"}, []error{ErrInvalidPad}},
		{"letter symbols", Config{Algorithm: Atbash, Blocks: true, Symbols: "AB"}, []error{ErrInvalidSymbols}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, c)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestSymbolsIgnoredWithoutBlocks(t *testing.T) {
	c, err := New(Config{Algorithm: Atbash, Symbols: "AB"})
	require.NoError(t, err)
	assert.Equal(t, "ZYX", c.Encode("abc"))
}

func TestCipherConcurrentUse(t *testing.T) {
	c, err := New(Config{Algorithm: Keyword, Key: DefaultKey(Keyword), Pad: "2718", Blocks: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("worker %d says hello", i)
			assert.Equal(t, c.Canonical(msg), c.Decode(c.Encode(msg)))
		}(i)
	}
	wg.Wait()
}
