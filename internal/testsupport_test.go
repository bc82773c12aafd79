package internal

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"cipherriot/internal/cipher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var builtinAlgorithms = []cipher.Algorithm{cipher.Affine, cipher.Atbash, cipher.Caesar, cipher.Keyword}

func TestRunSelfTest(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	var out bytes.Buffer
	failed, err := RunSelfTest(context.Background(), &out, zap.NewNop(), SelfTestOptions{
		Messages:   10,
		Seed:       42,
		Algorithms: builtinAlgorithms,
	})
	require.NoError(t, err)
	assert.Zero(t, failed)

	report := out.String()
	for _, alg := range builtinAlgorithms {
		assert.Contains(t, report, "== Self-test: "+string(alg)+" ==")
	}
	assert.Equal(t, 16, strings.Count(report, "Result: PASSED (10/10)"))
	assert.NotContains(t, report, "FAILED")
	assert.Contains(t, report, "Total cases: 16, Failed: 0")

	// Headers come out in algorithm order regardless of goroutine scheduling.
	assert.Less(t, strings.Index(report, "affine"), strings.Index(report, "keyword"))
}

func TestRunSelfTestReproducible(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	opts := SelfTestOptions{Messages: 3, Seed: 7, Algorithms: []cipher.Algorithm{cipher.Caesar}}
	var a, b bytes.Buffer
	_, err := RunSelfTest(context.Background(), &a, zap.NewNop(), opts)
	require.NoError(t, err)
	_, err = RunSelfTest(context.Background(), &b, zap.NewNop(), opts)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestRunSelfTestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := RunSelfTest(ctx, &out, zap.NewNop(), SelfTestOptions{Algorithms: builtinAlgorithms})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunSelfTestUnknownAlgorithm(t *testing.T) {
	var out bytes.Buffer
	_, err := RunSelfTest(context.Background(), &out, zap.NewNop(), SelfTestOptions{
		Algorithms: []cipher.Algorithm{"vigenere"},
	})
	assert.ErrorIs(t, err, cipher.ErrUnknownAlgorithm)
}

func TestRandomInputs(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		pad := randomPad(r)
		assert.NoError(t, cipher.ValidatePad(pad))
		assert.NotEmpty(t, pad)

		msg := randomMessage(r)
		assert.NotEmpty(t, msg)
		assert.Empty(t, strings.Trim(msg, selfTestAlphabet))
	}
}

func TestRunSelfTestColorsResults(t *testing.T) {
	SetColorEnabled(true)

	var out bytes.Buffer
	_, err := RunSelfTest(context.Background(), &out, zap.NewNop(), SelfTestOptions{
		Messages:   2,
		Seed:       5,
		Algorithms: []cipher.Algorithm{cipher.Atbash},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out.String(), Style("PASSED", Green)))
	assert.NotContains(t, out.String(), Red)
}
