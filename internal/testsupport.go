package internal

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"time"

	"cipherriot/internal/cipher"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SelfTestOptions configures RunSelfTest.
type SelfTestOptions struct {
	// Messages is the number of random messages per case (default 25).
	Messages int
	// Seed makes the run reproducible; 0 seeds from the clock.
	Seed int64
	// Algorithms limits the run; empty means every registered engine.
	Algorithms []cipher.Algorithm
}

// selfTestCase is one algorithm x pad x blocks combination.
type selfTestCase struct {
	algorithm cipher.Algorithm
	pad       bool
	blocks    bool
	passed    int
	total     int
	err       error
}

const selfTestAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 .,;:!?'-@#"

// RunSelfTest builds every selected algorithm with its default key, crossed
// with pad on/off and blocks on/off, pushes random messages through
// VerifyRoundTrip, prints one result line per case to w, and returns the
// number of failed cases.
//
// Algorithms run concurrently; each uses its own random source and cipher,
// and results are printed in a stable order once all have finished.
func RunSelfTest(ctx context.Context, w io.Writer, log *zap.Logger, opts SelfTestOptions) (int, error) {
	if opts.Messages <= 0 {
		opts.Messages = 25
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	algs := opts.Algorithms
	if len(algs) == 0 {
		for _, reg := range cipher.Algorithms() {
			algs = append(algs, reg.Algorithm)
		}
	}

	results := make([][]selfTestCase, len(algs))
	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		g.Go(func() error {
			r := rand.New(rand.NewSource(opts.Seed + int64(i)))
			cases, err := runAlgorithmCases(ctx, alg, r, opts.Messages)
			results[i] = cases
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var all []selfTestCase
	for _, cases := range results {
		all = append(all, cases...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].algorithm < all[j].algorithm })

	failed := 0
	current := cipher.Algorithm("")
	for _, c := range all {
		if c.algorithm != current {
			current = c.algorithm
			fmt.Fprintln(w, Style(fmt.Sprintf("== Self-test: %s ==", current), Bold))
		}

		result := Style("PASSED", Green)
		if c.err != nil {
			result = Style("FAILED", Bold, Red)
			failed++
			log.Warn("self-test case failed",
				zap.String("algorithm", string(c.algorithm)),
				zap.Bool("pad", c.pad),
				zap.Bool("blocks", c.blocks),
				zap.Error(c.err))
		}
		fmt.Fprintf(w, "  pad=%-3s blocks=%-3s Result: %s (%d/%d)\n",
			onOff(c.pad), onOff(c.blocks), result, c.passed, c.total)
	}

	fmt.Fprintf(w, "%s %d, %s %d\n",
		Style("Total cases:", Bold), len(all),
		Style("Failed:", Bold), failed)

	log.Debug("self-test finished",
		zap.Int64("seed", opts.Seed),
		zap.Int("cases", len(all)),
		zap.Int("failed", failed))
	return failed, nil
}

func runAlgorithmCases(ctx context.Context, alg cipher.Algorithm, r *rand.Rand, messages int) ([]selfTestCase, error) {
	var cases []selfTestCase
	for _, pad := range []bool{false, true} {
		for _, blocks := range []bool{false, true} {
			cfg := cipher.Config{
				Algorithm: alg,
				Key:       cipher.DefaultKey(alg),
				Blocks:    blocks,
				Rand:      r,
			}
			if pad {
				cfg.Pad = randomPad(r)
			}
			c, err := cipher.New(cfg)
			if err != nil {
				return nil, fmt.Errorf("self-test %s: %w", alg, err)
			}

			tc := selfTestCase{algorithm: alg, pad: pad, blocks: blocks, total: messages}
			for n := 0; n < messages; n++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if err := VerifyRoundTrip(c, randomMessage(r)); err != nil {
					tc.err = err
					continue
				}
				tc.passed++
			}
			cases = append(cases, tc)
		}
	}
	return cases, nil
}

func randomMessage(r *rand.Rand) string {
	n := 1 + r.Intn(64)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(selfTestAlphabet[r.Intn(len(selfTestAlphabet))])
	}
	return b.String()
}

func randomPad(r *rand.Rand) string {
	n := 1 + r.Intn(8)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
