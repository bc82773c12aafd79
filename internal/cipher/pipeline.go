package cipher

import "fmt"

// Config describes one cipher session. New copies what it needs, so the
// caller may reuse or discard cfg afterwards.
type Config struct {
	Algorithm Algorithm
	Key       Key

	// Pad is an optional string of digits; empty disables the pad stage.
	Pad string

	// Blocks enables the block formatting stage.
	Blocks bool
	// Symbols overrides DefaultSymbols for block mode.
	Symbols string
	// Rand overrides the random source for block symbols.
	Rand Rand
}

// Stage is one reversible step of the pipeline. Backward must undo Forward.
type Stage interface {
	Name() string
	Forward(text string) string
	Backward(text string) string
}

// Cipher is a configured encode/decode pipeline. It is immutable and safe
// for concurrent use when its Rand is.
type Cipher struct {
	algorithm Algorithm
	engine    Engine
	blocker   *Blocker
	stages    []Stage
}

// New validates cfg and builds the pipeline:
//
//	encode: substitute -> pad (if Pad != "") -> blocks (if Blocks)
//	decode: blocks -> pad -> substitute, each run backward
//
// Errors wrap ErrInvalidKey, ErrInvalidPad or ErrInvalidSymbols.
func New(cfg Config) (*Cipher, error) {
	alg, err := ParseAlgorithm(string(cfg.Algorithm))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	engine, err := NewEngine(alg, cfg.Key)
	if err != nil {
		return nil, err
	}
	if err := ValidatePad(cfg.Pad); err != nil {
		return nil, err
	}

	c := &Cipher{algorithm: alg, engine: engine}
	c.stages = append(c.stages, substituteStage{engine})
	if cfg.Pad != "" {
		c.stages = append(c.stages, padStage{pad: cfg.Pad})
	}
	if cfg.Blocks {
		bl, err := NewBlocker(cfg.Symbols, cfg.Rand)
		if err != nil {
			return nil, err
		}
		c.blocker = bl
		c.stages = append(c.stages, blockStage{bl})
	}
	return c, nil
}

// Algorithm returns the configured algorithm.
func (c *Cipher) Algorithm() Algorithm { return c.algorithm }

// Engine returns the substitution engine.
func (c *Cipher) Engine() Engine { return c.engine }

// Stages returns the stage names in encode order.
func (c *Cipher) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}

// Encode runs every stage forward.
func (c *Cipher) Encode(plaintext string) string {
	text := Normalize(plaintext)
	for _, s := range c.stages {
		text = s.Forward(text)
	}
	return text
}

// Decode runs every stage backward, last stage first.
func (c *Cipher) Decode(ciphertext string) string {
	text := Normalize(ciphertext)
	for i := len(c.stages) - 1; i >= 0; i-- {
		text = c.stages[i].Backward(text)
	}
	return text
}

// Canonical returns the text Decode(Encode(plaintext)) recovers: the
// normalized plaintext, with block-mode losses applied when blocks are on.
func (c *Cipher) Canonical(plaintext string) string {
	text := Normalize(plaintext)
	if c.blocker != nil {
		text = c.blocker.Canonical(text)
	}
	return text
}

type substituteStage struct {
	engine Engine
}

func (s substituteStage) Name() string { return "substitute(" + string(s.engine.Algorithm()) + ")" }

func (s substituteStage) Forward(text string) string {
	return SubstituteText(s.engine, text, Forward)
}

func (s substituteStage) Backward(text string) string {
	return SubstituteText(s.engine, text, Backward)
}

type padStage struct {
	pad string
}

func (padStage) Name() string { return "pad" }

func (s padStage) Forward(text string) string { return ApplyPad(text, s.pad, Forward) }

func (s padStage) Backward(text string) string { return ApplyPad(text, s.pad, Backward) }

type blockStage struct {
	blocker *Blocker
}

func (blockStage) Name() string { return "blocks" }

func (s blockStage) Forward(text string) string { return s.blocker.ToBlocks(text) }

func (s blockStage) Backward(text string) string { return s.blocker.FromBlocks(text) }
