// Package config loads and saves the cipherriot YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cipherriot/internal"
	"cipherriot/internal/cipher"

	"gopkg.in/yaml.v3"
)

// Config holds all cipherriot configuration. Flags given on the command line
// override the values loaded here.
type Config struct {
	// Algorithm is the default engine: caesar, atbash, affine or keyword.
	Algorithm string `yaml:"algorithm"`

	Caesar  CaesarConfig  `yaml:"caesar"`
	Affine  AffineConfig  `yaml:"affine"`
	Keyword KeywordConfig `yaml:"keyword"`

	// Pad is a string of decimal digits; empty disables the pad stage.
	Pad string `yaml:"pad,omitempty"`

	Blocks        BlocksConfig        `yaml:"blocks"`
	PadPassphrase PadPassphraseConfig `yaml:"pad_passphrase"`
}

// CaesarConfig configures the shift cipher.
type CaesarConfig struct {
	Offset int `yaml:"offset"`
}

// AffineConfig configures the affine cipher.
type AffineConfig struct {
	Alpha int `yaml:"alpha"`
	Beta  int `yaml:"beta"`
}

// KeywordConfig configures the keyword cipher.
type KeywordConfig struct {
	Word string `yaml:"word"`
}

// BlocksConfig configures block mode.
type BlocksConfig struct {
	Enabled bool   `yaml:"enabled"`
	Symbols string `yaml:"symbols,omitempty"`
}

// PadPassphraseConfig holds the Argon2id parameters for --pad-passphrase.
type PadPassphraseConfig struct {
	KDF      string `yaml:"kdf"`
	MemoryMB uint32 `yaml:"memory_mb"`
	Time     uint32 `yaml:"time"`
	Parallel uint8  `yaml:"parallel"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	policy := internal.DefaultPadPolicy()
	return &Config{
		Algorithm: string(cipher.Caesar),
		Caesar:    CaesarConfig{Offset: cipher.DefaultOffset},
		Affine:    AffineConfig{Alpha: cipher.DefaultAlpha, Beta: cipher.DefaultBeta},
		Keyword:   KeywordConfig{Word: cipher.DefaultKeyword},
		Blocks:    BlocksConfig{Symbols: cipher.DefaultSymbols},
		PadPassphrase: PadPassphraseConfig{
			KDF:      policy.KDF,
			MemoryMB: policy.KDFMemMB,
			Time:     policy.KDFTime,
			Parallel: policy.KDFParallel,
		},
	}
}

// DefaultPath returns ~/.config/cipherriot/config.yaml, or a relative
// fallback when the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".cipherriot", "config.yaml")
	}
	return filepath.Join(dir, "cipherriot", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Keys and pads live here, so keep the file private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CIPHERRIOT_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("CIPHERRIOT_KEYWORD"); v != "" {
		c.Keyword.Word = v
	}
	if v := os.Getenv("CIPHERRIOT_PAD"); v != "" {
		c.Pad = v
	}
	if v := os.Getenv("CIPHERRIOT_BLOCKS"); v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid CIPHERRIOT_BLOCKS %q: %w", v, err)
		}
		c.Blocks.Enabled = on
	}
	return nil
}

// Key returns the key for the configured algorithm. Only the fields the
// algorithm reads are filled in.
func (c *Config) Key(alg cipher.Algorithm) cipher.Key {
	switch alg {
	case cipher.Caesar:
		return cipher.Key{Offset: c.Caesar.Offset}
	case cipher.Affine:
		return cipher.Key{Alpha: c.Affine.Alpha, Beta: c.Affine.Beta}
	case cipher.Keyword:
		return cipher.Key{Keyword: c.Keyword.Word}
	}
	return cipher.Key{}
}

// CipherConfig converts the file configuration into a cipher.Config.
func (c *Config) CipherConfig() (cipher.Config, error) {
	alg, err := cipher.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return cipher.Config{}, err
	}
	return cipher.Config{
		Algorithm: alg,
		Key:       c.Key(alg),
		Pad:       c.Pad,
		Blocks:    c.Blocks.Enabled,
		Symbols:   c.Blocks.Symbols,
	}, nil
}

// PadPolicy returns the pad derivation policy.
func (c *Config) PadPolicy() internal.PadPolicy {
	return internal.PadPolicy{
		KDF:         c.PadPassphrase.KDF,
		KDFMemMB:    c.PadPassphrase.MemoryMB,
		KDFTime:     c.PadPassphrase.Time,
		KDFParallel: c.PadPassphrase.Parallel,
	}
}
