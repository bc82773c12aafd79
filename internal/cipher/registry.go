package cipher

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds an engine from key material, validating it.
type Factory func(key Key) (Engine, error)

// Registration describes a registered engine.
type Registration struct {
	Algorithm   Algorithm
	Description string
	Factory     Factory
}

// Global engine registry
var (
	engineRegistry = make(map[Algorithm]Registration)
	registryMu     sync.RWMutex
)

// Register adds an engine factory to the global registry.
func Register(reg Registration) error {
	if reg.Factory == nil {
		return fmt.Errorf("cannot register nil factory")
	}

	name := Algorithm(strings.ToLower(strings.TrimSpace(string(reg.Algorithm))))
	if name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	reg.Algorithm = name

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := engineRegistry[name]; exists {
		return fmt.Errorf("algorithm %s is already registered", name)
	}

	engineRegistry[name] = reg
	return nil
}

// Lookup retrieves a registration by algorithm name (case-insensitive).
func Lookup(name string) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	reg, exists := engineRegistry[Algorithm(strings.ToLower(strings.TrimSpace(name)))]
	return reg, exists
}

// ParseAlgorithm resolves a user-supplied name to a registered Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	reg, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(algorithmNames(), ", "))
	}
	return reg.Algorithm, nil
}

// NewEngine builds the engine registered for alg.
func NewEngine(alg Algorithm, key Key) (Engine, error) {
	reg, ok := Lookup(string(alg))
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidKey, ErrUnknownAlgorithm, alg)
	}
	return reg.Factory(key)
}

// Algorithms returns all registrations sorted by name.
func Algorithms() []Registration {
	registryMu.RLock()
	defer registryMu.RUnlock()

	regs := make([]Registration, 0, len(engineRegistry))
	for _, reg := range engineRegistry {
		regs = append(regs, reg)
	}

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Algorithm < regs[j].Algorithm
	})

	return regs
}

func algorithmNames() []string {
	regs := Algorithms()
	names := make([]string, len(regs))
	for i, reg := range regs {
		names[i] = string(reg.Algorithm)
	}
	return names
}

// mustRegister is used by the built-in engines' init functions.
func mustRegister(reg Registration) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}
