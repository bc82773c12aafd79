package cipher

import "fmt"

// affineKeys lists every alpha coprime with 26 next to its modular inverse.
var affineKeys = [...]struct{ alpha, inv int }{
	{1, 1}, {3, 9}, {5, 21}, {7, 15}, {9, 3}, {11, 19},
	{15, 7}, {17, 23}, {19, 11}, {21, 5}, {23, 17}, {25, 25},
}

// AffineAlphas returns the valid first keys for the Affine cipher.
func AffineAlphas() []int {
	out := make([]int, len(affineKeys))
	for i, k := range affineKeys {
		out[i] = k.alpha
	}
	return out
}

// affineInverse looks up the modular inverse of alpha mod 26.
func affineInverse(alpha int) (int, bool) {
	for _, k := range affineKeys {
		if k.alpha == alpha {
			return k.inv, true
		}
	}
	return 0, false
}

// affineEngine encodes y = (alpha*x + beta) mod 26 and decodes
// x = (inv*(y - beta)) mod 26.
type affineEngine struct {
	alpha, inv, beta int
}

// NewAffine returns an Affine engine. alpha must be one of AffineAlphas and
// beta must be non-negative. beta is stored reduced mod 26 so the products in
// Substitute stay small for any beta.
func NewAffine(alpha, beta int) (Engine, error) {
	inv, ok := affineInverse(alpha)
	if !ok {
		return nil, fmt.Errorf("%w: affine alpha %d is not coprime with 26 (valid: %v)", ErrInvalidKey, alpha, AffineAlphas())
	}
	if beta < 0 {
		return nil, fmt.Errorf("%w: affine beta must be non-negative, got %d", ErrInvalidKey, beta)
	}
	return &affineEngine{alpha: alpha, inv: inv, beta: Mod(beta, Size)}, nil
}

func (e *affineEngine) Algorithm() Algorithm { return Affine }

func (e *affineEngine) Substitute(r rune, dir Direction) rune {
	x, ok := Index(r)
	if !ok {
		return r
	}
	if dir == Backward {
		return Letter(e.inv * (x - e.beta))
	}
	return Letter(e.alpha*x + e.beta)
}

func init() {
	mustRegister(Registration{
		Algorithm:   Affine,
		Description: "Map x to (alpha*x + beta) mod 26 (default alpha 5, beta 8)",
		Factory: func(key Key) (Engine, error) {
			return NewAffine(key.Alpha, key.Beta)
		},
	})
}
