package cipher

import "errors"

// Configuration errors returned (wrapped) by New. Encode and Decode never
// fail once a Cipher has been built.
var (
	// ErrInvalidKey reports algorithm key material outside its valid domain.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidPad reports a pad containing anything other than digits.
	ErrInvalidPad = errors.New("invalid pad")
	// ErrInvalidSymbols reports an unusable block symbol set.
	ErrInvalidSymbols = errors.New("invalid block symbols")
	// ErrUnknownAlgorithm reports an algorithm name with no registered engine.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
