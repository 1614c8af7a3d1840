package cipher

import "errors"

// Sentinel errors for cipher operations.
var (
	ErrAlphabetTooShort = errors.New("cipher: alphabet must have at least 2 unique letters")
	ErrNotInvertible    = errors.New("cipher: multiplier is not invertible modulo the alphabet length")
	ErrZeroMultiplier   = errors.New("cipher: multiplier cannot be 0 mod alphabet length")
	ErrEmptyKey         = errors.New("cipher: key must contain at least one letter from the alphabet")
)
