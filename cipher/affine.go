package cipher

import "fmt"

// ModInverse returns the inverse of a modulo m, computed with the extended
// Euclidean algorithm. The error wraps ErrNotInvertible when m < 1 or
// gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: modulus %d is not positive", ErrNotInvertible, m)
	}
	t, newT := 0, 1
	r, newR := m, mod(a, m)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, fmt.Errorf("%w: a=%d, m=%d", ErrNotInvertible, a, m)
	}
	return mod(t, m), nil
}

// AffineEncrypt maps every letter x of the cleaned text to (a*x + b) mod m.
func AffineEncrypt(text string, a, b int, alphabet *Alphabet) (string, error) {
	m := alphabet.Len()
	// Keys are reduced first so the products below stay within int.
	a, b = mod(a, m), mod(b, m)
	if a == 0 {
		return "", ErrZeroMultiplier
	}
	positions := alphabet.positions(text)
	for i, x := range positions {
		positions[i] = mod(a*x+b, m)
	}
	return alphabet.render(positions), nil
}

// AffineDecrypt inverts AffineEncrypt: x = a^-1 * (y - b) mod m. The
// multiplier must be coprime with the alphabet length.
func AffineDecrypt(ciphertext string, a, b int, alphabet *Alphabet) (string, error) {
	m := alphabet.Len()
	a, b = mod(a, m), mod(b, m)
	if a == 0 {
		return "", ErrZeroMultiplier
	}
	inverse, err := ModInverse(a, m)
	if err != nil {
		return "", err
	}
	positions := alphabet.positions(ciphertext)
	for i, y := range positions {
		positions[i] = mod(inverse*(y-b), m)
	}
	return alphabet.render(positions), nil
}
