package cipher

// Vigenere encrypts or decrypts text with a repeating keyword. Each letter of
// the cleaned key is a shift; encryption adds the shift and decryption
// subtracts it, modulo the alphabet length.
func Vigenere(text, key string, alphabet *Alphabet, encrypt bool) (string, error) {
	shifts := alphabet.positions(key)
	if len(shifts) == 0 {
		return "", ErrEmptyKey
	}

	m := alphabet.Len()
	positions := alphabet.positions(text)
	for i, x := range positions {
		k := shifts[i%len(shifts)]
		if encrypt {
			positions[i] = mod(x+k, m)
		} else {
			positions[i] = mod(x-k, m)
		}
	}
	return alphabet.render(positions), nil
}
