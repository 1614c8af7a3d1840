package primality

import "math/big"

// Decompose writes n-1 as d*2^s with d odd and returns s and d.
//
// It is meant for odd n > 3, the only values the Miller-Rabin test passes in.
// For n == 1 it returns (0, 0).
func Decompose(n *big.Int) (int, *big.Int) {
	d := new(big.Int).Sub(n, bigOne)
	if d.Sign() == 0 {
		return 0, d
	}
	s := d.TrailingZeroBits()
	d.Rsh(d, s)
	return int(s), d
}
