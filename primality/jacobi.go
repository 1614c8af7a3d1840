package primality

import (
	"fmt"
	"math/big"
)

// Jacobi returns the Jacobi symbol (a/n), one of -1, 0 or 1.
//
// n must be a positive odd integer; otherwise the error wraps
// ErrInvalidArgument. The symbol is 0 exactly when gcd(a, n) != 1. For prime n
// it coincides with the Legendre symbol.
func Jacobi(a, n *big.Int) (int, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return 0, fmt.Errorf("%w: n must be a positive odd integer, got %s", ErrInvalidArgument, n)
	}
	return jacobi(a, n), nil
}

// jacobi is Jacobi without argument checks. n must be positive and odd.
func jacobi(a, n *big.Int) int {
	x := new(big.Int).Mod(a, n)
	m := new(big.Int).Set(n)
	sign := 1

	for x.Sign() != 0 {
		for x.Bit(0) == 0 {
			x.Rsh(x, 1)
			if r := lowBits(m, 7); r == 3 || r == 5 {
				sign = -sign
			}
		}

		// Quadratic reciprocity: (x/m) = (m/x), negated when both are 3 mod 4.
		x, m = m, x
		if lowBits(x, 3) == 3 && lowBits(m, 3) == 3 {
			sign = -sign
		}
		x.Mod(x, m)
	}

	if m.Cmp(bigOne) != 0 {
		return 0
	}
	return sign
}

// lowBits returns x & mask for a positive x and a mask below the word size.
func lowBits(x *big.Int, mask big.Word) big.Word {
	return x.Bits()[0] & mask
}
