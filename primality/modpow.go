package primality

import (
	"fmt"
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// ModPow returns base^exponent mod modulus.
//
// The modulus must be positive and the exponent non-negative; otherwise the
// returned error wraps ErrInvalidArgument. The result always lies in
// [0, modulus), including for negative bases. None of the arguments are
// modified.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive, got %s", ErrInvalidArgument, modulus)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative, got %s", ErrInvalidArgument, exponent)
	}
	return powMod(base, exponent, modulus), nil
}

// powMod is ModPow without argument checks. Callers guarantee modulus > 0
// and exponent >= 0.
func powMod(base, exponent, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	// Mod is Euclidean, so the running square is never negative.
	square := new(big.Int).Mod(base, modulus)
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, square)
			result.Mod(result, modulus)
		}
		square.Mul(square, square)
		square.Mod(square, modulus)
	}
	// A zero exponent never enters the loop; 1 mod 1 must still be 0.
	return result.Mod(result, modulus)
}
