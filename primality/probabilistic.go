package primality

import "math/big"

// screen applies the shared fast path of every test. decided is false when n
// is odd and greater than 3 and trials are needed.
func screen(n *big.Int) (verdict, decided bool) {
	if n.Cmp(bigThree) <= 0 {
		return n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0, true
	}
	if n.Bit(0) == 0 {
		return false, true
	}
	return false, false
}

func coprime(a, n *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, n).Cmp(bigOne) == 0
}

// Fermat runs rounds of the Fermat test on n, drawing each witness from
// [2, n-1). A witness fails when it shares a factor with n or when
// a^(n-1) mod n != 1.
//
// Carmichael numbers pass every coprime witness, so for them only a witness
// that happens to share a factor proves compositeness.
func Fermat(n *big.Int, rounds int, src RandomSource) bool {
	if verdict, decided := screen(n); decided {
		return verdict
	}
	src = sourceOrGlobal(src)

	nMinus1 := new(big.Int).Sub(n, bigOne)
	for i := 0; i < rounds; i++ {
		a := src.Int(bigTwo, nMinus1)
		if !coprime(a, n) {
			return false
		}
		if powMod(a, nMinus1, n).Cmp(bigOne) != 0 {
			return false
		}
	}
	return true
}

// SolovayStrassen runs rounds of the Solovay-Strassen test on n, drawing each
// witness from [2, n-1). A witness fails when it shares a factor with n or
// when a^((n-1)/2) mod n differs from the Jacobi symbol (a/n) taken mod n.
// Each round lets a composite through with probability at most 1/2.
func SolovayStrassen(n *big.Int, rounds int, src RandomSource) bool {
	if verdict, decided := screen(n); decided {
		return verdict
	}
	src = sourceOrGlobal(src)

	nMinus1 := new(big.Int).Sub(n, bigOne)
	half := new(big.Int).Rsh(nMinus1, 1)
	for i := 0; i < rounds; i++ {
		a := src.Int(bigTwo, nMinus1)
		if !coprime(a, n) {
			return false
		}
		symbol := big.NewInt(int64(jacobi(a, n)))
		symbol.Mod(symbol, n)
		if powMod(a, half, n).Cmp(symbol) != 0 {
			return false
		}
	}
	return true
}

// MillerRabin runs rounds of the Miller-Rabin test on n, drawing each witness
// from [2, n-2). Each round lets a composite through with probability at most
// 1/4.
func MillerRabin(n *big.Int, rounds int, src RandomSource) bool {
	if verdict, decided := screen(n); decided {
		return verdict
	}
	src = sourceOrGlobal(src)

	s, d := Decompose(n)
	nMinus1 := new(big.Int).Sub(n, bigOne)
	nMinus2 := new(big.Int).Sub(n, bigTwo)
	for i := 0; i < rounds; i++ {
		a := src.Int(bigTwo, nMinus2)
		if !strongProbablePrime(a, d, s, n, nMinus1) {
			return false
		}
	}
	return true
}

// strongProbablePrime reports whether n passes the strong test to base a,
// where n-1 = d*2^s.
func strongProbablePrime(a, d *big.Int, s int, n, nMinus1 *big.Int) bool {
	x := powMod(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for r := 1; r < s; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
