// Package primality implements probabilistic primality testing over arbitrary
// precision integers.
//
// The package is built from a few small pieces:
//
//   - ModPow: modular exponentiation by repeated squaring
//   - Jacobi: the Jacobi symbol (a/n) computed by binary reduction
//   - Decompose: writes n-1 as d*2^s with d odd
//   - Fermat, SolovayStrassen, MillerRabin: one-sided probabilistic tests
//   - SieveUpTo: the sieve of Eratosthenes for small listings
//
// # Verdicts
//
// All three tests share the same contract. A false result is a certificate that
// n is composite. A true result means n is probably prime; the chance of a
// composite slipping through shrinks with every extra round. The Fermat test is
// intentionally left vulnerable to Carmichael numbers such as 561: any witness
// coprime to a Carmichael number passes.
//
// # Randomness
//
// Witnesses are drawn from a RandomSource. Pass nil to use the process-wide
// source, or NewSeededSource to get a reproducible stream:
//
//	src := primality.NewSeededSource(42)
//	n, _ := primality.ParseNumber("0x1fffffffffffffff")
//	if primality.MillerRabin(n, 20, src) {
//	    fmt.Println(n, "is probably prime")
//	}
//
// A seeded source is owned by the caller and must not be shared between
// goroutines. GlobalSource is safe for concurrent use.
//
// # Error Handling
//
// ModPow and Jacobi reject out-of-domain arguments with an error wrapping
// ErrInvalidArgument. The tests themselves never fail: unusual inputs such as
// 1, 0 or negative numbers are classified by the small-number fast path.
package primality
