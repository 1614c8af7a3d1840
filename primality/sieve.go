package primality

// SieveUpTo returns the primes <= limit in increasing order using the sieve of
// Eratosthenes. A limit below 2 yields an empty slice.
func SieveUpTo(limit int) []int {
	if limit < 2 {
		return []int{}
	}

	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}

	var primes []int
	for i, c := range composite {
		if !c {
			primes = append(primes, i)
		}
	}
	return primes
}

