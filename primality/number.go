package primality

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseNumber parses a decimal or 0x-prefixed hexadecimal integer with an
// optional leading minus sign.
func ParseNumber(token string) (*big.Int, error) {
	digits := strings.TrimSpace(token)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	// SetString accepts its own sign; only the one handled above is allowed.
	if digits == "" || strings.ContainsAny(digits[:1], "+-") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

// ParseNumbers parses every token, stopping at the first malformed one.
func ParseNumbers(tokens []string) ([]*big.Int, error) {
	numbers := make([]*big.Int, 0, len(tokens))
	for _, token := range tokens {
		n, err := ParseNumber(token)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
