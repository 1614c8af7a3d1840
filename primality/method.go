package primality

import (
	"fmt"
	"math/big"
	"strings"
)

// Method identifies one of the probabilistic tests.
type Method int

const (
	MethodFermat Method = iota
	MethodSolovayStrassen
	MethodMillerRabin
)

var methodNames = map[Method]string{
	MethodFermat:          "fermat",
	MethodSolovayStrassen: "solovay-strassen",
	MethodMillerRabin:     "miller-rabin",
}

// Methods returns every test in the order the demo runs them.
func Methods() []Method {
	return []Method{MethodFermat, MethodSolovayStrassen, MethodMillerRabin}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Run applies the test to n. Unknown methods classify every n as composite.
func (m Method) Run(n *big.Int, rounds int, src RandomSource) bool {
	switch m {
	case MethodFermat:
		return Fermat(n, rounds, src)
	case MethodSolovayStrassen:
		return SolovayStrassen(n, rounds, src)
	case MethodMillerRabin:
		return MillerRabin(n, rounds, src)
	default:
		return false
	}
}

// ParseMethod resolves a test name. Matching is case-insensitive and accepts
// the short forms "ss" and "mr".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fermat":
		return MethodFermat, nil
	case "solovay-strassen", "solovay_strassen", "ss":
		return MethodSolovayStrassen, nil
	case "miller-rabin", "miller_rabin", "mr":
		return MethodMillerRabin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
