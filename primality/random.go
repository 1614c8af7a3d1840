package primality

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/big"
	"math/rand"
	"sync"
)

// RandomSource supplies witnesses to the probabilistic tests.
//
// Int returns an integer drawn uniformly from [lo, hi). When hi <= lo the range
// is empty and lo is returned. Implementations must not retain or modify the
// arguments.
type RandomSource interface {
	Int(lo, hi *big.Int) *big.Int
}

// SeededSource is a reproducible RandomSource. Two sources created with the
// same seed return the same values for the same sequence of requests.
//
// A SeededSource is not safe for concurrent use.
type SeededSource struct {
	seed int64
	rng  *rand.Rand
}

// NewSeededSource returns a deterministic source seeded with seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (s *SeededSource) Seed() int64 {
	return s.seed
}

// Int implements RandomSource.
func (s *SeededSource) Int(lo, hi *big.Int) *big.Int {
	return uniform(s.rng, lo, hi)
}

// lockedSource serialises access to a shared generator.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedSource) Int(lo, hi *big.Int) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uniform(l.rng, lo, hi)
}

var global = &lockedSource{rng: rand.New(entropySource{})}

// GlobalSource returns the process-wide unseeded source. It is safe for
// concurrent use. Its values are not reproducible across runs.
func GlobalSource() RandomSource {
	return global
}

func sourceOrGlobal(src RandomSource) RandomSource {
	if src == nil {
		return global
	}
	return src
}

func uniform(rng *rand.Rand, lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return new(big.Int).Set(lo)
	}
	v := new(big.Int).Rand(rng, span)
	return v.Add(v, lo)
}

// entropySource feeds math/rand from the operating system's entropy pool so
// the global source needs no seeding.
type entropySource struct{}

var _ rand.Source64 = entropySource{}

func (entropySource) Seed(int64) {}

func (entropySource) Int63() int64 {
	return int64(entropySource{}.Uint64() & (math.MaxUint64 >> 1))
}

func (entropySource) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("primality: reading entropy: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
