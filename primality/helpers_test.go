package primality

import (
	"math/big"
	"testing"
)

// fixedSource hands out the given witnesses in order, cycling when exhausted.
// It ignores the requested range.
type fixedSource struct {
	witnesses []int64
	next      int
}

func (f *fixedSource) Int(lo, hi *big.Int) *big.Int {
	w := f.witnesses[f.next%len(f.witnesses)]
	f.next++
	return big.NewInt(w)
}

// span records one Int request.
type span struct {
	lo, hi string
}

// recordingSource forwards to another source and records every request and
// result.
type recordingSource struct {
	inner     RandomSource
	requests  []span
	witnesses []string
}

func (r *recordingSource) Int(lo, hi *big.Int) *big.Int {
	v := r.inner.Int(lo, hi)
	r.requests = append(r.requests, span{lo: lo.String(), hi: hi.String()})
	r.witnesses = append(r.witnesses, v.String())
	return v
}

func mustParse(t testing.TB, s string) *big.Int {
	t.Helper()
	n, err := ParseNumber(s)
	if err != nil {
		t.Fatalf("ParseNumber(%q) error: %v", s, err)
	}
	return n
}
