package primality

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testFunc func(n *big.Int, rounds int, src RandomSource) bool

var allTests = []struct {
	name string
	fn   testFunc
}{
	{name: "fermat", fn: Fermat},
	{name: "solovay-strassen", fn: SolovayStrassen},
	{name: "miller-rabin", fn: MillerRabin},
}

func TestProbabilistic_SmallNumbers(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{n: -7, want: false},
		{n: -2, want: false},
		{n: -1, want: false},
		{n: 0, want: false},
		{n: 1, want: false},
		{n: 2, want: true},
		{n: 3, want: true},
		{n: 4, want: false},
		{n: 100, want: false},
		{n: 1 << 40, want: false},
	}

	for _, tc := range allTests {
		t.Run(tc.name, func(t *testing.T) {
			for _, tt := range tests {
				// The fast path never draws a witness.
				src := &recordingSource{inner: NewSeededSource(1)}
				if got := tc.fn(big.NewInt(tt.n), 10, src); got != tt.want {
					t.Errorf("%s(%d) = %v, want %v", tc.name, tt.n, got, tt.want)
				}
				if len(src.requests) != 0 {
					t.Errorf("%s(%d) drew %d witnesses, want 0", tc.name, tt.n, len(src.requests))
				}
			}
		})
	}
}

func TestProbabilistic_AcceptsSievedPrimes(t *testing.T) {
	for _, tc := range allTests {
		t.Run(tc.name, func(t *testing.T) {
			src := NewSeededSource(2024)
			for _, p := range SieveUpTo(1000) {
				for _, rounds := range []int{1, 5} {
					if !tc.fn(big.NewInt(int64(p)), rounds, src) {
						t.Errorf("%s(%d, rounds=%d) = false, want true", tc.name, p, rounds)
					}
				}
			}
		})
	}
}

func TestProbabilistic_LargePrimes(t *testing.T) {
	primes := []string{
		"2305843009213693951",                // 2^61-1
		"618970019642690137449562111",        // 2^89-1
		"0x7fffffffffffffffffffffffffffffff", // 2^127-1
	}
	for _, tc := range allTests {
		t.Run(tc.name, func(t *testing.T) {
			for _, p := range primes {
				if !tc.fn(mustParse(t, p), 10, nil) {
					t.Errorf("%s(%s) = false, want true", tc.name, p)
				}
			}
		})
	}
}

func TestStrongTests_RejectComposites(t *testing.T) {
	composites := []string{
		"9", "15", "25", "49", "91", "341", "2047", "3215031751",
		// Carmichael numbers
		"561", "1105", "1729", "2465", "2821", "6601", "8911",
		// 2^67-1 = 193707721 * 761838257287
		"147573952589676412927",
	}
	strong := map[string]testFunc{
		"solovay-strassen": SolovayStrassen,
		"miller-rabin":     MillerRabin,
	}
	for name, fn := range strong {
		t.Run(name, func(t *testing.T) {
			src := NewSeededSource(99)
			for _, c := range composites {
				if fn(mustParse(t, c), 30, src) {
					t.Errorf("%s(%s) = true, want false", name, c)
				}
			}
		})
	}
}

func TestFermat_RejectsOrdinaryComposites(t *testing.T) {
	src := NewSeededSource(99)
	for _, c := range []int64{9, 15, 25, 91, 341, 1001, 4033} {
		if Fermat(big.NewInt(c), 30, src) {
			t.Errorf("Fermat(%d) = true, want false", c)
		}
	}
}

// 561 = 3*11*17 is a Carmichael number: every witness coprime to it passes the
// Fermat test. Only witnesses sharing a factor expose it. A random run of the
// Fermat test on 561 can therefore report "probably prime", which is the
// expected one-sided error of the method.
func TestFermat_CarmichaelWeakness(t *testing.T) {
	n := big.NewInt(561)

	tests := []struct {
		name      string
		witnesses []int64
		want      bool
	}{
		{name: "coprime witnesses pass", witnesses: []int64{2, 5, 7, 13, 101}, want: true},
		{name: "shared factor 3", witnesses: []int64{2, 3}, want: false},
		{name: "shared factor 11", witnesses: []int64{22}, want: false},
		{name: "shared factor 17", witnesses: []int64{5, 7, 34}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fixedSource{witnesses: tt.witnesses}
			if got := Fermat(n, len(tt.witnesses), src); got != tt.want {
				t.Errorf("Fermat(561) with witnesses %v = %v, want %v", tt.witnesses, got, tt.want)
			}
		})
	}
}

// The same witnesses that fool Fermat on 561 are caught by the stronger tests.
func TestStrongTests_CatchCarmichaelLiars(t *testing.T) {
	n := big.NewInt(561)

	if SolovayStrassen(n, 1, &fixedSource{witnesses: []int64{5}}) {
		t.Error("SolovayStrassen(561) with witness 5 = true, want false")
	}
	if MillerRabin(n, 1, &fixedSource{witnesses: []int64{2}}) {
		t.Error("MillerRabin(561) with witness 2 = true, want false")
	}
	// 2 is an Euler liar and 50 a strong liar for 561.
	if !SolovayStrassen(n, 1, &fixedSource{witnesses: []int64{2}}) {
		t.Error("SolovayStrassen(561) with witness 2 = false, want true")
	}
	if !MillerRabin(n, 1, &fixedSource{witnesses: []int64{50}}) {
		t.Error("MillerRabin(561) with witness 50 = false, want true")
	}
}

func TestMillerRabin_StrongPseudoprimeBase2(t *testing.T) {
	n := big.NewInt(2047)
	if !MillerRabin(n, 1, &fixedSource{witnesses: []int64{2}}) {
		t.Error("MillerRabin(2047) with witness 2 = false, want true")
	}
	if MillerRabin(n, 1, &fixedSource{witnesses: []int64{3}}) {
		t.Error("MillerRabin(2047) with witness 3 = true, want false")
	}
}

func TestProbabilistic_WitnessRanges(t *testing.T) {
	tests := []struct {
		name   string
		fn     testFunc
		lo, hi string
	}{
		{name: "fermat", fn: Fermat, lo: "2", hi: "96"},
		{name: "solovay-strassen", fn: SolovayStrassen, lo: "2", hi: "96"},
		{name: "miller-rabin", fn: MillerRabin, lo: "2", hi: "95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &recordingSource{inner: NewSeededSource(5)}
			if !tt.fn(big.NewInt(97), 4, src) {
				t.Fatalf("%s(97) = false, want true", tt.name)
			}
			want := []span{{tt.lo, tt.hi}, {tt.lo, tt.hi}, {tt.lo, tt.hi}, {tt.lo, tt.hi}}
			if diff := cmp.Diff(want, src.requests, cmp.AllowUnexported(span{})); diff != "" {
				t.Errorf("witness ranges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProbabilistic_StopsAtFirstFailure(t *testing.T) {
	src := &recordingSource{inner: &fixedSource{witnesses: []int64{3}}}
	if Fermat(big.NewInt(561), 10, src) {
		t.Fatal("Fermat(561) = true, want false")
	}
	if len(src.requests) != 1 {
		t.Errorf("drew %d witnesses, want 1", len(src.requests))
	}
}

func TestProbabilistic_ZeroRounds(t *testing.T) {
	for _, tc := range allTests {
		src := &recordingSource{inner: NewSeededSource(1)}
		if !tc.fn(big.NewInt(9), 0, src) {
			t.Errorf("%s(9, rounds=0) = false, want true", tc.name)
		}
		if len(src.requests) != 0 {
			t.Errorf("%s(9, rounds=0) drew %d witnesses", tc.name, len(src.requests))
		}
	}
}

func TestProbabilistic_DoesNotModifyCandidate(t *testing.T) {
	for _, tc := range allTests {
		n := big.NewInt(7919)
		tc.fn(n, 5, NewSeededSource(3))
		if n.Int64() != 7919 {
			t.Errorf("%s modified n to %s", tc.name, n)
		}
	}
}

func TestProbabilistic_Reproducible(t *testing.T) {
	run := func(seed int64) ([]bool, []string) {
		src := &recordingSource{inner: NewSeededSource(seed)}
		var verdicts []bool
		for n := int64(5); n < 2000; n += 2 {
			for _, tc := range allTests {
				verdicts = append(verdicts, tc.fn(big.NewInt(n), 3, src))
			}
		}
		return verdicts, src.witnesses
	}

	verdicts1, witnesses1 := run(42)
	verdicts2, witnesses2 := run(42)
	if diff := cmp.Diff(verdicts1, verdicts2); diff != "" {
		t.Errorf("verdicts differ between identically seeded runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(witnesses1, witnesses2); diff != "" {
		t.Errorf("witnesses differ between identically seeded runs (-first +second):\n%s", diff)
	}

	_, witnesses3 := run(43)
	if cmp.Equal(witnesses1, witnesses3) {
		t.Error("different seeds produced identical witness sequences")
	}
}

func BenchmarkMillerRabin(b *testing.B) {
	n := new(big.Int).Lsh(bigOne, 127)
	n.Sub(n, bigOne)
	src := NewSeededSource(1)
	for i := 0; i < b.N; i++ {
		MillerRabin(n, 10, src)
	}
}

func ExampleMillerRabin() {
	src := NewSeededSource(7)
	for _, n := range []int64{17, 561, 1105} {
		fmt.Println(n, MillerRabin(big.NewInt(n), 10, src))
	}
	// Output:
	// 17 true
	// 561 false
	// 1105 false
}
