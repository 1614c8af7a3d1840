// Package lab runs the primality demonstration: a sieve listing followed by
// every probabilistic test on every candidate, all drawing witnesses from one
// shared random source.
package lab

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"primelab/logging"
	"primelab/primality"
)

// Request describes one demo run.
type Request struct {
	Numbers []*big.Int
	Rounds  int
	Limit   int

	// Seed makes the run reproducible. Nil uses the process-wide source.
	Seed *int64

	// Methods defaults to every test in primality.Methods order.
	Methods []primality.Method

	// Source overrides Seed; meant for tests.
	Source primality.RandomSource
}

// Verdict is the outcome of one test on one number.
type Verdict struct {
	Method        string `yaml:"method" json:"method"`
	ProbablyPrime bool   `yaml:"probably_prime" json:"probably_prime"`
}

// NumberResult holds every verdict for a candidate.
type NumberResult struct {
	Number   string    `yaml:"number" json:"number"`
	Verdicts []Verdict `yaml:"verdicts" json:"verdicts"`
}

// Report is the outcome of a run.
type Report struct {
	RunID    string         `yaml:"run_id" json:"run_id"`
	Seed     *int64         `yaml:"seed,omitempty" json:"seed,omitempty"`
	Rounds   int            `yaml:"rounds" json:"rounds"`
	Limit    int            `yaml:"limit" json:"limit"`
	Primes   []int          `yaml:"primes" json:"primes"`
	Results  []NumberResult `yaml:"results" json:"results"`
	Duration time.Duration  `yaml:"-" json:"-"`
}

// Runner executes requests and logs their progress.
type Runner struct {
	logger *logging.Logger
	newID  func() string
}

// NewRunner returns a Runner logging to logger. A nil logger discards logs.
func NewRunner(logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{logger: logger.Named("lab"), newID: uuid.NewString}
}

// Run executes req. Numbers are processed in order and every test on a
// number consumes witnesses from the same source, so a seeded run is fully
// reproducible. The context is checked between numbers.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	methods := req.Methods
	if len(methods) == 0 {
		methods = primality.Methods()
	}
	src := req.Source
	if src == nil {
		if req.Seed != nil {
			src = primality.NewSeededSource(*req.Seed)
		} else {
			src = primality.GlobalSource()
		}
	}

	rep := &Report{
		RunID:   r.newID(),
		Seed:    req.Seed,
		Rounds:  req.Rounds,
		Limit:   req.Limit,
		Primes:  primality.SieveUpTo(req.Limit),
		Results: make([]NumberResult, 0, len(req.Numbers)),
	}
	log := r.logger.With(zap.String(logging.FieldRunID, rep.RunID))
	fields := []zap.Field{
		zap.Int(logging.FieldRounds, req.Rounds),
		zap.Int(logging.FieldLimit, req.Limit),
		zap.Int("numbers", len(req.Numbers)),
	}
	if seeded, ok := src.(*primality.SeededSource); ok {
		fields = append(fields, zap.Int64(logging.FieldSeed, seeded.Seed()))
	}
	log.Info("run started", fields...)
	log.Debug("sieve complete", zap.Int("primes", len(rep.Primes)))

	for _, n := range req.Numbers {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Int("completed", len(rep.Results)))
			return rep, fmt.Errorf("run %s: %w", rep.RunID, err)
		}

		result := NumberResult{Number: n.String(), Verdicts: make([]Verdict, 0, len(methods))}
		for _, m := range methods {
			verdict := m.Run(n, req.Rounds, src)
			result.Verdicts = append(result.Verdicts, Verdict{Method: m.String(), ProbablyPrime: verdict})
			log.Debug("verdict",
				zap.String(logging.FieldNumber, result.Number),
				zap.Stringer(logging.FieldMethod, m),
				zap.Bool(logging.FieldVerdict, verdict),
			)
		}
		rep.Results = append(rep.Results, result)
	}

	rep.Duration = time.Since(start)
	log.Info("run finished", zap.Duration(logging.FieldDuration, rep.Duration))
	return rep, nil
}
