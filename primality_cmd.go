package main

import (
	"strings"

	"github.com/spf13/cobra"

	"primelab/lab"
	"primelab/primality"
	"primelab/report"
)

func newPrimalityCmd(a *app) *cobra.Command {
	var (
		rounds  int
		limit   int
		seed    int64
		output  string
		methods []string
	)

	cmd := &cobra.Command{
		Use:   "primality [numbers...]",
		Short: "Sieve small primes and run the Fermat, Solovay-Strassen and Miller-Rabin tests",
		Long: `Lists the primes up to --limit, then runs every probabilistic test on each
number. Numbers are decimal or 0x-prefixed hexadecimal; when none are given the
configured list is used. Pass --seed for a reproducible run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("rounds") {
				cfg.Rounds = rounds
			}
			if flags.Changed("limit") {
				cfg.Limit = limit
			}
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("output") {
				cfg.Output = strings.ToLower(output)
			}
			if len(args) > 0 {
				cfg.Numbers = args
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			numbers, err := primality.ParseNumbers(cfg.Numbers)
			if err != nil {
				return usage(err)
			}
			selected, err := parseMethods(methods)
			if err != nil {
				return usage(err)
			}

			rep, err := lab.NewRunner(a.logger).Run(cmd.Context(), lab.Request{
				Numbers: numbers,
				Rounds:  cfg.Rounds,
				Limit:   cfg.Limit,
				Seed:    cfg.Seed,
				Methods: selected,
			})
			if err != nil {
				return err
			}
			return report.Write(a.stdout, rep, cfg.Output)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&rounds, "rounds", "r", 0, "witnesses tried per test (default from config, 10)")
	flags.IntVarP(&limit, "limit", "l", 0, "sieve primes up to this bound (default from config, 50)")
	flags.Int64Var(&seed, "seed", 0, "seed for a reproducible run")
	flags.StringVarP(&output, "output", "o", "", "output format: text, yaml, json")
	flags.StringSliceVarP(&methods, "method", "m", nil, "tests to run: fermat, solovay-strassen (ss), miller-rabin (mr)")
	return cmd
}

func parseMethods(names []string) ([]primality.Method, error) {
	methods := make([]primality.Method, 0, len(names))
	for _, name := range names {
		m, err := primality.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
