// Package report renders lab reports for the terminal or as YAML and JSON
// documents.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"primelab/lab"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for an output format Write does not support.
var ErrUnknownFormat = errors.New("unknown output format")

var methodTitles = map[string]string{
	"fermat":           "Fermat",
	"solovay-strassen": "Solovay-Strassen",
	"miller-rabin":     "Miller-Rabin",
}

// Write renders rep to w in the given format.
func Write(w io.Writer, rep *lab.Report, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, rep *lab.Report) error {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	tw := &errWriter{w: w}
	header.Fprintf(tw, "━━━ Primes up to %d ━━━\n", rep.Limit)
	fmt.Fprintf(tw, "  %s\n", joinInts(rep.Primes))

	for _, res := range rep.Results {
		fmt.Fprintln(tw)
		header.Fprintf(tw, "━━━ Testing n = %s ━━━\n", res.Number)
		for _, v := range res.Verdicts {
			title := methodTitles[v.Method]
			if title == "" {
				title = v.Method
			}
			if v.ProbablyPrime {
				pass.Fprintf(tw, "  ✓ %-18s probably prime\n", title)
			} else {
				fail.Fprintf(tw, "  ✗ %-18s composite\n", title)
			}
		}
	}

	fmt.Fprintln(tw)
	dim.Fprintf(tw, "run %s, %d rounds", rep.RunID, rep.Rounds)
	if rep.Seed != nil {
		dim.Fprintf(tw, ", seed %d", *rep.Seed)
	}
	fmt.Fprintln(tw)
	return tw.err
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "(none)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// errWriter keeps the first write error so the printing code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
