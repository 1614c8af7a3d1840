package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"primelab/core"
)

func main() {
	// Cancelled on SIGINT or SIGTERM so an in-flight run stops between
	// numbers; the cause records which signal arrived.
	ctx, cancel := context.WithCancelCause(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		if sig, ok := <-sigChan; ok {
			cancel(core.SignalCause(sig))
		}
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	signal.Stop(sigChan)
	cancel(nil)
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		// Syncing a terminal fails on some platforms; nothing to report.
		_ = a.logger.Sync()
	}
	err = withCause(ctx, err)
	reportError(stderr, err)
	return exitCode(err)
}

// reportError prints err, tagged with its code when it is a configuration
// error.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if code := core.GetErrorCode(err); code != "" {
		fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// withCause attaches the context's cancellation cause to a cancellation
// error so the exit code can tell SIGINT from SIGTERM.
func withCause(ctx context.Context, err error) error {
	if !errors.Is(err, context.Canceled) {
		return err
	}
	cause := context.Cause(ctx)
	if cause == nil || errors.Is(err, cause) {
		return err
	}
	return fmt.Errorf("%w: %w", err, cause)
}

// usageError marks bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

func exitCode(err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return core.ExitCodeUsage
	}
	return core.ExitCodeFor(err)
}
