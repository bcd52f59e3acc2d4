// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/zpv/lib/clock"
	"github.com/bureau-foundation/zpv/lib/readiness"
	"github.com/bureau-foundation/zpv/lib/relay"
	"github.com/bureau-foundation/zpv/lib/report"
	"github.com/bureau-foundation/zpv/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:], syscall.Stdin, syscall.Stdout, os.Stderr))
}

// run relays stdin to stdout and returns the process exit code.
// Diagnostics and usage go to stderr.
func run(args []string, stdin, stdout int, stderr io.Writer) int {
	parsed, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "zpv: %v\n\n", err)
		printUsage(stderr)
		return 1
	}
	if parsed.help {
		printUsage(stderr)
		return 1
	}

	// A consumer that exits early must show up as EPIPE on write so
	// the final report still goes out.
	signal.Ignore(syscall.SIGPIPE)

	relayer := relay.New(report.New(stderr), clock.Monotonic(), relay.DefaultConfig())

	source, err := readiness.Open(stdin, stdout)
	if err != nil {
		return relayer.Abort(fmt.Errorf("opening readiness source: %w", err)).ExitCode()
	}
	defer source.Close()

	signals := make(chan os.Signal, 4)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()
	go forwardSignals(signals, source)

	return relayer.Run(readiness.FD(stdin), readiness.FD(stdout), source).ExitCode()
}

// forwardSignals turns each received signal into an interrupt of the
// readiness source, waking a blocked wait. Stops when signals is
// closed.
func forwardSignals(signals <-chan os.Signal, source readiness.Source) {
	for sig := range signals {
		source.Interrupt("received " + signalName(sig))
	}
}

func signalName(sig os.Signal) string {
	if number, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(number); name != "" {
			return name
		}
	}
	return sig.String()
}

type options struct {
	help   bool
	unique string
}

func newFlagSet(target *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("zpv", pflag.ContinueOnError)
	// Errors and usage are printed by run.
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVarP(&target.help, "help", "h", false, "print this help and exit")
	flagSet.StringVarP(&target.unique, "unique", "u", "", "tag to tell chained instances apart (ignored)")
	return flagSet
}

func parseArgs(args []string) (options, error) {
	var parsed options
	flagSet := newFlagSet(&parsed)
	if err := flagSet.Parse(args); err != nil {
		return parsed, err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return parsed, fmt.Errorf("unexpected argument: %s", extra[0])
	}
	return parsed, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `zpv %s: pipeline wait-time probe.

Copies stdin to stdout unmodified and reports, as JSON lines on stderr,
how long it waited on each side.

Usage:
  producer | zpv [-u tag] | consumer

Flags:
`, version.Info())
	flagSet := newFlagSet(&options{})
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
