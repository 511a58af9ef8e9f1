// Package app wires flags, region, engine, and orchestrator into one run
// and maps the outcome to process exit codes.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"memcheck-core/lfsr"
	"memcheck-core/memtest"
	"memcheck/internal/cli"
	"memcheck/internal/fingerprint"
	"memcheck/internal/memlock"
	"memcheck/internal/output"
	"memcheck/internal/runutil"
	"memcheck/internal/tablecache"
	"memcheck/internal/version"
	"memcheck/pkg/api"
)

// Exit codes: 0 clean, Options.FailExitCode on bit errors, 2 usage,
// 3 output I/O, 130 when a run-forever scan is cancelled.

// tables is process-wide: derived feedback tables are constants, exactly
// like the built-in one.
var tables = tablecache.New(0)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("memcheck")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "memcheck version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	workers := runutil.EffectiveWorkers(opts.Workers)
	words, warns := runutil.AlignWords(opts.Words, workers)
	if !opts.Quiet {
		for _, w := range warns {
			_, _ = fmt.Fprintln(stderr, w)
		}
	}
	if words == 0 {
		_, _ = fmt.Fprintf(stderr, "error: %d words cannot carry one stride cycle of %d workers\n", opts.Words, workers)
		return 2
	}

	reg, err := memtest.NewRegion(opts.Base, words)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	locked := false
	if opts.Lock {
		if free, ok := memlock.Available(); ok && free < uint64(len(reg.Bytes())) && !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "warning: window of %d bytes exceeds free memory (%d bytes)\n", len(reg.Bytes()), free)
		}
		if err := memlock.Lock(reg.Bytes()); err != nil {
			if !opts.Quiet {
				_, _ = fmt.Fprintf(stderr, "warning: cannot lock window: %v\n", err)
			}
		} else {
			locked = true
			defer func() { _ = memlock.Unlock(reg.Bytes()) }()
		}
	}

	var gen lfsr.Generator
	engine := "table"
	switch {
	case opts.BitSerial:
		gen = lfsr.NewBitSerial(opts.Poly)
		engine = "bit-serial"
	case opts.Poly != lfsr.Poly:
		gen = lfsr.NewByteTable(tables.Get(opts.Poly))
	default:
		gen = lfsr.NewByteTable(nil)
	}

	var pattern string
	if opts.Fingerprint {
		pattern = fmt.Sprintf("%016x", fingerprint.Pattern(gen, opts.Seed, workers, reg.Range()))
	}

	start := time.Now()
	bitErrors, runErr := memtest.Run(parent, reg, memtest.Config{
		BaseSeed:   opts.Seed,
		Workers:    workers,
		Iterations: opts.Iterations,
		Gen:        gen,
	})
	elapsed := time.Since(start)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		_, _ = fmt.Fprintln(stderr, runErr)
		return 2
	}

	status := "pass"
	if bitErrors > 0 {
		status = "fail"
	}
	r := reg.Range()
	rep := api.ReportV1{
		Seed:       fmt.Sprintf("%#x", opts.Seed),
		Polynomial: fmt.Sprintf("%#x", opts.Poly),
		Engine:     engine,
		Workers:    workers,
		Iterations: opts.Iterations,
		First:      fmt.Sprintf("%#x", r.First),
		Last:       fmt.Sprintf("%#x", r.Last),
		Words:      reg.Words(),
		BitErrors:  bitErrors,
		Status:     status,
		DurationMS: float64(elapsed) / float64(time.Millisecond),
		Pattern:    pattern,
		Locked:     locked,
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, rep)
	default:
		err = output.WriteText(outw, rep, opts.Header)
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if errors.Is(runErr, context.Canceled) {
		return 130
	}
	if bitErrors > 0 {
		return opts.FailExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
