// Package cli parses and validates the memcheck flag surface.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"memcheck-core/lfsr"
	"memcheck/internal/version"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all CLI flags.
type Options struct {
	// Pattern
	Seed      uint32
	Poly      uint32
	BitSerial bool

	// Region
	Base  uint32
	Words int
	Lock  bool

	// Run shape
	Workers    int
	Iterations int // 0 = run until interrupted

	// Output
	Output       string
	Header       bool // true unless --no-header
	Fingerprint  bool
	FailExitCode int

	Quiet   bool
	Version bool
}

// hexUint32 accepts decimal or 0x-prefixed values for register-sized flags.
type hexUint32 struct{ dst *uint32 }

func (h *hexUint32) String() string {
	if h.dst == nil {
		return ""
	}
	return fmt.Sprintf("%#x", *h.dst)
}

func (h *hexUint32) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid 32-bit value %q", s)
	}
	*h.dst = uint32(v)
	return nil
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parallel self-checking memory exerciser

Fills a memory window with a deterministic LFSR stream from parallel
workers, reads every word back via the mirror worker, and reports the
total bit distance. Exit status 0 means every word matched.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{
		Seed:         lfsr.DefaultSeed,
		Poly:         lfsr.Poly,
		Base:         0x10008000,
		Words:        0x6000, // the original 0x18000-byte window
		Iterations:   1,
		Output:       OutputText,
		FailExitCode: 1,
	}
	var help bool

	// Pattern
	fs.Var(&hexUint32{&opt.Seed}, "seed", "base seed; worker i runs from seed+i [0xdeadbeef]")
	fs.Var(&hexUint32{&opt.Poly}, "polynomial", "LFSR feedback polynomial [0x80000057]")
	fs.BoolVar(&opt.BitSerial, "bit-serial", false, "use the bit-serial oracle engine instead of the byte table [false]")

	// Region
	fs.Var(&hexUint32{&opt.Base}, "base", "base address label of the window under test [0x10008000]")
	fs.IntVar(&opt.Words, "words", opt.Words, "window size in 32-bit words [24576]")
	fs.BoolVar(&opt.Lock, "lock", false, "mlock the window so paging cannot mask memory faults [false]")

	// Run shape
	fs.IntVar(&opt.Workers, "workers", 0, "parallel workers (0 = all CPUs) [0]")
	fs.IntVar(&opt.Workers, "w", 0, "alias of --workers")
	fs.IntVar(&opt.Iterations, "iterations", 1, "test iterations (0 = run until interrupted) [1]")
	fs.IntVar(&opt.Iterations, "n", 1, "alias of --iterations")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Fingerprint, "fingerprint", false, "include a digest of the expected pattern stream [false]")
	fs.IntVar(&opt.FailExitCode, "fail-exit-code", 1, "exit code when bit errors are found [1]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Workers < 0 {
		return errors.New("--workers must be >= 0")
	}
	if o.Iterations < 0 {
		return errors.New("--iterations must be >= 0")
	}
	if o.Words <= 0 {
		return errors.New("--words must be positive")
	}
	if o.Base%4 != 0 {
		return fmt.Errorf("--base %#x is not word-aligned", o.Base)
	}
	if uint64(o.Base)+4*uint64(o.Words) >= 1<<32 {
		return fmt.Errorf("window of %d words from %#x must end below the top of the 32-bit address space", o.Words, o.Base)
	}
	switch o.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.FailExitCode < 0 || o.FailExitCode > 255 {
		return errors.New("--fail-exit-code must be between 0 and 255")
	}
	return nil
}
