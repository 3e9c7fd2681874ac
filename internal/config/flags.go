package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
)

// LogLevel is a zerolog level name. It implements the flag.Value interface
// and rejects unknown levels at parse time.
type LogLevel string

// String returns the level name.
func (l *LogLevel) String() string {
	return string(*l)
}

// Set validates s as a zerolog level and stores it.
func (l *LogLevel) Set(s string) error {
	if _, err := zerolog.ParseLevel(s); err != nil {
		return err
	}
	*l = LogLevel(s)
	return nil
}

// optionalInt is an int flag that stays nil unless given, so an explicit 0
// can be told apart from an absent flag.
type optionalInt struct {
	p **int
}

func (o optionalInt) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.Itoa(**o.p)
}

func (o optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*o.p = &n
	return nil
}

// newFlagSet registers the flags shared by every command on a fresh set.
// Parse errors are returned to the caller instead of printed.
func newFlagSet(name string, cfg *StructuredConfig, level *LogLevel) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.Var(level, "log-level", "Log level (trace, debug, info, warn, error)")

	return fs
}

func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	return fs.Args(), nil
}

// parseGenerateFlags parses the flags of the generate command.
//
// Flags:
//
//	-c/-config json file path with configs
//	-max-entries entries and child groups per group
//	-descent-probability percent chance of descending a level
//	-seed PRNG seed for a reproducible tree
//	-log-level log level
//	-version print build info and exit
func parseGenerateFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	var level LogLevel

	fs := newFlagSet("generate", cfg, &level)
	fs.IntVar(&cfg.Generator.MaxEntries, "max-entries", 0, "Maximum entries and child groups per group")
	fs.Var(optionalInt{&cfg.Generator.DescentProbability}, "descent-probability", "Percent chance of creating child groups")
	fs.Uint64Var(&cfg.Generator.Seed, "seed", 0, "PRNG seed (0 picks a random one)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print build info and exit")

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	cfg.Log.Level = level.String()

	return cfg, rest, nil
}

// parseInspectFlags parses the flags of the inspect command.
//
// Flags:
//
//	-c/-config json file path with configs
//	-search substring filter on title and username
//	-qr render a QR code per credential
//	-log-level log level
func parseInspectFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	var level LogLevel

	fs := newFlagSet("inspect", cfg, &level)
	fs.StringVar(&cfg.Inspect.Search, "search", "", "Only list credentials whose title or username contains this")
	fs.BoolVar(&cfg.Inspect.QR, "qr", false, "Render a QR code for every credential")

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	cfg.Log.Level = level.String()

	return cfg, rest, nil
}
