package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/MKhiriev/go-pass-fixtures/internal/config"
	"github.com/MKhiriev/go-pass-fixtures/internal/crypto"
	"github.com/MKhiriev/go-pass-fixtures/internal/fixture"
	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/internal/vault"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

// RunGenerate creates a password-protected vault at <dbpath> and fills it
// with a random tree of groups and entries.
//
//	generate [flags] <dbpath> <password>
//
// The happy path prints nothing to stdout. Logs go to stderr.
func RunGenerate(ctx context.Context, args []string, stdout, stderr io.Writer, info models.AppBuildInfo) int {
	prog := programName(args, "generate")
	log := logger.NewLoggerWithWriter("generate", stderr)

	cfg, positional, err := config.GetGenerateConfig(flagArgs(args))
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, MsgGenerateUsage, prog)
			return ExitOK
		}
		if errors.Is(err, config.ErrInvalidFlags) {
			fmt.Fprintf(stdout, MsgGenerateUsage, prog)
		}
		log.Err(err).Msg("error getting configs")
		return ExitFailure
	}

	if cfg.ShowVersion {
		printBuildInfo(stdout, info)
		return ExitOK
	}

	if len(positional) != 2 {
		fmt.Fprintf(stdout, MsgGenerateUsage, prog)
		return ExitFailure
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Err(err).Msg("error setting log level")
		return ExitFailure
	}
	ctx = log.WithContext(ctx)

	if err = generate(ctx, positional[0], positional[1], cfg, log); err != nil {
		log.Err(err).Str("path", positional[0]).Msg("fixture generation failed")
		return ExitFailure
	}

	return ExitOK
}

func generate(ctx context.Context, path, password string, cfg *config.StructuredConfig, log *logger.Logger) error {
	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	v, err := vault.New(path, password,
		vault.WithKDFParams(crypto.KDFParams{
			Time:    cfg.Crypto.ArgonTime,
			Memory:  cfg.Crypto.ArgonMemory,
			Threads: cfg.Crypto.ArgonThreads,
		}),
	)
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	gen := fixture.NewGenerator(v, fixture.NewSeededRand(seed), log)
	if err = gen.Populate(ctx, v.RootGroup(), cfg.Generator.MaxEntries, cfg.Generator.Descent(), 0); err != nil {
		return fmt.Errorf("populate vault: %w", err)
	}

	if err = v.Save(ctx); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	stats := gen.Stats()
	log.Info().
		Str("path", path).
		Uint64("seed", seed).
		Int("groups", stats.Groups).
		Int("entries", stats.Entries).
		Int("max_depth", stats.MaxDepth).
		Msg("fixture generated")

	return nil
}

func programName(args []string, fallback string) string {
	if len(args) == 0 || args[0] == "" {
		return fallback
	}
	return args[0]
}

func flagArgs(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	fmt.Fprintf(w, MsgBuildInfo, orNA(info.BuildVersion()), orNA(info.BuildDate()), orNA(info.BuildCommit()))
}
