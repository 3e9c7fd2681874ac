// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Defaults applied after every source has been merged. A zero value in any
// source means "unset".
const (
	DefaultMaxEntries         = 10
	DefaultDescentProbability = 99
	DefaultLogLevel           = "info"
)

// StructuredConfig is the top-level configuration container for the fixture
// tools. It is populated by merging command-line flags, environment variables,
// an optional JSON file and the defaults above.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key in the JSON config file.
type StructuredConfig struct {
	// Generator controls the shape of the generated tree.
	Generator Generator `envPrefix:"GENERATOR_" json:"generator"`

	// Crypto holds the Argon2id cost used when a new vault is sealed.
	Crypto Crypto `envPrefix:"CRYPTO_" json:"crypto"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// Inspect holds settings of the inspect command.
	Inspect Inspect `envPrefix:"INSPECT_" json:"inspect"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`

	// ShowVersion is set by the -version flag only.
	ShowVersion bool `json:"-"`
}

// Generator holds the populator parameters.
type Generator struct {
	// MaxEntries bounds the entries and child groups created per group.
	// Env: GENERATOR_MAX_ENTRIES
	MaxEntries int `env:"MAX_ENTRIES" json:"max_entries"`

	// DescentProbability is the percent chance of descending into child
	// groups. Values above 100 always descend; 1 and below never do. Nil
	// means unset, so an explicit 0 survives the merge.
	// Env: GENERATOR_DESCENT_PROBABILITY
	DescentProbability *int `env:"DESCENT_PROBABILITY" json:"descent_probability"`

	// Seed makes a run reproducible. Zero picks a fresh seed.
	// Env: GENERATOR_SEED
	Seed uint64 `env:"SEED" json:"seed"`
}

// Descent returns the configured descent probability or the default.
func (g Generator) Descent() int {
	if g.DescentProbability == nil {
		return DefaultDescentProbability
	}
	return *g.DescentProbability
}

// Crypto holds Argon2id parameters. Zero fields fall back to the key chain
// defaults.
type Crypto struct {
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME" json:"argon_time"`
	// Env: CRYPTO_ARGON_MEMORY (KiB)
	ArgonMemory uint32 `env:"ARGON_MEMORY" json:"argon_memory"`
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS" json:"argon_threads"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// Inspect holds filters for the inspect command.
type Inspect struct {
	// Search keeps only credentials whose title or username contains it.
	// Env: INSPECT_SEARCH
	Search string `env:"SEARCH" json:"search"`

	// QR renders a QR code for every listed credential.
	// Env: INSPECT_QR
	QR bool `env:"QR" json:"qr"`
}

// GetGenerateConfig loads the configuration of the generate command from
// args (without the program name) and the environment. Sources are consulted
// in priority order, the first non-zero value winning:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// The positional arguments left after the flags are returned alongside.
func GetGenerateConfig(args []string) (*StructuredConfig, []string, error) {
	return newConfigBuilder().
		withFlags(parseGenerateFlags, args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetInspectConfig is [GetGenerateConfig] for the inspect command.
func GetInspectConfig(args []string) (*StructuredConfig, []string, error) {
	return newConfigBuilder().
		withFlags(parseInspectFlags, args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
