package config

import (
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.args)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation: nothing sets max entries.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, _, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidGeneratorConfigs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, args, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, DefaultMaxEntries, cfg.Generator.MaxEntries)
	assert.Equal(t, DefaultDescentProbability, cfg.Generator.Descent())
	assert.Zero(t, cfg.Generator.Seed)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, _, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that mergo only fills fields the
// earlier sources left zero.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Generator: Generator{MaxEntries: 3}},
		&StructuredConfig{Generator: Generator{MaxEntries: 50, Seed: 8}},
	)

	cfg, _, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Generator.MaxEntries)
	assert.Equal(t, uint64(8), cfg.Generator.Seed)
	assert.Equal(t, DefaultDescentProbability, cfg.Generator.Descent())
}

func TestBuild_ExplicitDescentSurvivesDefaults(t *testing.T) {
	for _, want := range []int{0, -1, 101} {
		t.Run(fmt.Sprint(want), func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs,
				&StructuredConfig{},
				&StructuredConfig{Generator: Generator{DescentProbability: &want}},
			)

			cfg, _, err := b.withDefaults().build()
			require.NoError(t, err)
			require.NotNil(t, cfg.Generator.DescentProbability)
			assert.Equal(t, want, *cfg.Generator.DescentProbability)
		})
	}
}

func TestBuild_EarlierDescentIsNotOverwritten(t *testing.T) {
	zero, fifty := 0, 50
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Generator: Generator{DescentProbability: &zero}},
		&StructuredConfig{Generator: Generator{DescentProbability: &fifty}},
	)

	cfg, _, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Generator.Descent())
	assert.Equal(t, 0, zero, "source configs are not mutated")
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "negative max entries",
			cfg:     &StructuredConfig{Generator: Generator{MaxEntries: -2}},
			wantErr: ErrInvalidGeneratorConfigs,
		},
		{
			name:    "argon memory below thread minimum",
			cfg:     &StructuredConfig{Crypto: Crypto{ArgonMemory: 16, ArgonThreads: 4}},
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     &StructuredConfig{Log: Log{Level: "chatty"}},
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, _, err := b.withDefaults().build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilderAndKeepsArgs(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(parseGenerateFlags, []string{"-seed", "4", "a.db", "pw"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, uint64(4), b.configs[0].Generator.Seed)
	assert.Equal(t, []string{"a.db", "pw"}, b.args)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags(parseGenerateFlags, []string{"-nope"})
	assert.ErrorIs(t, b.err, ErrInvalidFlags)
	assert.Empty(t, b.configs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GENERATOR_MAX_ENTRIES": "12",
		"LOG_LEVEL":             "trace",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 12, b.configs[0].Generator.MaxEntries)
	assert.Equal(t, "trace", b.configs[0].Log.Level)
}

func TestWithEnv_SetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"GENERATOR_SEED": "abc"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeJSONFile(t, `{"generator": {"seed": 77}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, uint64(77), b.configs[1].Generator.Seed)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the flag path beats the env path.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	fromFlags := writeJSONFile(t, `{"log": {"level": "warn"}}`)
	fromEnv := writeJSONFile(t, `{"log": {"level": "error"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: fromFlags},
		&StructuredConfig{JSONFilePath: fromEnv},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].Log.Level)
}

// ── GetGenerateConfig / GetInspectConfig ──────────────────────────────────────

func TestGetGenerateConfig_Precedence(t *testing.T) {
	path := writeJSONFile(t, `{
		"generator": {"max_entries": 30, "descent_probability": 40, "seed": 5},
		"log": {"level": "error"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":                "",
		"GENERATOR_MAX_ENTRIES": "20",
		"LOG_LEVEL":             "warn",
	})

	cfg, args, err := GetGenerateConfig([]string{"-c", path, "-max-entries", "2", "db.kdbx", "pw"})
	require.NoError(t, err)

	assert.Equal(t, []string{"db.kdbx", "pw"}, args)
	assert.Equal(t, 2, cfg.Generator.MaxEntries, "flag beats env and file")
	assert.Equal(t, "warn", cfg.Log.Level, "env beats file")
	assert.Equal(t, 40, cfg.Generator.Descent(), "file beats default")
	assert.Equal(t, uint64(5), cfg.Generator.Seed)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestGetGenerateConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, args, err := GetGenerateConfig([]string{"db.kdbx", "pw"})
	require.NoError(t, err)

	assert.Equal(t, []string{"db.kdbx", "pw"}, args)
	assert.Equal(t, DefaultMaxEntries, cfg.Generator.MaxEntries)
	assert.Equal(t, DefaultDescentProbability, cfg.Generator.Descent())
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.ShowVersion)
}

func TestGetGenerateConfig_Help(t *testing.T) {
	clearEnvVars(t)

	_, _, err := GetGenerateConfig([]string{"-help"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestGetInspectConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"INSPECT_SEARCH": "from-env"})

	cfg, args, err := GetInspectConfig([]string{"-qr", "db.kdbx", "pw"})
	require.NoError(t, err)

	assert.Equal(t, []string{"db.kdbx", "pw"}, args)
	assert.True(t, cfg.Inspect.QR)
	assert.Equal(t, "from-env", cfg.Inspect.Search)
}
