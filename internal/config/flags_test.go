package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "debug", input: "debug"},
		{name: "info", input: "info"},
		{name: "warn", input: "warn"},
		{name: "disabled", input: "disabled"},
		{name: "unknown level", input: "loud", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LogLevel
			err := l.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Empty(t, l.String())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, l.String())
			}
		})
	}
}

func TestParseGenerateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRest []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-c", "/path/to/config.json",
				"-max-entries", "4",
				"-descent-probability", "101",
				"-seed", "9",
				"-log-level", "debug",
				"-version",
				"out.db", "secret",
			},
			wantRest: []string{"out.db", "secret"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 4, cfg.Generator.MaxEntries)
				assert.Equal(t, 101, cfg.Generator.Descent())
				assert.Equal(t, uint64(9), cfg.Generator.Seed)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.True(t, cfg.ShowVersion)
			},
		},
		{
			name:     "explicit zero descent",
			args:     []string{"-descent-probability", "0"},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				require.NotNil(t, cfg.Generator.DescentProbability)
				assert.Zero(t, *cfg.Generator.DescentProbability)
			},
		},
		{
			name:     "config alias flag",
			args:     []string{"-config", "/path/to/config.json"},
			wantRest: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name:     "positional only",
			args:     []string{"out.db", "secret"},
			wantRest: []string{"out.db", "secret"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name:     "flags after positionals are positionals",
			args:     []string{"out.db", "-seed", "3"},
			wantRest: []string{"out.db", "-seed", "3"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Zero(t, cfg.Generator.Seed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := parseGenerateFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantRest, rest)
			tt.validate(t, cfg)
		})
	}
}

func TestParseGenerateFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-verbose"}},
		{"non-numeric max entries", []string{"-max-entries", "many"}},
		{"negative seed", []string{"-seed", "-1"}},
		{"bad log level", []string{"-log-level", "chatty"}},
		{"inspect flag", []string{"-qr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseGenerateFlags(tt.args)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidFlags)
		})
	}
}

func TestParseGenerateFlags_Help(t *testing.T) {
	_, _, err := parseGenerateFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseInspectFlags(t *testing.T) {
	cfg, rest, err := parseInspectFlags([]string{"-search", "corp", "-qr", "-log-level", "warn", "in.db", "pw"})
	require.NoError(t, err)

	assert.Equal(t, []string{"in.db", "pw"}, rest)
	assert.Equal(t, "corp", cfg.Inspect.Search)
	assert.True(t, cfg.Inspect.QR)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, Generator{}, cfg.Generator)

	_, _, err = parseInspectFlags([]string{"-seed", "1"})
	assert.ErrorIs(t, err, ErrInvalidFlags)
}
