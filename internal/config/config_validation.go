// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Generator.MaxEntries < 1 {
		return fmt.Errorf("%w: max entries must be positive, got %d", ErrInvalidGeneratorConfigs, cfg.Generator.MaxEntries)
	}

	if cfg.Crypto.ArgonThreads > 0 && cfg.Crypto.ArgonMemory > 0 &&
		cfg.Crypto.ArgonMemory < 8*uint32(cfg.Crypto.ArgonThreads) {
		return fmt.Errorf("%w: argon memory must be at least 8 KiB per thread", ErrInvalidCryptoConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
