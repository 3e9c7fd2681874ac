package config

import "errors"

// Errors returned while assembling a [StructuredConfig].
var (
	// ErrInvalidFlags indicates a flag that could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrInvalidGeneratorConfigs indicates generator settings out of range
	// (for example, a negative max entries count).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidCryptoConfigs indicates Argon2id parameters the KDF rejects.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
