package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// classifySQLiteError marks driver errors that mean the file is not a vault:
// it is not a SQLite database at all, or the vault schema is missing. Such
// errors are wrapped with [ErrNotVaultFile]; anything else is returned as is.
func classifySQLiteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch {
	case sqliteErr.Code == sqlite3.ErrNotADB:
		return fmt.Errorf("%w: %w", ErrNotVaultFile, err)
	case sqliteErr.Code == sqlite3.ErrError && strings.HasPrefix(sqliteErr.Error(), "no such table"):
		return fmt.Errorf("%w: %w", ErrNotVaultFile, err)
	}

	return err
}
