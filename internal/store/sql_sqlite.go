package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
)

// NewConnectSQLite opens the SQLite vault file at path, creating it if it
// does not exist, and checks the connection. Foreign keys are enforced so a
// group can never reference a missing parent. The logger is taken from ctx.
func NewConnectSQLite(ctx context.Context, path string) (*DB, error) {
	log := logger.FromContext(ctx)

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a vault file is written by a single goroutine
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", classifySQLiteError(err))
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// dsnPathEscaper escapes the characters SQLite URI filenames give a meaning
// to, so a path like "fix?tures.db" is not cut at the query string.
var dsnPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func sqliteDSN(path string) string {
	return "file:" + dsnPathEscaper.Replace(path) + "?_foreign_keys=on"
}
