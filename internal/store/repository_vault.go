package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

// insertBatchSize bounds the rows per INSERT so large fixtures stay below
// SQLite's host parameter limit.
const insertBatchSize = 500

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository returns a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveVault implements [VaultRepository].
func (r *vaultRepository) SaveVault(ctx context.Context, meta models.VaultMeta, groups []models.StoredGroup, entries []models.StoredEntry) (err error) {
	if len(groups) == 0 {
		return ErrNothingToSave
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.SaveVault").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildInsertMetaQuery(meta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.SaveVault").Msg("failed to insert vault meta")
		return fmt.Errorf("%w: insert meta: %w", ErrExecutingStatement, err)
	}

	for chunk := range slices.Chunk(groups, insertBatchSize) {
		if err = r.exec(ctx, tx, "groups", func() (string, []any, error) { return buildInsertGroupsQuery(chunk) }); err != nil {
			return err
		}
	}

	for chunk := range slices.Chunk(entries, insertBatchSize) {
		if err = r.exec(ctx, tx, "entries", func() (string, []any, error) { return buildInsertEntriesQuery(chunk) }); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.SaveVault").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().
		Str("func", "vaultRepository.SaveVault").
		Int("groups", len(groups)).
		Int("entries", len(entries)).
		Msg("vault rows saved")

	return nil
}

func (r *vaultRepository) exec(ctx context.Context, tx *sql.Tx, what string, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "vaultRepository.SaveVault").
			Str("table", what).
			Msg("failed to insert rows")
		return fmt.Errorf("%w: insert %s: %w", ErrExecutingStatement, what, err)
	}
	return nil
}

// GetMeta implements [VaultRepository].
func (r *vaultRepository) GetMeta(ctx context.Context) (models.VaultMeta, error) {
	query, args, err := buildSelectMetaQuery()
	if err != nil {
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.VaultMeta
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&meta.EncryptionSalt,
		&meta.EncryptedDEK,
		&meta.AuthHash,
		&meta.ArgonTime,
		&meta.ArgonMemory,
		&meta.ArgonThreads,
		&meta.RootGroupID,
		&meta.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMeta{}, ErrMetaNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.GetMeta").Msg("failed to scan vault meta")
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, classifySQLiteError(err))
	}

	return meta, nil
}

// GetGroups implements [VaultRepository]. Groups come back in the order they
// were saved.
func (r *vaultRepository) GetGroups(ctx context.Context) ([]models.StoredGroup, error) {
	query, args, err := buildSelectGroupsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.GetGroups").Msg("failed to query groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var groups []models.StoredGroup
	for rows.Next() {
		var (
			g      models.StoredGroup
			parent sql.NullString
		)
		if err = rows.Scan(&g.ID, &parent, &g.EncryptedName, &g.Position); err != nil {
			r.logger.Err(err).Str("func", "vaultRepository.GetGroups").Msg("failed to scan group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		g.ParentID = parent.String
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}

// GetEntries implements [VaultRepository].
func (r *vaultRepository) GetEntries(ctx context.Context) ([]models.StoredEntry, error) {
	query, args, err := buildSelectEntriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.GetEntries").Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var entries []models.StoredEntry
	for rows.Next() {
		var e models.StoredEntry
		err = rows.Scan(
			&e.ID,
			&e.GroupID,
			&e.EncryptedTitle,
			&e.EncryptedUsername,
			&e.EncryptedPassword,
			&e.Position,
		)
		if err != nil {
			r.logger.Err(err).Str("func", "vaultRepository.GetEntries").Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
