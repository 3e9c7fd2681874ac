package store

import (
	"context"

	"github.com/MKhiriev/go-pass-fixtures/models"
)

// VaultRepository persists the sealed rows of a single vault file.
type VaultRepository interface {
	// SaveVault writes meta, groups and entries in one transaction. groups
	// must be ordered so that every parent precedes its children.
	SaveVault(ctx context.Context, meta models.VaultMeta, groups []models.StoredGroup, entries []models.StoredEntry) error
	GetMeta(ctx context.Context) (models.VaultMeta, error)
	GetGroups(ctx context.Context) ([]models.StoredGroup, error)
	GetEntries(ctx context.Context) ([]models.StoredEntry, error)
}
