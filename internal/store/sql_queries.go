// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-fixtures/models"
)

const (
	metaTable    = "vault_meta"
	groupsTable  = "vault_groups"
	entriesTable = "vault_entries"

	// metaRowID is the only row vault_meta may hold.
	metaRowID = 1
)

var (
	metaColumns = []string{
		"encryption_salt",
		"encrypted_dek",
		"auth_hash",
		"argon_time",
		"argon_memory",
		"argon_threads",
		"root_group_id",
		"created_at",
	}
	groupColumns = []string{
		"id",
		"parent_id",
		"name",
		"position",
	}
	entryColumns = []string{
		"id",
		"group_id",
		"title",
		"username",
		"password",
		"position",
	}
)

// sqlite uses ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertMetaQuery(meta models.VaultMeta) (string, []any, error) {
	return builder.
		Insert(metaTable).
		Columns(append([]string{"id"}, metaColumns...)...).
		Values(
			metaRowID,
			meta.EncryptionSalt,
			meta.EncryptedDEK,
			meta.AuthHash,
			meta.ArgonTime,
			meta.ArgonMemory,
			meta.ArgonThreads,
			meta.RootGroupID,
			meta.CreatedAt,
		).
		ToSql()
}

func buildSelectMetaQuery() (string, []any, error) {
	return builder.
		Select(metaColumns...).
		From(metaTable).
		Where(sq.Eq{"id": metaRowID}).
		ToSql()
}

// buildInsertGroupsQuery builds one multi-row INSERT for groups. The root
// group is stored with a NULL parent.
func buildInsertGroupsQuery(groups []models.StoredGroup) (string, []any, error) {
	q := builder.Insert(groupsTable).Columns(groupColumns...)
	for _, g := range groups {
		var parent any
		if g.ParentID != "" {
			parent = g.ParentID
		}
		q = q.Values(g.ID, parent, g.EncryptedName, g.Position)
	}
	return q.ToSql()
}

func buildSelectGroupsQuery() (string, []any, error) {
	return builder.
		Select(groupColumns...).
		From(groupsTable).
		OrderBy("position").
		ToSql()
}

func buildInsertEntriesQuery(entries []models.StoredEntry) (string, []any, error) {
	q := builder.Insert(entriesTable).Columns(entryColumns...)
	for _, e := range entries {
		q = q.Values(e.ID, e.GroupID, e.EncryptedTitle, e.EncryptedUsername, e.EncryptedPassword, e.Position)
	}
	return q.ToSql()
}

func buildSelectEntriesQuery() (string, []any, error) {
	return builder.
		Select(entryColumns...).
		From(entriesTable).
		OrderBy("position").
		ToSql()
}
