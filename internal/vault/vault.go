// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements a password database protected by a master
// password: a tree of groups and entries kept in memory and persisted to a
// single SQLite file.
//
// Every text field is sealed with a random data-encryption key (DEK) before
// it reaches the file. The DEK itself is stored wrapped with a key derived
// from the master password by Argon2id, so the file can only be read back
// with that password:
//
//	v, _ := vault.New("fixtures.db", "secret")
//	g, _ := v.AddGroup(v.RootGroup(), "network")
//	_, _ = v.AddEntry(g, "wifi_home", "homenet", "hunter22")
//	_ = v.Save(ctx)
//
//	v, err := vault.Open(ctx, "fixtures.db", "secret")
package vault

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-fixtures/internal/crypto"
	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/internal/store"
	"github.com/MKhiriev/go-pass-fixtures/internal/utils"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

// authSalt domain-separates the stored password check from the KEK.
const authSalt = "go-pass-fixtures/vault-auth"

// Vault is an open password database. It is safe for concurrent reads; writes
// are serialized.
type Vault struct {
	path   string
	keys   crypto.KeyChainService
	ids    utils.IDGenerator

	dek  []byte
	meta models.VaultMeta

	mu           sync.RWMutex
	groups       []models.Group
	groupIndex   map[string]int
	children     map[string][]int
	entries      []models.Entry
	groupEntries map[string][]int
}

// Option configures a Vault.
type Option func(*options)

type options struct {
	keys      crypto.KeyChainService
	kdf       crypto.KDFParams
	kdfForced bool
	ids       utils.IDGenerator
}

// WithKeyChain replaces the key chain used to derive and seal keys.
func WithKeyChain(keys crypto.KeyChainService) Option {
	return func(o *options) {
		o.keys = keys
	}
}

// WithKDFParams sets the Argon2id cost for new vaults. Open always uses the
// cost recorded in the file.
func WithKDFParams(params crypto.KDFParams) Option {
	return func(o *options) {
		o.kdf = params
		o.kdfForced = true
	}
}

// WithIDGenerator replaces the UUIDv7 generator used for group and entry IDs.
func WithIDGenerator(ids utils.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		kdf: crypto.DefaultKDFParams(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.ids == nil {
		o.ids = utils.NewUUIDGenerator()
	}
	return o
}

// withVaultLogger derives a logger tagged with the vault path from the one
// carried by ctx and attaches it, so the store logs with the same fields.
func withVaultLogger(ctx context.Context, path string) (context.Context, *logger.Logger) {
	log := logger.FromContext(ctx).GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("vault", path)
	})
	return log.WithContext(ctx), log
}

func newVault(path string, o *options) *Vault {
	return &Vault{
		path:         path,
		keys:         o.keys,
		ids:          o.ids,
		groupIndex:   make(map[string]int),
		children:     make(map[string][]int),
		groupEntries: make(map[string][]int),
	}
}

// New creates an empty vault that will be saved to path and protected by
// password. The vault holds only its root group until entries and groups are
// added. Nothing is written to disk before Save.
func New(path, password string, opts ...Option) (*Vault, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	o := buildOptions(opts)
	if o.keys == nil {
		o.keys = crypto.NewKeyChainService(o.kdf)
	}
	v := newVault(path, o)

	salt, err := v.keys.GenerateEncryptionSalt()
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	dek, err := v.keys.GenerateDEK()
	if err != nil {
		return nil, fmt.Errorf("error generating DEK: %w", err)
	}

	kek := v.keys.GenerateKEK(password, salt)
	encryptedDEK, err := v.keys.GetEncryptedDEK(dek, kek)
	if err != nil {
		return nil, fmt.Errorf("error encrypting DEK: %w", err)
	}

	params := v.keys.Params()
	root := models.Group{ID: v.ids.Generate(), Name: models.RootGroupName}

	v.dek = dek
	v.meta = models.VaultMeta{
		EncryptionSalt: salt,
		EncryptedDEK:   encryptedDEK,
		AuthHash:       v.keys.GenerateAuthHash(kek, authSalt),
		ArgonTime:      params.Time,
		ArgonMemory:    params.Memory,
		ArgonThreads:   params.Threads,
		RootGroupID:    root.ID,
	}
	v.insertGroup(root)

	return v, nil
}

// Open loads the vault at path and unlocks it with password.
func Open(ctx context.Context, path, password string, opts ...Option) (*Vault, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, path)
		}
		return nil, fmt.Errorf("stat vault file: %w", err)
	}

	o := buildOptions(opts)
	v := newVault(path, o)
	ctx, log := withVaultLogger(ctx, path)

	db, err := store.NewConnectSQLite(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotVaultFile) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
		return nil, fmt.Errorf("open vault file: %w", err)
	}
	defer db.Close()

	repo := store.NewVaultRepository(db, log)

	meta, err := repo.GetMeta(ctx)
	if err != nil {
		if errors.Is(err, store.ErrMetaNotFound) || errors.Is(err, store.ErrNotVaultFile) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
		return nil, fmt.Errorf("read vault meta: %w", err)
	}
	v.meta = meta

	if v.keys == nil {
		v.keys = crypto.NewKeyChainService(crypto.KDFParams{
			Time:    meta.ArgonTime,
			Memory:  meta.ArgonMemory,
			Threads: meta.ArgonThreads,
		})
	}

	if err = v.unlock(password); err != nil {
		return nil, err
	}

	groups, err := repo.GetGroups(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotVaultFile) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
		return nil, fmt.Errorf("read vault groups: %w", err)
	}
	if err = v.loadGroups(groups); err != nil {
		return nil, err
	}

	entries, err := repo.GetEntries(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotVaultFile) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
		return nil, fmt.Errorf("read vault entries: %w", err)
	}
	if err = v.loadEntries(entries); err != nil {
		return nil, err
	}

	log.Debug().
		Int("groups", len(v.groups)).
		Int("entries", len(v.entries)).
		Msg("vault opened")

	return v, nil
}

func (v *Vault) unlock(password string) error {
	kek := v.keys.GenerateKEK(password, v.meta.EncryptionSalt)

	if subtle.ConstantTimeCompare(v.keys.GenerateAuthHash(kek, authSalt), v.meta.AuthHash) != 1 {
		return ErrInvalidPassword
	}

	dek, err := v.keys.DecryptDEK(v.meta.EncryptedDEK, kek)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}

	v.dek = dek
	return nil
}

func (v *Vault) loadGroups(stored []models.StoredGroup) error {
	for _, sg := range stored {
		name, err := v.keys.DecryptString(sg.EncryptedName, v.dek)
		if err != nil {
			return fmt.Errorf("%w: group %s: %w", ErrCorruptedVault, sg.ID, err)
		}

		if sg.ParentID == "" {
			if sg.ID != v.meta.RootGroupID || len(v.groups) > 0 {
				return fmt.Errorf("%w: unexpected root group %s", ErrCorruptedVault, sg.ID)
			}
		} else if _, ok := v.groupIndex[sg.ParentID]; !ok {
			return fmt.Errorf("%w: group %s has unknown parent %s", ErrCorruptedVault, sg.ID, sg.ParentID)
		}

		v.insertGroup(models.Group{ID: sg.ID, ParentID: sg.ParentID, Name: name})
	}

	if len(v.groups) == 0 {
		return fmt.Errorf("%w: root group missing", ErrCorruptedVault)
	}
	return nil
}

func (v *Vault) loadEntries(stored []models.StoredEntry) error {
	for _, se := range stored {
		if _, ok := v.groupIndex[se.GroupID]; !ok {
			return fmt.Errorf("%w: entry %s has unknown group %s", ErrCorruptedVault, se.ID, se.GroupID)
		}

		e := models.Entry{ID: se.ID, GroupID: se.GroupID}
		for _, f := range []struct {
			dst *string
			src string
		}{
			{&e.Title, se.EncryptedTitle},
			{&e.Username, se.EncryptedUsername},
			{&e.Password, se.EncryptedPassword},
		} {
			plain, err := v.keys.DecryptString(f.src, v.dek)
			if err != nil {
				return fmt.Errorf("%w: entry %s: %w", ErrCorruptedVault, se.ID, err)
			}
			*f.dst = plain
		}

		v.insertEntry(e)
	}
	return nil
}

// Path returns the file the vault is saved to.
func (v *Vault) Path() string {
	return v.path
}

// RootGroup returns the root group of the vault.
func (v *Vault) RootGroup() models.Group {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.groups[0]
}

// AddGroup creates a group named name under parent.
func (v *Vault) AddGroup(parent models.Group, name string) (models.Group, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.groupIndex[parent.ID]; !ok {
		return models.Group{}, fmt.Errorf("%w: %q", ErrGroupNotFound, parent.ID)
	}

	g := models.Group{
		ID:       v.ids.Generate(),
		ParentID: parent.ID,
		Name:     name,
	}
	v.insertGroup(g)
	return g, nil
}

// AddEntry creates an entry under parent.
func (v *Vault) AddEntry(parent models.Group, title, username, password string) (models.Entry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.groupIndex[parent.ID]; !ok {
		return models.Entry{}, fmt.Errorf("%w: %q", ErrGroupNotFound, parent.ID)
	}

	e := models.Entry{
		ID:       v.ids.Generate(),
		GroupID:  parent.ID,
		Title:    title,
		Username: username,
		Password: password,
	}
	v.insertEntry(e)
	return e, nil
}

func (v *Vault) insertGroup(g models.Group) {
	idx := len(v.groups)
	v.groups = append(v.groups, g)
	v.groupIndex[g.ID] = idx
	if g.ParentID != "" {
		v.children[g.ParentID] = append(v.children[g.ParentID], idx)
	}
}

func (v *Vault) insertEntry(e models.Entry) {
	v.groupEntries[e.GroupID] = append(v.groupEntries[e.GroupID], len(v.entries))
	v.entries = append(v.entries, e)
}

// Save writes the vault to its path. The file is built next to the target
// and renamed over it, so a failed save never leaves a half-written vault at
// path.
func (v *Vault) Save(ctx context.Context) (err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	ctx, log := withVaultLogger(ctx, v.path)

	groups, entries, err := v.seal()
	if err != nil {
		return err
	}

	meta := v.meta
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	dir := filepath.Dir(v.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(v.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	tmpPath := tmp.Name()
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp vault file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = v.writeFile(ctx, tmpPath, meta, groups, entries); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, v.path); err != nil {
		return fmt.Errorf("replace vault file: %w", err)
	}

	v.meta.CreatedAt = meta.CreatedAt
	log.Info().
		Int("groups", len(groups)).
		Int("entries", len(entries)).
		Msg("vault saved")

	return nil
}

func (v *Vault) writeFile(ctx context.Context, path string, meta models.VaultMeta, groups []models.StoredGroup, entries []models.StoredEntry) error {
	db, err := store.NewConnectSQLite(ctx, path)
	if err != nil {
		return fmt.Errorf("open vault file: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return fmt.Errorf("prepare vault file: %w", err)
	}

	if err = store.NewVaultRepository(db, logger.FromContext(ctx)).SaveVault(ctx, meta, groups, entries); err != nil {
		db.Close()
		return fmt.Errorf("write vault file: %w", err)
	}

	if err = db.Close(); err != nil {
		return fmt.Errorf("close vault file: %w", err)
	}

	return os.Chmod(path, 0o600)
}

// seal encrypts every group and entry with the DEK.
func (v *Vault) seal() ([]models.StoredGroup, []models.StoredEntry, error) {
	groups := make([]models.StoredGroup, 0, len(v.groups))
	for i, g := range v.groups {
		name, err := v.keys.EncryptString(g.Name, v.dek)
		if err != nil {
			return nil, nil, fmt.Errorf("encrypt group %s: %w", g.ID, err)
		}
		groups = append(groups, models.StoredGroup{
			ID:            g.ID,
			ParentID:      g.ParentID,
			EncryptedName: name,
			Position:      i,
		})
	}

	entries := make([]models.StoredEntry, 0, len(v.entries))
	for i, e := range v.entries {
		se := models.StoredEntry{ID: e.ID, GroupID: e.GroupID, Position: i}
		for _, f := range []struct {
			dst *string
			src string
		}{
			{&se.EncryptedTitle, e.Title},
			{&se.EncryptedUsername, e.Username},
			{&se.EncryptedPassword, e.Password},
		} {
			sealed, err := v.keys.EncryptString(f.src, v.dek)
			if err != nil {
				return nil, nil, fmt.Errorf("encrypt entry %s: %w", e.ID, err)
			}
			*f.dst = sealed
		}
		entries = append(entries, se)
	}

	return groups, entries, nil
}
