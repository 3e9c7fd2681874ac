// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultMeta holds the key material needed to unlock a persisted vault.
// None of the fields are secret on their own: the DEK is stored wrapped
// with the KEK derived from the master password.
type VaultMeta struct {
	// EncryptionSalt is the Argon2id salt used to derive the KEK.
	EncryptionSalt []byte

	// EncryptedDEK is nonce || AES-GCM(KEK, DEK).
	EncryptedDEK []byte

	// AuthHash is SHA-256(KEK || authSalt). Open compares it before any
	// decryption is attempted.
	AuthHash []byte

	// ArgonTime, ArgonMemory and ArgonThreads record the KDF cost the vault
	// was sealed with so it can be reopened with different defaults.
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8

	// RootGroupID is the ID of the root group.
	RootGroupID string

	// CreatedAt is the time the vault was first saved.
	CreatedAt time.Time
}

// StoredGroup is the persisted form of a [Group] with its name encrypted.
type StoredGroup struct {
	ID            string
	ParentID      string
	EncryptedName string
	Position      int
}

// StoredEntry is the persisted form of an [Entry] with every text field
// encrypted.
type StoredEntry struct {
	ID                string
	GroupID           string
	EncryptedTitle    string
	EncryptedUsername string
	EncryptedPassword string
	Position          int
}
