// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a leaf record of the vault tree holding a single credential.
type Entry struct {
	// ID is the UUIDv7 identifier of the entry.
	ID string `json:"id"`

	// GroupID is the ID of the owning group.
	GroupID string `json:"group_id"`

	// Title is the human-readable name of the credential.
	Title string `json:"title"`

	// Username is the login part of the credential. For wifi credentials it
	// holds the network SSID.
	Username string `json:"username"`

	// Password is the secret part of the credential.
	Password string `json:"password"`
}
