// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RootGroupName is the name given to the implicit root group of every vault.
const RootGroupName = "Root"

// Group is an interior node of the vault tree, analogous to a folder.
// Groups are created only through the vault, which guarantees that every
// non-root group has exactly one existing parent.
type Group struct {
	// ID is the UUIDv7 identifier of the group.
	ID string `json:"id"`

	// ParentID is the ID of the parent group. It is empty only for the root.
	ParentID string `json:"parent_id,omitempty"`

	// Name is the display name of the group.
	Name string `json:"name"`
}

// IsRoot reports whether g is the root group of its vault.
func (g Group) IsRoot() bool {
	return g.ParentID == ""
}
