package vault

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-fixtures/models"
)

// Groups returns every group, root first, in creation order.
func (v *Vault) Groups() []models.Group {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.groups)
}

// Entries returns every entry in creation order.
func (v *Vault) Entries() []models.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.entries)
}

// ChildGroups returns the direct subgroups of the group with the given ID.
func (v *Vault) ChildGroups(groupID string) ([]models.Group, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if _, ok := v.groupIndex[groupID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
	}

	children := make([]models.Group, 0, len(v.children[groupID]))
	for _, idx := range v.children[groupID] {
		children = append(children, v.groups[idx])
	}
	return children, nil
}

// GroupEntries returns the entries placed directly in the group with the
// given ID.
func (v *Vault) GroupEntries(groupID string) ([]models.Entry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if _, ok := v.groupIndex[groupID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
	}

	entries := make([]models.Entry, 0, len(v.groupEntries[groupID]))
	for _, idx := range v.groupEntries[groupID] {
		entries = append(entries, v.entries[idx])
	}
	return entries, nil
}

// Depth returns the number of edges between the root and the group with the
// given ID. The root has depth 0.
func (v *Vault) Depth(groupID string) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	idx, ok := v.groupIndex[groupID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
	}

	depth := 0
	for g := v.groups[idx]; g.ParentID != ""; g = v.groups[v.groupIndex[g.ParentID]] {
		depth++
	}
	return depth, nil
}

// GroupPath returns the names from the root down to the group with the given
// ID, root included.
func (v *Vault) GroupPath(groupID string) ([]string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	idx, ok := v.groupIndex[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
	}

	var names []string
	for g := v.groups[idx]; ; g = v.groups[v.groupIndex[g.ParentID]] {
		names = append(names, g.Name)
		if g.ParentID == "" {
			break
		}
	}
	slices.Reverse(names)
	return names, nil
}
