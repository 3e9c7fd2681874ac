package vault

import "errors"

var (
	// ErrEmptyPassword is returned when a vault is created or opened with an
	// empty master password.
	ErrEmptyPassword = errors.New("master password must not be empty")

	// ErrInvalidPassword is returned by Open when the master password does
	// not unlock the vault.
	ErrInvalidPassword = errors.New("invalid master password")

	// ErrVaultNotFound is returned by Open when no file exists at the path.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrGroupNotFound is returned when a destination group does not belong
	// to the vault.
	ErrGroupNotFound = errors.New("group not found")

	// ErrCorruptedVault is returned when a persisted vault is structurally
	// inconsistent (missing root, dangling parent, undecryptable field).
	ErrCorruptedVault = errors.New("vault is corrupted")
)
