// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all vault cryptography. It knows nothing about files,
// tables or groups; its only job is to derive and protect keys and to seal
// individual field values.
//
// Sealing a new vault:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()
//	KEK       = GenerateKEK(password, salt)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)
//	AuthHash  = GenerateAuthHash(KEK, authSalt)
//
// Opening reverses the chain: KEK from the stored salt, AuthHash compared,
// DEK unwrapped with DecryptDEK.
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes used as the KDF salt.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK returns a random 32-byte data-encryption key.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the master password
	// and salt with Argon2id.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// GetEncryptedDEK wraps DEK with KEK using AES-256-GCM. The result is
	// nonce || ciphertext.
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// GenerateAuthHash returns SHA-256(KEK || authSalt).
	GenerateAuthHash(KEK []byte, authSalt string) []byte

	// DecryptDEK unwraps a blob produced by GetEncryptedDEK.
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// EncryptString seals plaintext with DEK and returns base64(nonce || ciphertext).
	EncryptString(plaintext string, DEK []byte) (string, error)

	// DecryptString reverses EncryptString.
	DecryptString(encryptedB64 string, DEK []byte) (string, error)

	// Params reports the Argon2id cost the service derives keys with.
	Params() KDFParams
}
