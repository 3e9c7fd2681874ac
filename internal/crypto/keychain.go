// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

// ErrCiphertextTooShort is returned when a sealed blob is shorter than the
// GCM nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// KDFParams holds the Argon2id cost parameters.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams returns the parameters recommended by OWASP (2024):
// one iteration, 64 MiB of memory and four lanes.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	params KDFParams
	rand   io.Reader
}

// NewKeyChainService constructs a [KeyChainService] deriving keys with
// params. Zero fields of params fall back to [DefaultKDFParams].
func NewKeyChainService(params KDFParams) KeyChainService {
	def := DefaultKDFParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}

	return &keyChainService{
		params: params,
		rand:   rand.Reader,
	}
}

// Params implements [KeyChainService].
func (k *keyChainService) Params() KDFParams {
	return k.params
}

// GenerateEncryptionSalt implements [KeyChainService].
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	return k.randomBytes(saltSize)
}

// GenerateDEK implements [KeyChainService].
func (k *keyChainService) GenerateDEK() ([]byte, error) {
	return k.randomBytes(keySize)
}

func (k *keyChainService) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.rand, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateKEK implements [KeyChainService]. The KEK only ever lives in
// memory; it is never written to the vault file.
func (k *keyChainService) GenerateKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		keySize,
	)
}

// GetEncryptedDEK implements [KeyChainService].
func (k *keyChainService) GetEncryptedDEK(DEK, KEK []byte) ([]byte, error) {
	return k.seal(DEK, KEK)
}

// GenerateAuthHash implements [KeyChainService]. authSalt domain-separates
// the hash from the KEK itself.
func (k *keyChainService) GenerateAuthHash(KEK []byte, authSalt string) []byte {
	h := sha256.New()
	h.Write(KEK)
	h.Write([]byte(authSalt))
	return h.Sum(nil)
}

// DecryptDEK implements [KeyChainService]. An error here almost always means
// a wrong master password.
func (k *keyChainService) DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error) {
	dek, err := open(encryptedDEK, KEK)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return dek, nil
}

// EncryptString implements [KeyChainService].
func (k *keyChainService) EncryptString(plaintext string, DEK []byte) (string, error) {
	blob, err := k.seal([]byte(plaintext), DEK)
	if err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString implements [KeyChainService].
func (k *keyChainService) DecryptString(encryptedB64 string, DEK []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := open(blob, DEK)
	if err != nil {
		return "", fmt.Errorf("decrypt value: %w", err)
	}
	return string(plaintext), nil
}

// seal encrypts plaintext with key using AES-256-GCM and a fresh random
// nonce. blob = nonce || ciphertext.
func (k *keyChainService) seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(k.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
