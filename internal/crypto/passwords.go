// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

// Package crypto implements the credential codec: reversible AES-256-CTR
// encryption of user passwords with a per-record initialization vector.
//
// The frontend authenticates with plaintext credentials; the server keeps
// only ciphertext and the IV, decrypting at login time to compare. The AES
// key never leaves the process and is derived from a deployment secret.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// keyDerivationSalt domain-separates the password key from any other value
// derived from the same deployment secret.
const keyDerivationSalt = "tecnoscan-password-key"

// keyDerivationIterations follows the OWASP PBKDF2-SHA256 recommendation.
const keyDerivationIterations = 210_000

// passwordCodec is the private implementation of [PasswordCodec].
type passwordCodec struct {
	// key is the 256-bit AES key derived once at construction time.
	key []byte
}

// NewPasswordCodec derives a 256-bit AES key from secret using
// PBKDF2-SHA256 and returns a [PasswordCodec] ready for use.
//
// The returned codec is safe for concurrent use; all state is read-only
// after construction.
func NewPasswordCodec(secret string) PasswordCodec {
	return &passwordCodec{
		key: pbkdf2.Key([]byte(secret), []byte(keyDerivationSalt), keyDerivationIterations, 32, sha256.New),
	}
}

// Encrypt implements [PasswordCodec]. It reads a random 16-byte IV from the
// OS CSPRNG, encrypts plaintext with AES-256-CTR, and returns both values
// hex-encoded for storage in varchar columns.
func (c *passwordCodec) Encrypt(plaintext string) (string, string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", "", err
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, []byte(plaintext))

	return hex.EncodeToString(ciphertext), hex.EncodeToString(iv), nil
}

// Decrypt implements [PasswordCodec]. It reverses [passwordCodec.Encrypt]
// using the stored IV. The IV must decode to exactly one AES block.
func (c *passwordCodec) Decrypt(ciphertext, iv string) (string, error) {
	rawIV, err := hex.DecodeString(iv)
	if err != nil {
		return "", fmt.Errorf("malformed iv: %w", err)
	}
	if len(rawIV) != aes.BlockSize {
		return "", fmt.Errorf("iv must be %d bytes, got %d", aes.BlockSize, len(rawIV))
	}

	rawCiphertext, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	plaintext := make([]byte, len(rawCiphertext))
	cipher.NewCTR(block, rawIV).XORKeyStream(plaintext, rawCiphertext)

	return string(plaintext), nil
}
