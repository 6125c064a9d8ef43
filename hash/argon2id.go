// SPDX-License-Identifier: MIT

package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const (
	argon2idMemory      = 64 * 1024
	argon2idIterations  = 3
	argon2idParallelism = 2
	argon2idSaltLength  = 16
	argon2idKeyLength   = 32
	argon2idHashParts   = 6
)

type (
	// Argon2id implements Hasher with the Argon2id KDF. The pepper, if any,
	// is appended to the plaintext and lives in configuration, not storage.
	Argon2id struct {
		pepper string
	}
)

func NewArgon2id(pepper string) *Argon2id {
	return &Argon2id{pepper: pepper}
}

func (a *Argon2id) Hash(plaintext string) (string, error) {
	salt := make([]byte, argon2idSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	key := argon2.IDKey([]byte(plaintext+a.pepper), salt, argon2idIterations, argon2idMemory, argon2idParallelism, argon2idKeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2idMemory,
		argon2idIterations,
		argon2idParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

//nolint:funlen // Parsing the encoded parameters is unavoidably sequential.
func (a *Argon2id) Verify(hashed, plaintext string) bool {
	if hashed == "" || plaintext == "" {
		return false
	}
	parts := strings.Split(hashed, "$")
	if len(parts) != argon2idHashParts || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var (
		memory      uint32
		iterations  uint32
		parallelism uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expectedKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	computedKey := argon2.IDKey([]byte(plaintext+a.pepper), salt, iterations, memory, parallelism, uint32(len(expectedKey)))

	return subtle.ConstantTimeCompare(expectedKey, computedKey) == 1
}
