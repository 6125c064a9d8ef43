// SPDX-License-Identifier: MIT

package privacy

import (
	"crypto/cipher"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

type (
	// EncryptDecrypter protects OTP shared secrets and other key material
	// before it leaves this process. Encryption is deterministic, so the
	// persistence collaborator may index the ciphertext.
	EncryptDecrypter interface {
		Encrypt(string) string
		Decrypt(string) (string, error)
	}
	// Sensitive encrypts itself when marshalled to JSON, so a shared secret
	// is never echoed to callers or logs in the clear.
	Sensitive string
	// StoredSensitive does the same for msgpack, on the persistence path.
	StoredSensitive string
)

// Private API.

// .
var (
	errHexDecodingFailed = errors.New("failed to hex decode value")
	errDecryptionFailed  = errors.New("failed to decrypt value")
	//nolint:gochecknoglobals // Because its loaded once, at runtime.
	ed EncryptDecrypter
	_  msgpack.CustomEncoder   = (*StoredSensitive)(nil)
	_  msgpack.CustomDecoder   = (*StoredSensitive)(nil)
	_  msgpack.CustomEncoder   = (*Sensitive)(nil)
	_  msgpack.CustomDecoder   = (*Sensitive)(nil)
	_  json.UnmarshalerContext = (*Sensitive)(nil)
	_  json.MarshalerContext   = (*Sensitive)(nil)
)

type (
	encryptDecrypter struct {
		AES256GCMSIVCipher cipher.AEAD
		Nonce              []byte
	}
	config struct {
		Secret string `yaml:"secret" mapstructure:"secret"`
	}
)
