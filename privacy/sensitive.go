// SPDX-License-Identifier: MIT

package privacy

import (
	"context"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/frostpeak/authkit/log"
)

func (s *Sensitive) Bind(val string) *Sensitive {
	*s = Sensitive(val)

	return s
}

func (s *StoredSensitive) Bind(val string) *StoredSensitive {
	*s = StoredSensitive(val)

	return s
}

func (s *Sensitive) String() string {
	if s == nil {
		return ""
	}

	return string(*s)
}

func (s *StoredSensitive) String() string {
	if s == nil {
		return ""
	}

	return string(*s)
}

func (s *Sensitive) MarshalJSON(_ context.Context) ([]byte, error) {
	if s == nil {
		return []byte(`null`), nil
	}
	if *s == "" {
		return []byte(`""`), nil
	}

	return []byte(`"` + encryptIfPlaintext(string(*s)) + `"`), nil
}

func (s *Sensitive) UnmarshalJSON(_ context.Context, bytes []byte) error {
	val := string(bytes)
	if val == "null" || val == `""` || val == "" {
		return nil
	}
	decrypted, err := decryptLeniently(string(bytes[1 : len(bytes)-1]))
	if err != nil {
		return err
	}
	*s = Sensitive(decrypted)

	return nil
}

func (s *Sensitive) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encodeSensitiveMsgpack(encoder, s.String())
}

func (s *StoredSensitive) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encodeSensitiveMsgpack(encoder, s.String())
}

func (s *Sensitive) DecodeMsgpack(decoder *msgpack.Decoder) error {
	decrypted, err := decodeSensitiveMsgpack(decoder)
	if err == nil && decrypted != "" {
		*s = Sensitive(decrypted)
	}

	return err
}

func (s *StoredSensitive) DecodeMsgpack(decoder *msgpack.Decoder) error {
	decrypted, err := decodeSensitiveMsgpack(decoder)
	if err == nil && decrypted != "" {
		*s = StoredSensitive(decrypted)
	}

	return err
}

func encodeSensitiveMsgpack(encoder *msgpack.Encoder, val string) error {
	if val == "" {
		return errors.Wrap(encoder.EncodeNil(), "failed to encode to nil")
	}

	return errors.Wrap(encoder.EncodeString(encryptIfPlaintext(val)), "failed to encode as encrypted string")
}

func decodeSensitiveMsgpack(decoder *msgpack.Decoder) (string, error) {
	val, err := decoder.DecodeString()
	if err != nil {
		return "", errors.Wrap(err, "failed to decode value as string")
	}
	if val == "" {
		return "", nil
	}

	return decryptLeniently(val)
}

// encryptIfPlaintext leaves values that are already ciphertext (hex) alone,
// to keep marshalling idempotent.
func encryptIfPlaintext(val string) string {
	if _, err := hex.DecodeString(val); err == nil {
		return val
	}

	return Encrypt(val)
}

// decryptLeniently tolerates values persisted before encryption was enabled:
// anything that cannot be decrypted is kept as-is.
func decryptLeniently(val string) (string, error) {
	decrypted, err := Decrypt(val)
	if err != nil {
		if errors.Is(err, errHexDecodingFailed) || errors.Is(err, errDecryptionFailed) {
			if errors.Is(err, errDecryptionFailed) {
				log.Error(err)
			}

			return val, nil
		}

		return "", errors.Wrap(err, "failed to decrypt value")
	}

	return decrypted, nil
}
