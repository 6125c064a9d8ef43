// SPDX-License-Identifier: MIT

package hash

// Public API.

type (
	// Hasher is the password hashing capability injected into the credential
	// update policy. Implementations are salted internally and safe against
	// timing comparison; resolve one at process configuration time.
	Hasher interface {
		Hash(plaintext string) (string, error)
		Verify(hashed, plaintext string) bool
	}
)

// Private API.

const (
	algorithmArgon2id = "argon2id"
	algorithmBcrypt   = "bcrypt"
)

type (
	config struct {
		AuthkitHash struct {
			Algorithm  string `yaml:"algorithm" mapstructure:"algorithm"`
			Pepper     string `yaml:"pepper" mapstructure:"pepper"`
			BcryptCost int    `yaml:"bcryptCost" mapstructure:"bcryptCost"`
		} `yaml:"authkit/hash" mapstructure:"authkit/hash"` //nolint:tagliatelle // .
	}
)
