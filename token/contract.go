// SPDX-License-Identifier: MIT

package token

import (
	"github.com/frostpeak/authkit/time"
)

// Public API.

type (
	// Record is one pending single-use token: an email confirmation or a
	// password reset. At most one live Record exists per user and purpose;
	// issuing a new one supersedes the previous one.
	Record struct {
		IssuedAt *time.Time `json:"issuedAt,omitempty"`
		Token    string     `json:"token,omitempty"`
	}
	Generator interface {
		// GenerateToken returns a fresh, URL safe, single use token.
		GenerateToken() (string, error)
		// GenerateSecret returns a fresh OTP shared secret, base32 encoded
		// for authenticator app compatibility.
		GenerateSecret() (string, error)
		// GenerateLink embeds an identifier and a token into the configured
		// base URL as `{idKind}={identifier}&key={token}`, in that order. The
		// identifier is percent encoded, the token never needs to be.
		GenerateLink(idKind, identifier, tokenValue string) string
		// Issue generates a token and stamps its issuance time. The caller
		// merges the Record into the user and owns persisting it.
		Issue() (*Record, error)
	}
)

// Private API.

const (
	defaultTokenBytes  = 16
	defaultSecretBytes = 20
)

type (
	generator struct {
		cfg *config
	}
	config struct {
		AuthkitToken struct {
			LinkBaseURL string `yaml:"linkBaseUrl" mapstructure:"linkBaseUrl"`
			TokenBytes  int    `yaml:"tokenBytes" mapstructure:"tokenBytes"`
			SecretBytes int    `yaml:"secretBytes" mapstructure:"secretBytes"`
		} `yaml:"authkit/token" mapstructure:"authkit/token"` //nolint:tagliatelle // .
	}
)
