// SPDX-License-Identifier: MIT

package token

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	appcfg "github.com/frostpeak/authkit/config"
	"github.com/frostpeak/authkit/time"
)

func New(applicationYamlKey string) Generator {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)
	if cfg.AuthkitToken.TokenBytes <= 0 {
		cfg.AuthkitToken.TokenBytes = defaultTokenBytes
	}
	if cfg.AuthkitToken.SecretBytes <= 0 {
		cfg.AuthkitToken.SecretBytes = defaultSecretBytes
	}

	return &generator{cfg: &cfg}
}

func (g *generator) GenerateToken() (string, error) {
	randomBytes, err := randomness(g.cfg.AuthkitToken.TokenBytes)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return base64.RawURLEncoding.EncodeToString(randomBytes), nil
}

func (g *generator) GenerateSecret() (string, error) {
	randomBytes, err := randomness(g.cfg.AuthkitToken.SecretBytes)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate secret")
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes), nil
}

func (g *generator) GenerateLink(idKind, identifier, tokenValue string) string {
	query := fmt.Sprintf("%v=%v&key=%v", idKind, url.QueryEscape(identifier), tokenValue)
	if g.cfg.AuthkitToken.LinkBaseURL == "" {
		return query
	}

	return g.cfg.AuthkitToken.LinkBaseURL + "?" + query
}

func (g *generator) Issue() (*Record, error) {
	tokenValue, err := g.GenerateToken()
	if err != nil {
		return nil, err
	}

	return &Record{Token: tokenValue, IssuedAt: time.Now()}, nil
}

// Clear marks the record consumed: both the token and its issuance timestamp
// become absent together.
func (r *Record) Clear() {
	r.Token = ""
	r.IssuedAt = nil
}

// IsLive reports whether the record still has a live token at `now`. A record
// expires exactly at issuance + validSecs, so the boundary second is dead.
func (r *Record) IsLive(now *time.Time, validSecs int64) bool {
	if r == nil || r.Token == "" {
		return false
	}

	return IsLive(now, r.IssuedAt, validSecs)
}

func IsLive(now, issuedAt *time.Time, validSecs int64) bool {
	if now == nil || now.Time == nil {
		return false
	}
	if issuedAt == nil || issuedAt.Time == nil || issuedAt.UnixNano() == 0 {
		return false
	}

	return issuedAt.Unix()+validSecs > now.Unix()
}

// randomness fails loudly if the platform CSPRNG does: a weaker source is
// never substituted.
func randomness(byteLength int) ([]byte, error) {
	randomBytes := make([]byte, byteLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, errors.Wrap(err, "failed to read from the CSPRNG")
	}

	return randomBytes, nil
}
