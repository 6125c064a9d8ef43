// SPDX-License-Identifier: MIT

package credentials

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	appcfg "github.com/frostpeak/authkit/config"
	"github.com/frostpeak/authkit/hash"
	"github.com/frostpeak/authkit/terror"
	"github.com/frostpeak/authkit/time"
	"github.com/frostpeak/authkit/token"
)

func New(applicationYamlKey string, hasher hash.Hasher, extraPolicies ...PasswordPolicy) Policy {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)
	if cfg.AuthkitCredentials.IDKind == "" {
		cfg.AuthkitCredentials.IDKind = defaultIDKind
	}
	if cfg.AuthkitCredentials.MinPasswordLength <= 0 {
		cfg.AuthkitCredentials.MinPasswordLength = defaultMinPasswordLength
	}
	if cfg.AuthkitCredentials.ConfirmationTokenValiditySeconds <= 0 {
		cfg.AuthkitCredentials.ConfirmationTokenValiditySeconds = defaultConfirmationValiditySecs
	}
	if cfg.AuthkitCredentials.ResetTokenValiditySeconds <= 0 {
		cfg.AuthkitCredentials.ResetTokenValiditySeconds = defaultResetValiditySeconds
	}

	return &policy{
		hasher:        hasher,
		tokens:        token.New(applicationYamlKey),
		cfg:           &cfg,
		extraPolicies: extraPolicies,
	}
}

func (p *policy) PreparePasswordUpdate(candidatePassword string) (*HashDirective, error) {
	if err := p.validatePassword(candidatePassword); err != nil {
		return nil, err
	}
	passwordHash, err := p.hasher.Hash(candidatePassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash the candidate password")
	}

	return &HashDirective{PasswordHash: passwordHash}, nil
}

func (p *policy) PrepareConfirmationToken(usr *User) (*TokenUpdate, error) {
	return p.prepareToken(usr, PurposeConfirmation)
}

func (p *policy) PrepareResetToken(usr *User) (*TokenUpdate, error) {
	return p.prepareToken(usr, PurposeReset)
}

// FinalizePasswordReset shapes the two updates that complete a reset: the new
// password hash and the cleared reset token. The persistence collaborator has
// to apply them as one logical unit, so that neither survives without the
// other.
func (p *policy) FinalizePasswordReset(_ *User, newPassword string) (*ResetFinalization, error) {
	directive, err := p.PreparePasswordUpdate(newPassword)
	if err != nil {
		return nil, err
	}

	return &ResetFinalization{PasswordHash: directive.PasswordHash, ResetToken: new(token.Record)}, nil
}

func (p *policy) IsConfirmationTokenLive(now *time.Time, usr *User) bool {
	return usr != nil && usr.ConfirmationToken.IsLive(now, p.cfg.AuthkitCredentials.ConfirmationTokenValiditySeconds)
}

func (p *policy) IsResetTokenLive(now *time.Time, usr *User) bool {
	return usr != nil && usr.ResetToken.IsLive(now, p.cfg.AuthkitCredentials.ResetTokenValiditySeconds)
}

func (p *policy) prepareToken(usr *User, purpose Purpose) (*TokenUpdate, error) {
	record, err := p.tokens.Issue()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to issue a %v token for userID:%v", purpose, usr.ID)
	}

	return &TokenUpdate{
		Purpose: purpose,
		Record:  record,
		Link:    p.tokens.GenerateLink(p.cfg.AuthkitCredentials.IDKind, usr.Email, record.Token),
	}, nil
}

func (p *policy) validatePassword(candidatePassword string) error {
	var violations *multierror.Error
	if minLength := p.cfg.AuthkitCredentials.MinPasswordLength; utf8.RuneCountInString(candidatePassword) < minLength {
		violations = multierror.Append(violations, terror.New(ErrValidation, map[string]any{
			"field":   "password",
			"message": fmt.Sprintf("should be at least %v character(s)", minLength),
		}))
	}
	for _, extraPolicy := range p.extraPolicies {
		if err := extraPolicy.Validate(candidatePassword); err != nil {
			violations = multierror.Append(violations, err)
		}
	}

	return violations.ErrorOrNil() //nolint:wrapcheck // Those are the violations themselves.
}
