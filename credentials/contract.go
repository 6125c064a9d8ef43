// SPDX-License-Identifier: MIT

package credentials

import (
	"github.com/pkg/errors"

	"github.com/frostpeak/authkit/hash"
	"github.com/frostpeak/authkit/privacy"
	"github.com/frostpeak/authkit/time"
	"github.com/frostpeak/authkit/token"
)

// Public API.

var (
	// ErrValidation is wrapped in a terror.Err whose Data carries the field
	// the violation applies to and a message safe to show the user.
	ErrValidation = errors.New("validation failed")
)

const (
	PurposeConfirmation Purpose = "confirmation"
	PurposeReset        Purpose = "reset"
)

type (
	Purpose string
	// User is this library's view of the record the persistence collaborator
	// owns: only the fields the policy instructs updates for.
	User struct {
		ConfirmationToken *token.Record      `json:"confirmationToken,omitempty"`
		ResetToken        *token.Record      `json:"resetToken,omitempty"`
		OTPSecret         *privacy.Sensitive `json:"otpSecret,omitempty"`
		ID                string             `json:"id,omitempty"`
		Email             string             `json:"email,omitempty"`
		PasswordHash      string             `json:"-"`
		OTPCounter        int64              `json:"-"`
	}
	// HashDirective instructs the caller to store PasswordHash in place of
	// any previous hash, together with whatever update it was prepared for.
	HashDirective struct {
		PasswordHash string
	}
	// TokenUpdate is the set of fields to merge into the user record for a
	// freshly issued token. It supersedes any previous unconsumed token of
	// the same purpose.
	TokenUpdate struct {
		Record  *token.Record
		Purpose Purpose
		Link    string
	}
	// ResetFinalization groups the two updates that finish a password reset.
	// The storage layer has to apply both as one logical unit: the new hash
	// and the cleared reset token.
	ResetFinalization struct {
		ResetToken   *token.Record
		PasswordHash string
	}
	// PasswordPolicy is an optional extra complexity rule, beyond the
	// minimum length this package enforces itself.
	PasswordPolicy interface {
		Validate(candidatePassword string) error
	}
	Policy interface {
		PreparePasswordUpdate(candidatePassword string) (*HashDirective, error)
		PrepareConfirmationToken(usr *User) (*TokenUpdate, error)
		PrepareResetToken(usr *User) (*TokenUpdate, error)
		FinalizePasswordReset(usr *User, newPassword string) (*ResetFinalization, error)
		IsConfirmationTokenLive(now *time.Time, usr *User) bool
		IsResetTokenLive(now *time.Time, usr *User) bool
	}
)

// Private API.

const (
	defaultIDKind                   = "email"
	defaultMinPasswordLength        = 8
	defaultConfirmationValiditySecs = 24 * 60 * 60
	defaultResetValiditySeconds     = 60 * 60
)

type (
	policy struct {
		hasher        hash.Hasher
		tokens        token.Generator
		cfg           *config
		extraPolicies []PasswordPolicy
	}
	config struct {
		AuthkitCredentials struct {
			IDKind                           string `yaml:"idKind" mapstructure:"idKind"`
			MinPasswordLength                int    `yaml:"minPasswordLength" mapstructure:"minPasswordLength"`
			ConfirmationTokenValiditySeconds int64  `yaml:"confirmationTokenValiditySeconds" mapstructure:"confirmationTokenValiditySeconds"`
			ResetTokenValiditySeconds        int64  `yaml:"resetTokenValiditySeconds" mapstructure:"resetTokenValiditySeconds"`
		} `yaml:"authkit/credentials" mapstructure:"authkit/credentials"` //nolint:tagliatelle // .
	}
)
