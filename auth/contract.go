// SPDX-License-Identifier: MIT

package auth

import (
	"github.com/frostpeak/authkit/credentials"
)

// Public API.

const (
	// FailureReason is the one canonical message for every failed
	// verification. It deliberately does not distinguish an unknown user
	// from a wrong code, a wrong password or an expired token, so that
	// nothing about the account can be enumerated from the outside.
	FailureReason = "invalid login credentials"
)

type (
	// Outcome is what the request/session layer decides on. Exactly Success
	// and Failure exist.
	Outcome interface {
		outcome()
	}
	Success struct {
		User *credentials.User
		// ConsumedValue has to be persisted as the new counter (HOTP), or
		// recorded as the spent window (TOTP), before a session is issued.
		ConsumedValue int64
	}
	Failure struct {
		Reason string
	}
)

func (*Success) outcome() {}
func (*Failure) outcome() {}
