// SPDX-License-Identifier: MIT

package auth

import (
	"github.com/frostpeak/authkit/credentials"
	"github.com/frostpeak/authkit/log"
	"github.com/frostpeak/authkit/otp"
)

// Resolve maps a (user, verification result) pair into the outcome the
// caller acts on. The specific cause only reaches the internal log, never
// the returned Failure.
func Resolve(usr *credentials.User, result otp.Result) Outcome {
	if usr == nil {
		log.Debug("verification failed: user not found")

		return &Failure{Reason: FailureReason}
	}
	if !result.Matched {
		log.Debug("verification failed: one-time code mismatch", "userID", usr.ID)

		return &Failure{Reason: FailureReason}
	}

	return &Success{User: usr, ConsumedValue: result.ConsumedValue}
}
