// SPDX-License-Identifier: MIT

package otp

import (
	"github.com/frostpeak/authkit/otp/internal"
	"github.com/frostpeak/authkit/time"
)

// Public API.

type (
	// Mode selects the verification variant together with its per-mode
	// parameters. Exactly HOTP and TOTP exist.
	Mode interface {
		mode()
	}
	// HOTP verifies counter based codes. Counter is the highest counter value
	// already consumed for this user, as persisted by the caller; matching
	// starts strictly above it. Lookahead overrides how many counters ahead
	// are tried, <=0 means the configured default. Counters are supported up
	// to math.MaxInt32 so behavior is identical on 32 and 64 bit platforms;
	// candidates above that never match.
	HOTP struct {
		Counter   int64
		Lookahead int64
	}
	// TOTP verifies time based codes. Drift overrides how many adjacent
	// windows around the current one are accepted, <=0 means the configured
	// default.
	TOTP struct {
		Drift int64
	}
	// Result reports whether the code matched and, if so, which counter or
	// time window it consumed. Callers must persist ConsumedValue as the new
	// counter (HOTP) or mark the window as spent (TOTP), otherwise the same
	// code replays.
	Result struct {
		ConsumedValue int64 `json:"consumedValue"`
		Matched       bool  `json:"matched"`
	}
	OTP interface {
		Generator
		Verifier
	}
	Generator interface {
		GenerateURI(userSecret, account string) string
		GenerateCode(now *time.Time, userSecret string) string
		GenerateCounterCode(userSecret string, counter int64) string
	}
	Verifier interface {
		Verify(now *time.Time, userSecret, userInput string, mode Mode) Result
	}
)

// Private API.

const (
	defaultDigits        = 6
	defaultPeriodSeconds = 30
	defaultHOTPLookahead = 3
	defaultTOTPDrift     = 1
)

type (
	otp struct {
		generator internal.Generator
		cfg       *config
	}
	config struct {
		AuthkitOTP struct {
			Issuer        string `yaml:"issuer" mapstructure:"issuer"`
			Digits        int    `yaml:"digits" mapstructure:"digits"`
			PeriodSeconds int64  `yaml:"periodSeconds" mapstructure:"periodSeconds"`
			HOTPLookahead int64  `yaml:"hotpLookahead" mapstructure:"hotpLookahead"`
			TOTPDrift     int64  `yaml:"totpDrift" mapstructure:"totpDrift"`
		} `yaml:"authkit/otp" mapstructure:"authkit/otp"` //nolint:tagliatelle // .
	}
)

func (*HOTP) mode() {}
func (*TOTP) mode() {}
