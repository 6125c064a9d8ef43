// SPDX-License-Identifier: MIT

package otp

import (
	"crypto/subtle"
	"math"

	appcfg "github.com/frostpeak/authkit/config"
	"github.com/frostpeak/authkit/otp/internal/googleauthenticator"
	"github.com/frostpeak/authkit/time"
)

func New(applicationYamlKey string) OTP {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)
	if cfg.AuthkitOTP.Digits <= 0 {
		cfg.AuthkitOTP.Digits = defaultDigits
	}
	if cfg.AuthkitOTP.PeriodSeconds <= 0 {
		cfg.AuthkitOTP.PeriodSeconds = defaultPeriodSeconds
	}
	if cfg.AuthkitOTP.HOTPLookahead <= 0 {
		cfg.AuthkitOTP.HOTPLookahead = defaultHOTPLookahead
	}
	if cfg.AuthkitOTP.TOTPDrift <= 0 {
		cfg.AuthkitOTP.TOTPDrift = defaultTOTPDrift
	}
	google := googleauthenticator.New(cfg.AuthkitOTP.Digits, cfg.AuthkitOTP.PeriodSeconds)

	return &otp{generator: google, cfg: &cfg}
}

func (o *otp) GenerateURI(userSecret, account string) string {
	code := o.generator.CreateTimeBased(userSecret)

	return code.ProvisioningUri(account, o.cfg.AuthkitOTP.Issuer)
}

func (o *otp) GenerateCode(now *time.Time, userSecret string) string {
	code := o.generator.CreateTimeBased(userSecret)

	return code.At(now.Unix())
}

func (o *otp) GenerateCounterCode(userSecret string, counter int64) string {
	if counter < 0 || counter > math.MaxInt32 {
		return ""
	}
	code := o.generator.CreateCounterBased(userSecret)

	return code.At(int(counter))
}

func (o *otp) Verify(now *time.Time, userSecret, userInput string, mode Mode) Result {
	if !o.wellFormed(userInput) {
		return Result{}
	}
	switch params := mode.(type) {
	case *HOTP:
		return o.verifyCounterBased(userSecret, userInput, params)
	case *TOTP:
		return o.verifyTimeBased(now, userSecret, userInput, params)
	default:
		return Result{}
	}
}

// verifyCounterBased tries every counter in (Counter, Counter+lookahead], in
// increasing order, to tolerate codes the user generated but never submitted.
// The first match wins; nothing at or below the already consumed counter can
// ever match again.
func (o *otp) verifyCounterBased(userSecret, userInput string, params *HOTP) Result {
	code := o.generator.CreateCounterBased(userSecret)
	lookahead := params.Lookahead
	if lookahead <= 0 {
		lookahead = o.cfg.AuthkitOTP.HOTPLookahead
	}
	for candidate := params.Counter + 1; candidate <= params.Counter+lookahead; candidate++ {
		if candidate > math.MaxInt32 {
			break
		}
		if codesEqual(code.At(int(candidate)), userInput) {
			return Result{Matched: true, ConsumedValue: candidate}
		}
	}

	return Result{}
}

// verifyTimeBased checks the current window first, then adjacent windows by
// growing distance, the older window before the newer one, so the closest
// match wins and ties break toward the oldest window.
func (o *otp) verifyTimeBased(now *time.Time, userSecret, userInput string, params *TOTP) Result {
	code := o.generator.CreateTimeBased(userSecret)
	drift := params.Drift
	if drift <= 0 {
		drift = o.cfg.AuthkitOTP.TOTPDrift
	}
	period := o.cfg.AuthkitOTP.PeriodSeconds
	currentWindow := now.Unix() / period
	for distance := int64(0); distance <= drift; distance++ {
		for _, window := range []int64{currentWindow - distance, currentWindow + distance} {
			if codesEqual(code.At(window*period), userInput) {
				return Result{Matched: true, ConsumedValue: window}
			}
			if distance == 0 {
				break
			}
		}
	}

	return Result{}
}

func (o *otp) wellFormed(userInput string) bool {
	if len(userInput) != o.cfg.AuthkitOTP.Digits {
		return false
	}
	for _, char := range userInput {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}

func codesEqual(expected, actual string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
