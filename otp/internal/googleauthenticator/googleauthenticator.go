// SPDX-License-Identifier: MIT

package googleauthenticator

import (
	"encoding/base32"

	"github.com/xlzd/gotp"

	"github.com/frostpeak/authkit/otp/internal"
)

type (
	googleGenerator struct {
		digits        int
		periodSeconds int64
	}
)

func New(digits int, periodSeconds int64) internal.Generator {
	return &googleGenerator{digits: digits, periodSeconds: periodSeconds}
}

func (g *googleGenerator) CreateTimeBased(userSecret string) internal.TimeBased {
	return gotp.NewTOTP(encodeSecret(userSecret), g.digits, int(g.periodSeconds), nil)
}

func (g *googleGenerator) CreateCounterBased(userSecret string) internal.CounterBased {
	return gotp.NewHOTP(encodeSecret(userSecret), g.digits, nil)
}

func encodeSecret(userSecret string) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(userSecret))
}
