// SPDX-License-Identifier: MIT

package otp

import (
	"math"
	"testing"
	stdlibtime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostpeak/authkit/time"
)

const (
	// Shared secret of the RFC 4226 appendix D and RFC 6238 appendix B test vectors.
	rfcSecret = "12345678901234567890"
)

//nolint:gochecknoglobals // Immutable RFC 4226 appendix D expectations.
var rfc4226Codes = []string{"755224", "287082", "359152", "969429", "338314", "254676", "287922", "162583", "399871", "520489"}

func TestGenerateCounterCodeRFC4226Vectors(t *testing.T) {
	t.Parallel()
	engine := New("self")
	for counter, expected := range rfc4226Codes {
		assert.Equal(t, expected, engine.GenerateCounterCode(rfcSecret, int64(counter)))
	}
}

func TestGenerateCodeRFC6238Vectors(t *testing.T) {
	t.Parallel()
	engine := New("rfc6238")
	for timestamp, expected := range map[int64]string{
		59:         "94287082",
		1111111109: "07081804",
		1111111111: "14050471",
		1234567890: "89005924",
		2000000000: "69279037",
	} {
		assert.Equal(t, expected, engine.GenerateCode(time.New(stdlibtime.Unix(timestamp, 0)), rfcSecret))
	}
}

func TestVerifyCounterBased(t *testing.T) {
	t.Parallel()
	engine := New("self")
	result := engine.Verify(time.Now(), rfcSecret, rfc4226Codes[5], &HOTP{Counter: 4})
	require.True(t, result.Matched)
	assert.EqualValues(t, 5, result.ConsumedValue)
}

func TestVerifyCounterBasedLookahead(t *testing.T) {
	t.Parallel()
	engine := New("self")
	result := engine.Verify(time.Now(), rfcSecret, rfc4226Codes[3], &HOTP{Counter: 0})
	require.True(t, result.Matched, "3 counters ahead is within the default lookahead")
	assert.EqualValues(t, 3, result.ConsumedValue)
	assert.False(t, engine.Verify(time.Now(), rfcSecret, rfc4226Codes[4], &HOTP{Counter: 0}).Matched, "4 counters ahead is not")
	result = engine.Verify(time.Now(), rfcSecret, rfc4226Codes[9], &HOTP{Counter: 0, Lookahead: 10})
	require.True(t, result.Matched)
	assert.EqualValues(t, 9, result.ConsumedValue)
}

func TestCounterRange(t *testing.T) {
	t.Parallel()
	engine := New("self")
	assert.Empty(t, engine.GenerateCounterCode(rfcSecret, -1))
	assert.Empty(t, engine.GenerateCounterCode(rfcSecret, int64(math.MaxInt32)+1))
	assert.NotEmpty(t, engine.GenerateCounterCode(rfcSecret, math.MaxInt32))
	result := engine.Verify(time.Now(), rfcSecret, rfc4226Codes[1], &HOTP{Counter: math.MaxInt32})
	assert.False(t, result.Matched, "candidates beyond the supported counter range never match")
}

func TestVerifyCounterBasedReplay(t *testing.T) {
	t.Parallel()
	engine := New("self")
	result := engine.Verify(time.Now(), rfcSecret, rfc4226Codes[1], &HOTP{Counter: 0})
	require.True(t, result.Matched)
	assert.EqualValues(t, 1, result.ConsumedValue)
	// The caller persisted ConsumedValue, the same code must never match again.
	assert.False(t, engine.Verify(time.Now(), rfcSecret, rfc4226Codes[1], &HOTP{Counter: result.ConsumedValue}).Matched)
}

func TestVerifyTimeBased(t *testing.T) {
	t.Parallel()
	engine := New("self")
	secret := "bogusSecret" //nolint:gosec // Bogus.
	now := time.New(stdlibtime.Date(2024, 7, 25, 8, 15, 56, 0, stdlibtime.UTC))
	validCode := "799503"
	validCodeAfter30s := "395417"
	require.Equal(t, validCode, engine.GenerateCode(now, secret))
	require.Equal(t, validCode, engine.GenerateCode(time.New(now.Add(3*stdlibtime.Second)), secret))
	require.Equal(t, validCodeAfter30s, engine.GenerateCode(time.New(now.Add(31*stdlibtime.Second)), secret))

	result := engine.Verify(now, secret, validCode, &TOTP{})
	require.True(t, result.Matched)
	assert.Equal(t, now.Unix()/30, result.ConsumedValue)
	assert.False(t, engine.Verify(now, secret, "697025", &TOTP{}).Matched)
	assert.False(t, engine.Verify(now, "wrongSecret", validCode, &TOTP{}).Matched)
}

func TestVerifyTimeBasedDrift(t *testing.T) {
	t.Parallel()
	engine := New("self")
	secret := "bogusSecret" //nolint:gosec // Bogus.
	now := time.New(stdlibtime.Date(2024, 7, 25, 8, 15, 56, 0, stdlibtime.UTC))
	validCode := "799503"
	// One window later the code still matches and consumes its own, older, window.
	result := engine.Verify(time.New(now.Add(31*stdlibtime.Second)), secret, validCode, &TOTP{})
	require.True(t, result.Matched)
	assert.Equal(t, now.Unix()/30, result.ConsumedValue)
	// Two windows later it is outside the default drift.
	assert.False(t, engine.Verify(time.New(now.Add(40*stdlibtime.Second)), secret, validCode, &TOTP{}).Matched)
	result = engine.Verify(time.New(now.Add(40*stdlibtime.Second)), secret, validCode, &TOTP{Drift: 2})
	require.True(t, result.Matched)
	assert.Equal(t, now.Unix()/30, result.ConsumedValue)
	// A code from the upcoming window is accepted too, for client clock skew.
	upcoming := engine.GenerateCode(time.New(now.Add(31*stdlibtime.Second)), secret)
	result = engine.Verify(now, secret, upcoming, &TOTP{})
	require.True(t, result.Matched)
	assert.Equal(t, now.Unix()/30+1, result.ConsumedValue)
}

func TestVerifyTimeBasedWindowArithmetic(t *testing.T) {
	t.Parallel()
	engine := New("self")
	secret := "bogusSecret" //nolint:gosec // Bogus.
	issued := time.New(stdlibtime.Unix(1000, 0))
	code := engine.GenerateCode(issued, secret)
	result := engine.Verify(time.New(stdlibtime.Unix(1015, 0)), secret, code, &TOTP{})
	require.True(t, result.Matched)
	assert.EqualValues(t, 33, result.ConsumedValue)
	assert.False(t, engine.Verify(time.New(stdlibtime.Unix(1095, 0)), secret, code, &TOTP{}).Matched)
}

func TestVerifyMalformedInput(t *testing.T) {
	t.Parallel()
	engine := New("self")
	now := time.Now()
	for _, malformed := range []string{"", "12345", "1234567", "12345a", "12 456", "½23456"} {
		assert.False(t, engine.Verify(now, rfcSecret, malformed, &HOTP{Counter: 0}).Matched, "%q", malformed)
		assert.False(t, engine.Verify(now, rfcSecret, malformed, &TOTP{}).Matched, "%q", malformed)
	}
}

func TestGenerateURI(t *testing.T) {
	t.Parallel()
	engine := New("self")
	uri := engine.GenerateURI("bogusSecret", "bogusAccount")
	assert.Equal(t, "otpauth://totp/authkit.io:bogusAccount?issuer=authkit.io&secret=MJXWO5LTKNSWG4TFOQ", uri)
}
