// SPDX-License-Identifier: MIT

package auth

import (
	"testing"
	stdlibtime "time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostpeak/authkit/credentials"
	"github.com/frostpeak/authkit/otp"
	"github.com/frostpeak/authkit/privacy"
	"github.com/frostpeak/authkit/time"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	usr := &credentials.User{ID: uuid.NewString(), Email: "bogus@example.com"}
	outcome := Resolve(usr, otp.Result{Matched: true, ConsumedValue: 42})
	success, ok := outcome.(*Success)
	require.True(t, ok)
	assert.Equal(t, usr, success.User)
	assert.EqualValues(t, 42, success.ConsumedValue)

	outcome = Resolve(usr, otp.Result{})
	failure, ok := outcome.(*Failure)
	require.True(t, ok)
	assert.Equal(t, FailureReason, failure.Reason)

	outcome = Resolve(nil, otp.Result{Matched: true, ConsumedValue: 42})
	failure, ok = outcome.(*Failure)
	require.True(t, ok)
	assert.Equal(t, FailureReason, failure.Reason, "an unknown user reads exactly like a wrong code")
}

func TestResolveEndToEndTimeBased(t *testing.T) {
	t.Parallel()
	engine := otp.New("self")
	usr := &credentials.User{
		ID:        uuid.NewString(),
		Email:     "bogus@example.com",
		OTPSecret: new(privacy.Sensitive).Bind("bogusSecret"),
	}
	issued := time.New(stdlibtime.Unix(1000, 0))
	code := engine.GenerateCode(issued, usr.OTPSecret.String())

	outcome := Resolve(usr, engine.Verify(time.New(stdlibtime.Unix(1015, 0)), usr.OTPSecret.String(), code, &otp.TOTP{}))
	success, ok := outcome.(*Success)
	require.True(t, ok)
	assert.EqualValues(t, 33, success.ConsumedValue)

	outcome = Resolve(usr, engine.Verify(time.New(stdlibtime.Unix(1095, 0)), usr.OTPSecret.String(), code, &otp.TOTP{}))
	_, ok = outcome.(*Failure)
	assert.True(t, ok)
}

func TestResolveEndToEndCounterBased(t *testing.T) {
	t.Parallel()
	engine := otp.New("self")
	usr := &credentials.User{
		ID:         uuid.NewString(),
		Email:      "bogus@example.com",
		OTPSecret:  new(privacy.Sensitive).Bind("12345678901234567890"),
		OTPCounter: 4,
	}
	code := engine.GenerateCounterCode(usr.OTPSecret.String(), 5)

	outcome := Resolve(usr, engine.Verify(time.Now(), usr.OTPSecret.String(), code, &otp.HOTP{Counter: usr.OTPCounter}))
	success, ok := outcome.(*Success)
	require.True(t, ok)
	assert.EqualValues(t, 5, success.ConsumedValue)
	usr.OTPCounter = success.ConsumedValue

	outcome = Resolve(usr, engine.Verify(time.Now(), usr.OTPSecret.String(), code, &otp.HOTP{Counter: usr.OTPCounter}))
	_, ok = outcome.(*Failure)
	assert.True(t, ok, "replaying the consumed code has to fail")
}
