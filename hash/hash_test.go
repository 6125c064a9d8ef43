// SPDX-License-Identifier: MIT

package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	hasher := New("self")
	require.IsType(t, &Argon2id{}, hasher)
}

func TestArgon2id(t *testing.T) {
	t.Parallel()
	hasher := NewArgon2id("bogusPepper")
	hashed, err := hasher.Hash("bogusPassword")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$argon2id$"))
	assert.True(t, hasher.Verify(hashed, "bogusPassword"))
	assert.False(t, hasher.Verify(hashed, "wrongPassword"))
	assert.False(t, hasher.Verify("", "bogusPassword"))
	assert.False(t, hasher.Verify("not an encoded hash", "bogusPassword"))
	assert.False(t, NewArgon2id("anotherPepper").Verify(hashed, "bogusPassword"))
	otherHash, err := hasher.Hash("bogusPassword")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, otherHash, "the salt has to differ per hash")
	assert.True(t, hasher.Verify(otherHash, "bogusPassword"))
}

func TestBcrypt(t *testing.T) {
	t.Parallel()
	hasher := NewBcrypt(0, "bogusPepper")
	hashed, err := hasher.Hash("bogusPassword")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hashed, "bogusPassword"))
	assert.False(t, hasher.Verify(hashed, "wrongPassword"))
	assert.False(t, hasher.Verify("", "bogusPassword"))
}
