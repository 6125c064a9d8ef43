// SPDX-License-Identifier: MIT

package terror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("invalid password")
	err := New(sentinel, map[string]any{"field": "password"})
	require.ErrorIs(t, err, sentinel)
	wrapped := errors.Wrap(err, "failed to prepare password update")
	tErr := As(wrapped)
	require.NotNil(t, tErr)
	assert.Equal(t, map[string]any{"field": "password"}, tErr.Data)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.Nil(t, As(errors.New("something else")))
}
