//go:build !darwin

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyring(t *testing.T) {
	t.Setenv(EnvKey, "")
	k := NewKeyring()

	assert.False(t, k.IsAvailable())
	_, err := k.GetKey()
	assert.Error(t, err)
	assert.Error(t, k.SetKey(""))
	assert.Error(t, k.SetKey("s3cret"))

	t.Setenv(EnvKey, "s3cret")
	assert.True(t, k.IsAvailable())
	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", key)
	assert.NoError(t, k.SetKey("s3cret"))
	assert.Error(t, k.DeleteKey())
}
