package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("err"))
	assert.Equal(t, zap.InfoLevel, ParseLevel(""))
	assert.Equal(t, zap.InfoLevel, ParseLevel("verbose"))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant.log")

	log, err := New(Config{Mode: "production", Level: "info", File: path})
	require.NoError(t, err)

	log.With("component", "test").Info("employee added", "name", "Sam")
	log.Debug("hidden below info")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "employee added")
	assert.Contains(t, string(data), `"component":"test"`)
	assert.NotContains(t, string(data), "hidden below info")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Error("still nothing")
	log.Sync()
}
