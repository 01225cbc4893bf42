package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Initialize("", ""))
	assert.False(t, L().Core().Enabled(zap.ErrorLevel))
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	path := filepath.Join(t.TempDir(), "pad.log")

	require.NoError(t, Initialize("debug", path))
	Named("test").Info("hello", zap.String("pane", "p1"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "p1")
}

func TestInitializeFromEnv(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	t.Setenv(LogLevelEnvVar, "warn")

	require.NoError(t, Initialize("", filepath.Join(t.TempDir(), "pad.log")))
	assert.False(t, L().Core().Enabled(zap.InfoLevel))
	assert.True(t, L().Core().Enabled(zap.WarnLevel))
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	err := Initialize("verbose", filepath.Join(t.TempDir(), "pad.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
	assert.False(t, L().Core().Enabled(zap.ErrorLevel), "logger stays silent")
}

func TestInitializeIgnoresLevelCase(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Initialize("Debug", filepath.Join(t.TempDir(), "pad.log")))
	assert.True(t, L().Core().Enabled(zap.DebugLevel))
}
