package logger

import (
	"testing"

	"quiz-forge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	log = nil
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { log = nil })

	require.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "production"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(config.LoggerConfig{}))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, Initialize(config.LoggerConfig{Level: "loud"}))
}
