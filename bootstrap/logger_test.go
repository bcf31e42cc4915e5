package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestInitLogger(t *testing.T) {
	logger, sugar := InitLogger("debug")
	require.NotNil(t, logger)
	require.NotNil(t, sugar)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, _ = InitLogger("error")
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}
