package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	require.NoError(t, Init("production"))
	assert.Equal(t, zapcore.InfoLevel, Level())

	require.NoError(t, Init("development"))
	assert.Equal(t, zapcore.DebugLevel, Level())
}

func TestSetLevel(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())
	require.NoError(t, Init("production"))

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.WarnLevel, Level())
}
