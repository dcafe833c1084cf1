package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Options{ServiceName: "apidemo", Env: "test", Level: "verbose"})
	require.NoError(t, err)

	z := AsZap(l)
	assert.True(t, z.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, z.Core().Enabled(zapcore.DebugLevel))
}

func TestWith_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "test")

	l.Info("hello", "key", "value")
	l.Debug("dbg")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, "value", fields["key"])
}

type otherLogger struct{ Logger }

func TestAsZap_ForeignLoggerIsNop(t *testing.T) {
	z := AsZap(otherLogger{})
	assert.False(t, z.Core().Enabled(zapcore.ErrorLevel))
}
