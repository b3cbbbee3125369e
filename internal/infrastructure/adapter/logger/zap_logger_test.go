package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerWithCore(obsCore, core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("Points credited", map[string]any{"points": 50})
	l.Warn("careful", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Points credited", entry.Message)
	assert.Equal(t, int64(50), entry.ContextMap()["points"])

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("dropped", nil)
	l.Error("kept", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := NewZapLogger(Options{Level: "debug", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	l.Info("written to file", map[string]any{"k": "v"})
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written to file"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewZapLogger_RejectsUnknownOutput(t *testing.T) {
	_, err := NewZapLogger(Options{Output: "syslog"})
	assert.Error(t, err)

	_, err = NewZapLogger(Options{Output: "file"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("bogus"))
}
