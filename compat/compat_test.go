package compat

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xd-jeff/logutil"
)

// newTestLogger builds a file-mode logger writing everything to a temp dir
func newTestLogger(t *testing.T) (*logutil.Logger, string) {
	t.Helper()
	tmpDir := t.TempDir()

	logger, err := logutil.NewBuilder().
		Tag("COMPAT").
		ConsoleMode(false).
		Directory(tmpDir).
		MinFileLevel(logutil.LevelTrace).
		Build()
	require.NoError(t, err)

	return logger, tmpDir
}

func readTodayLog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, time.Now().Format("20060102")+".log")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestGnetAdapter(t *testing.T) {
	logger, tmpDir := newTestLogger(t)

	adapter := NewGnetAdapter(logger)
	adapter.Debugf("debug %d", 1)
	adapter.Infof("info %s", "msg")
	adapter.Warnf("warn %v", true)
	adapter.Errorf("error %d", 2)
	require.NoError(t, logger.Close())

	content := readTodayLog(t, tmpDir)
	assert.Contains(t, content, "DEBUG")
	assert.Contains(t, content, "info msg")
	assert.Contains(t, content, "WARN")
	assert.Contains(t, content, "error 2")
}

func TestGnetAdapterFatalHandler(t *testing.T) {
	logger, tmpDir := newTestLogger(t)

	var fatalMsg string
	adapter := NewGnetAdapter(logger, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Fatalf("fatal %s", "crash")
	assert.Equal(t, "fatal crash", fatalMsg)

	content := readTodayLog(t, tmpDir)
	assert.Contains(t, content, "FATAL")
	assert.Contains(t, content, "fatal crash")
}

func TestFastHTTPAdapter(t *testing.T) {
	logger, tmpDir := newTestLogger(t)

	adapter := NewFastHTTPAdapter(logger)
	adapter.Printf("serving connection from %s", "10.0.0.1")
	adapter.Printf("error when serving connection: %s", "reset")
	require.NoError(t, logger.Close())

	content := readTodayLog(t, tmpDir)
	assert.Contains(t, content, "INFO")
	assert.Contains(t, content, "serving connection from 10.0.0.1")
	assert.Contains(t, content, "ERROR")
}

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg  string
		want logutil.Level
	}{
		{"error when serving connection", logutil.LevelError},
		{"handshake failed", logutil.LevelError},
		{"read timeout exceeded", logutil.LevelWarn},
		{"debug: connection state", logutil.LevelDebug},
		{"listening on :8080", logutil.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLogLevel(tt.msg), "msg %q", tt.msg)
	}
}

func TestCompatBuilder(t *testing.T) {
	logger, _ := newTestLogger(t)
	defer logger.Close()

	gnetAdapter, err := NewBuilder().WithLogger(logger).BuildGnet()
	require.NoError(t, err)
	assert.NotNil(t, gnetAdapter)

	fasthttpAdapter, err := NewBuilder().WithLogger(logger).BuildFastHTTP()
	require.NoError(t, err)
	assert.NotNil(t, fasthttpAdapter)

	_, err = NewBuilder().WithLogger(nil).BuildGnet()
	assert.Error(t, err)
}
