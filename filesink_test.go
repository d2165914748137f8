package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	trimmed := strings.TrimRight(string(content), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestFileSinkAppendOrder(t *testing.T) {
	tmpDir := t.TempDir()
	sink, err := NewFileSink(tmpDir, 7)
	require.NoError(t, err)

	sink.Write(LevelError, "first")
	sink.Write(LevelError, "second")
	sink.Write(LevelError, "third")
	require.NoError(t, sink.Close())

	day := time.Now().Format(dayFormat)
	lines := readLines(t, filepath.Join(tmpDir, day+logExtension))
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestFileSinkDayRotation(t *testing.T) {
	tmpDir := t.TempDir()
	sink, err := NewFileSink(tmpDir, 0)
	require.NoError(t, err)

	day1 := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 0, 1, 0, 0, time.UTC)

	clock := day1
	sink.now = func() time.Time { return clock }

	sink.Write(LevelError, "before midnight")

	// The first day's file is complete and closed before the new day's
	// write begins
	clock = day2
	sink.Write(LevelError, "after midnight")
	sink.Write(LevelError, "later that day")
	require.NoError(t, sink.Close())

	assert.Equal(t, []string{"before midnight"},
		readLines(t, filepath.Join(tmpDir, "20240115.log")))
	assert.Equal(t, []string{"after midnight", "later that day"},
		readLines(t, filepath.Join(tmpDir, "20240116.log")))
}

func TestFileSinkStaleHandleNeverReused(t *testing.T) {
	tmpDir := t.TempDir()
	sink, err := NewFileSink(tmpDir, 0)
	require.NoError(t, err)

	clock := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return clock }
	sink.Write(LevelError, "day one")

	clock = clock.AddDate(0, 0, 1)
	sink.Write(LevelError, "day two")
	sink.Write(LevelError, "day two again")
	require.NoError(t, sink.Close())

	// Writes on the new day never land in the previous day's file
	assert.Len(t, readLines(t, filepath.Join(tmpDir, "20240115.log")), 1)
	assert.Len(t, readLines(t, filepath.Join(tmpDir, "20240116.log")), 2)
}

func TestFileSinkCloseIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	sink, err := NewFileSink(tmpDir, 0)
	require.NoError(t, err)

	// Close with no handle open is safe
	assert.NoError(t, sink.Close())
	assert.NoError(t, sink.Close())

	// Writes after close are no-ops
	sink.Write(LevelError, "dropped")
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileSinkInitFailure(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewFileSink(blocker, 7)
	assert.Error(t, err)

	_, err = NewFileSink("   ", 7)
	assert.Error(t, err)
}

func TestSweepExpired(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"20240101.log", "20240110.log", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x\n"), 0644))
	}

	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	sweepExpired(tmpDir, 7, now)

	// 14 days old: deleted
	_, err := os.Stat(filepath.Join(tmpDir, "20240101.log"))
	assert.True(t, os.IsNotExist(err))

	// 5 days old: kept
	_, err = os.Stat(filepath.Join(tmpDir, "20240110.log"))
	assert.NoError(t, err)

	// Non-matching name: untouched
	_, err = os.Stat(filepath.Join(tmpDir, "readme.txt"))
	assert.NoError(t, err)
}

func TestSweepExpiredBoundary(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"20240108.log", "20240107.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x\n"), 0644))
	}

	now := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	sweepExpired(tmpDir, 7, now)

	// Exactly windowDays old: kept (only strictly older files are deleted)
	_, err := os.Stat(filepath.Join(tmpDir, "20240108.log"))
	assert.NoError(t, err)

	// One day past the window: deleted
	_, err = os.Stat(filepath.Join(tmpDir, "20240107.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestSweepExpiredSkipsMalformedNames(t *testing.T) {
	tmpDir := t.TempDir()
	names := []string{
		"2024010a.log", // non-digit date
		"202401.log",   // short date
		"20240101.txt", // wrong extension
		"20240101.log.bak",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x\n"), 0644))
	}

	sweepExpired(tmpDir, 7, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, name := range names {
		_, err := os.Stat(filepath.Join(tmpDir, name))
		assert.NoError(t, err, "file %s should be untouched", name)
	}
}

func TestNewFileSinkSweepsOnInit(t *testing.T) {
	tmpDir := t.TempDir()
	stale := filepath.Join(tmpDir, "20200101.log")
	require.NoError(t, os.WriteFile(stale, []byte("old\n"), 0644))

	sink, err := NewFileSink(tmpDir, 7)
	require.NoError(t, err)
	defer sink.Close()

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestNewFileSinkRetentionDisabled(t *testing.T) {
	tmpDir := t.TempDir()
	stale := filepath.Join(tmpDir, "20200101.log")
	require.NoError(t, os.WriteFile(stale, []byte("old\n"), 0644))

	sink, err := NewFileSink(tmpDir, 0)
	require.NoError(t, err)
	defer sink.Close()

	// retention_days=0 disables the sweep entirely
	_, err = os.Stat(stale)
	assert.NoError(t, err)
}
