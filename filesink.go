package logutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	dayFormat    = "20060102"
	logExtension = ".log"
)

// FileSink appends formatted lines to date-partitioned files, one file per
// calendar day. At most one file handle is open at any instant; the handle
// is switched when the day changes and all writes are serialized against
// that switch, so no line ever lands on a half-rotated handle.
type FileSink struct {
	mu            sync.Mutex
	dir           string
	retentionDays int64
	file          *os.File
	day           string // day key for the active handle, "" when none
	closed        bool

	now func() time.Time // clock source, replaceable in tests
}

// NewFileSink ensures the log directory exists and sweeps expired files
// before any write is accepted. Directory creation failure is the only
// error this sink ever propagates; everything later is best-effort.
func NewFileSink(dir string, retentionDays int64) (*FileSink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmtErrorf("log directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory '%s': %w", dir, err)
	}

	s := &FileSink{
		dir:           dir,
		retentionDays: retentionDays,
		now:           time.Now,
	}
	if retentionDays > 0 {
		sweepExpired(dir, retentionDays, s.now())
	}
	return s, nil
}

// Write appends one line to the current day's file, rotating first if the
// calendar day changed since the last write. Rotation and append run under
// the same lock, making the pair atomic with respect to concurrent writers.
// Failures are diagnosed and swallowed; logging must never crash the host.
func (s *FileSink) Write(_ Level, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	day := s.now().Format(dayFormat)
	if s.file == nil || day != s.day {
		if err := s.rotate(day); err != nil {
			internalLog("%v", err)
			return
		}
	}

	if _, err := s.file.WriteString(line + "\n"); err != nil {
		internalLog("failed to write to log file '%s': %v", s.file.Name(), err)
	}
}

// rotate flushes and closes the active handle, then opens the file for the
// given day in append mode. Caller must hold s.mu.
func (s *FileSink) rotate(day string) error {
	if s.file != nil {
		if err := s.file.Sync(); err != nil {
			internalLog("failed to sync log file '%s' before rotation: %v", s.file.Name(), err)
		}
		if err := s.file.Close(); err != nil {
			internalLog("failed to close log file '%s' before rotation: %v", s.file.Name(), err)
		}
		s.file = nil
		s.day = ""
	}

	path := filepath.Join(s.dir, day+logExtension)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}

	s.file = file
	s.day = day
	return nil
}

// Close flushes and closes the active handle. Safe to call with no handle
// open and safe to call repeatedly; later calls are no-ops.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.file == nil {
		return nil
	}

	var finalErr error
	if err := s.file.Sync(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file '%s': %w", s.file.Name(), err))
	}
	if err := s.file.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s': %w", s.file.Name(), err))
	}
	s.file = nil
	s.day = ""
	return finalErr
}

// sweepExpired deletes date-stamped log files older than windowDays whole
// days. Only names matching exactly <8-digit-date>.log are considered;
// everything else in the directory is left untouched. Per-file deletion
// failures are diagnosed and the sweep continues.
func sweepExpired(dir string, windowDays int64, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		internalLog("failed to read log directory '%s' for retention sweep: %v", dir, err)
		return
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := today.AddDate(0, 0, -int(windowDays))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) != len(dayFormat)+len(logExtension) || !strings.HasSuffix(name, logExtension) {
			continue
		}
		fileDay, err := time.ParseInLocation(dayFormat, name[:len(dayFormat)], now.Location())
		if err != nil {
			continue
		}
		if !fileDay.Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			internalLog("failed to remove expired log file '%s': %v", path, err)
		}
	}
}
