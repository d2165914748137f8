package logutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// diagnostic side channel for internal failures. Logging errors are never
// surfaced to the caller, only printed here.
var (
	diagMu sync.Mutex
	diagW  io.Writer = os.Stderr
)

// internalLog writes internal diagnostics to the diagnostic writer with a
// consistent "logutil: " prefix.
func internalLog(format string, args ...any) {
	if !strings.HasPrefix(format, "logutil: ") {
		format = "logutil: " + format
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	diagMu.Lock()
	defer diagMu.Unlock()
	fmt.Fprintf(diagW, format, args...)
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "logutil: ") {
		format = "logutil: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
