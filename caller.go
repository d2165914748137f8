package logutil

import (
	"path/filepath"
	"runtime"
)

// caller identifies the source location of a logging call.
type caller struct {
	File string // base name only
	Line int
}

// resolveCaller returns the source location skip frames above this call.
// Best-effort: if the requested frame is unavailable it falls back to the
// nearest resolvable frame, and reports ok=false only when the stack yields
// nothing at all. It never panics; absence of location info just drops the
// [file:line] segment from the formatted line.
func resolveCaller(skip int) (caller, bool) {
	for s := skip; s >= 1; s-- {
		_, file, line, ok := runtime.Caller(s)
		if ok && file != "" {
			return caller{File: filepath.Base(file), Line: line}, true
		}
	}
	return caller{}, false
}
