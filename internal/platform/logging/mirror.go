package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every log entry so it can be forwarded elsewhere.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Pointer[MirrorFunc]

// SetMirror installs the process-wide log mirror; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}
