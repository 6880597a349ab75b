package cap

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// Workdir is the shell's current working directory. It belongs to the
// session, not the process: builtins resolve path operands against it and cd
// mutates it, so the real process directory never changes.
type Workdir struct {
	mu   sync.RWMutex
	path string
}

// NewWorkdir creates a Workdir rooted at the given path.
func NewWorkdir(path string) *Workdir {
	return &Workdir{path: filepath.Clean(path)}
}

// Path returns the current directory.
func (w *Workdir) Path() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.path
}

// Set replaces the current directory.
func (w *Workdir) Set(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.path = filepath.Clean(path)
}

// Resolve makes p absolute relative to the current directory.
func (w *Workdir) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return filepath.Join(w.path, p)
}

type workdirKey struct{}

// NewContext returns a context with the workdir attached.
func NewContext(ctx context.Context, wd *Workdir) context.Context {
	return context.WithValue(ctx, workdirKey{}, wd)
}

// WorkdirFromContext retrieves the workdir from a context.
func WorkdirFromContext(ctx context.Context) (*Workdir, bool) {
	wd, ok := ctx.Value(workdirKey{}).(*Workdir)
	return wd, ok
}

// ResolvePath resolves p against the context workdir. When no workdir is
// attached, p is cleaned as-is, which leaves relative paths to the process
// directory.
func ResolvePath(ctx context.Context, p string) string {
	if wd, ok := WorkdirFromContext(ctx); ok {
		return wd.Resolve(p)
	}
	return filepath.Clean(p)
}

// WorkingDir returns the context workdir path, falling back to the process
// directory.
func WorkingDir(ctx context.Context) string {
	if wd, ok := WorkdirFromContext(ctx); ok {
		return wd.Path()
	}
	dir, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return dir
}
