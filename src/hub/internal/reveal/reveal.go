// Package reveal surfaces a path in the platform file manager.
package reveal

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/whoisryosuke/blender-hub2/src/hub/internal/executor"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Revealer asks the OS shell to show a path in its file manager.
type Revealer interface {
	// Reveal opens the file manager at the given path. The shell call is
	// fire-and-forget; failures are logged and reported to the caller as
	// success, matching the wire contract of the file:open channel.
	Reveal(ctx context.Context, path string) bool
}

// Params define values to be used by the revealer.
type Params struct {
	fx.In

	Logger   *zap.SugaredLogger
	Executor executor.Executor
}

type revealer struct {
	logger   *zap.SugaredLogger
	executor executor.Executor

	// goos is swapped in tests to exercise platform-specific commands.
	goos string
}

// New creates a Revealer for the current platform.
func New(p Params) Revealer {
	return &revealer{
		logger:   p.Logger,
		executor: p.Executor,
		goos:     runtime.GOOS,
	}
}

// Reveal opens the file manager at the given path.
func (r *revealer) Reveal(ctx context.Context, path string) bool {
	if path == "" {
		return true
	}

	name, args := r.command(path)
	if err := r.executor.Start(exec.CommandContext(ctx, name, args...)); err != nil {
		r.logger.Warnw("Failed to reveal path", "path", path, "error", err)
	}
	return true
}

// command selects the platform shell command that highlights the path.
// Platforms without a selection flag fall back to opening the parent
// directory.
func (r *revealer) command(path string) (string, []string) {
	switch r.goos {
	case "darwin":
		return "open", []string{"-R", path}
	case "windows":
		return "explorer", []string{"/select,", path}
	default:
		return "xdg-open", []string{filepath.Dir(path)}
	}
}
