// Package blender runs the Blender executable on behalf of connected UI
// clients.
package blender

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/executor"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyCommandTimeout = "blender.commandTimeoutSeconds"
	_defaultCommandTimeout   = 15 * time.Second

	_macBundleMarker = ".app"
	_macBundleBinary = "Contents/MacOS/Blender"
	_versionFlag     = "-v"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Invoker launches Blender subprocesses with bounded lifetimes.
type Invoker interface {
	// ResolveExecutable maps a stored installation path to the binary to
	// invoke. On darwin a macOS application bundle resolves to the launcher
	// binary inside the bundle; every other path passes through unchanged.
	ResolveExecutable(rawPath string) string
	// Version runs an installation with the version flag and
	// returns its output. An empty path is a no-op.
	Version(ctx context.Context, rawPath string) (string, error)
	// Open launches an installation with a project file argument and returns
	// its output. An empty path on either side is a no-op.
	Open(ctx context.Context, filePath string, rawPath string) (string, error)
}

// Params define values to be used by the invoker.
type Params struct {
	fx.In

	Config   config.Provider
	Logger   *zap.SugaredLogger
	Executor executor.Executor
}

type invoker struct {
	logger   *zap.SugaredLogger
	executor executor.Executor
	timeout  time.Duration

	// goos is swapped in tests to exercise platform-specific resolution.
	goos string
}

// New creates an Invoker for the current platform.
func New(p Params) (Invoker, error) {
	i := &invoker{
		logger:   p.Logger,
		executor: p.Executor,
		timeout:  _defaultCommandTimeout,
		goos:     runtime.GOOS,
	}

	var seconds int
	if err := p.Config.Get(_configKeyCommandTimeout).Populate(&seconds); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyCommandTimeout, err)
	}
	if seconds > 0 {
		i.timeout = time.Duration(seconds) * time.Second
	}

	return i, nil
}

// ResolveExecutable maps a stored installation path to the binary to invoke.
func (i *invoker) ResolveExecutable(rawPath string) string {
	if i.goos == "darwin" && strings.Contains(rawPath, _macBundleMarker) {
		return filepath.Join(rawPath, _macBundleBinary)
	}
	return rawPath
}

// Version runs the installation with the version flag and returns its output.
func (i *invoker) Version(ctx context.Context, rawPath string) (string, error) {
	if rawPath == "" {
		return "", nil
	}
	return i.run(ctx, i.ResolveExecutable(rawPath), _versionFlag)
}

// Open launches the installation with the given project file.
func (i *invoker) Open(ctx context.Context, filePath string, rawPath string) (string, error) {
	if filePath == "" || rawPath == "" {
		return "", nil
	}
	return i.run(ctx, i.ResolveExecutable(rawPath), filePath)
}

// run executes the binary with a bounded lifetime. The subprocess is killed
// when the timeout elapses.
func (i *invoker) run(ctx context.Context, exe string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe, args...)
	stdout, stderr, exitCode, err := i.executor.Run(cmd)
	if err != nil {
		return "", &errors.ToolExecutionError{
			Path:     exe,
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr,
			Err:      err,
		}
	}

	return strings.TrimSpace(stdout), nil
}
