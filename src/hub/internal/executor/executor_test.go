package executor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Instantiates the new Executor through fx provider
func fxExecutor(t *testing.T) (Executor, *observer.ObservedLogs) {
	var e Executor
	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	fxtest.New(t,
		fx.Provide(
			func() Executor {
				return NewExecutor(WithLogger(logger))
			},
		),
		fx.Populate(&e),
	).RequireStart().RequireStop()

	return e, recorded
}

func TestRun(t *testing.T) {
	tempDir := t.TempDir()
	e, recorded := fxExecutor(t)

	t.Run("echo", func(t *testing.T) {
		binPath, err := exec.LookPath("echo")
		if errors.Is(err, exec.ErrNotFound) {
			t.Skip("no echo available")
		}
		require.NoError(t, err)

		cmd := exec.Command("echo", "2.93.5")
		cmd.Dir = tempDir
		cmd.Env = os.Environ()
		stdOut, stdErr, exitCode, err := e.Run(cmd)

		assert.Equal(t, "2.93.5\n", stdOut)
		assert.Empty(t, stdErr)
		assert.Equal(t, 0, exitCode)
		assert.NoError(t, err)

		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, map[string]interface{}{
			"Path": binPath,
			"Dir":  tempDir,
			"Args": []interface{}{"2.93.5"},
		}, logs[0].ContextMap())
	})

	t.Run("non-zero exit", func(t *testing.T) {
		if _, err := exec.LookPath("rm"); errors.Is(err, exec.ErrNotFound) {
			t.Skip("no rm available")
		}

		cmd := exec.Command("rm", tempDir)
		cmd.Env = os.Environ()
		stdOut, stdErr, exitCode, err := e.Run(cmd)

		assert.Empty(t, stdOut)
		assert.Contains(t, strings.ToLower(stdErr), "is a directory")
		assert.Equal(t, 1, exitCode)
		assert.Error(t, err)
	})

	t.Run("unknown command", func(t *testing.T) {
		cmd := exec.Command("no_valid_command_")
		cmd.Dir = tempDir
		cmd.Env = os.Environ()
		stdOut, stdErr, exitCode, err := e.Run(cmd)

		assert.Empty(t, stdOut)
		assert.Empty(t, stdErr)
		assert.Equal(t, -1, exitCode)
		assert.Error(t, err)
	})
}

func TestStart(t *testing.T) {
	e, recorded := fxExecutor(t)

	t.Run("launch without waiting", func(t *testing.T) {
		if _, err := exec.LookPath("true"); errors.Is(err, exec.ErrNotFound) {
			t.Skip("no true available")
		}

		cmd := exec.Command("true")
		err := e.Start(cmd)
		assert.NoError(t, err)
		require.NotNil(t, cmd.Process)

		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
	})

	t.Run("child reaped after exit", func(t *testing.T) {
		if _, err := exec.LookPath("true"); errors.Is(err, exec.ErrNotFound) {
			t.Skip("no true available")
		}

		waited := make(chan *exec.Cmd, 1)
		e := NewExecutor(WithWaitFunc(func(cmd *exec.Cmd) error {
			err := cmd.Wait()
			waited <- cmd
			return err
		}))

		cmd := exec.Command("true")
		require.NoError(t, e.Start(cmd))

		select {
		case reaped := <-waited:
			require.Same(t, cmd, reaped)
			assert.NotNil(t, cmd.ProcessState, "launched command must be waited on")
		case <-time.After(5 * time.Second):
			t.Fatal("launched command was never waited on")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		cmd := exec.Command("no_valid_command_")
		err := e.Start(cmd)
		assert.Error(t, err)
	})
}

func TestMissingFuncs(t *testing.T) {
	e := &executorImp{Logger: zap.NewNop().Sugar()}

	stdOut, stdErr, exitCode, err := e.Run(exec.Command("true"))
	assert.Empty(t, stdOut)
	assert.Empty(t, stdErr)
	assert.Equal(t, 0, exitCode)
	assert.NoError(t, err)

	assert.NoError(t, e.Start(exec.Command("true")))
}
