package executor

import (
	"bytes"
	"os/exec"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Options(
	fx.Supply(
		fx.Annotate(NewExecutor(
			WithExecFunc(func(cmd *exec.Cmd) error { return cmd.Run() }),
			WithStartFunc(func(cmd *exec.Cmd) error { return cmd.Start() }),
			WithWaitFunc(func(cmd *exec.Cmd) error { return cmd.Wait() }),
		), fx.As(new(Executor))),
	),
)

// Executor wraps the execution of "os/exec".Cmd's to allow adding logs to
// each exec and makes it easier to test.
type Executor interface {

	// Run - logs and executes the Cmd, blocking until it exits, and returns its captured output.
	Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error)
	// Start - logs and launches the Cmd without waiting for it to exit.
	Start(cmd *exec.Cmd) error
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
	// ExecFunc, StartFunc and WaitFunc may be nil to use executorImp in tests.
	ExecFunc  func(e *exec.Cmd) error
	StartFunc func(e *exec.Cmd) error
	WaitFunc  func(e *exec.Cmd) error
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithExecFunc provides customized blocking exec behavior for executorImp
func WithExecFunc(execFunc func(e *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.ExecFunc = execFunc
	}
}

// WithStartFunc provides customized fire-and-forget launch behavior for executorImp
func WithStartFunc(startFunc func(e *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// WithWaitFunc provides customized reaping behavior for commands launched via Start
func WithWaitFunc(waitFunc func(e *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.WaitFunc = waitFunc
	}
}

// NewExecutor - creates a new executorImp with a noop logger and default exec functions
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:    zap.NewNop().Sugar(),
		ExecFunc:  func(cmd *exec.Cmd) error { return cmd.Run() },
		StartFunc: func(cmd *exec.Cmd) error { return cmd.Start() },
		WaitFunc:  func(cmd *exec.Cmd) error { return cmd.Wait() },
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Run - logs the Path/Args and calls ExecFunc if it is set.
func (l *executorImp) Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error) {
	l.logCommand(cmd)

	if l.ExecFunc == nil {
		l.Logger.Warn("missing ExecFunc - skipped execution")
		return "", "", 0, nil
	}

	var stdoutB, stderrB bytes.Buffer
	cmd.Stdout = &stdoutB
	cmd.Stderr = &stderrB
	err = l.ExecFunc(cmd)

	return stdoutB.String(), stderrB.String(), cmd.ProcessState.ExitCode(), err
}

// Start - logs the Path/Args and calls StartFunc if it is set.
func (l *executorImp) Start(cmd *exec.Cmd) error {
	l.logCommand(cmd)

	if l.StartFunc == nil {
		l.Logger.Warn("missing StartFunc - skipped launch")
		return nil
	}

	if err := l.StartFunc(cmd); err != nil {
		return err
	}

	if l.WaitFunc != nil {
		// Reap the child once it exits so fire-and-forget launches do not
		// leave defunct entries in the process table.
		go func() { _ = l.WaitFunc(cmd) }()
	}
	return nil
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", cmd.Args[1:], // First arg is always the command itself
	)
}
