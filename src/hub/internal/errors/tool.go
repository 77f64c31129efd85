package errors

import (
	stderr "errors"
	"fmt"
)

// ToolExecutionError indicates that the external tool could not be run, or ran and exited non-zero.
type ToolExecutionError struct {
	Path     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

// Error is an implementation of the error interface.
func (t *ToolExecutionError) Error() string {
	if t.ExitCode > 0 {
		return fmt.Sprintf("tool %q exited with code %d: %s", t.Path, t.ExitCode, t.Stderr)
	}
	return fmt.Sprintf("tool %q could not be executed: %v", t.Path, t.Err)
}

// Unwrap returns the underlying execution error, if any.
func (t *ToolExecutionError) Unwrap() error {
	return t.Err
}

// ToolExitCode returns the exit code and true if a ToolExecutionError is part
// of the error chain.
func ToolExitCode(e error) (_ int, ok bool) {
	var te *ToolExecutionError
	if !stderr.As(e, &te) {
		return 0, false
	}
	return te.ExitCode, true
}

// ValidationError indicates that a request argument is malformed.
type ValidationError struct {
	Argument string
	Err      error
}

// Error is an implementation of the error interface.
func (v *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", v.Argument, v.Err)
}

// Unwrap returns the decoding error that triggered the validation failure.
func (v *ValidationError) Unwrap() error {
	return v.Err
}
