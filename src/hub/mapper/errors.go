package mapper

import (
	stderr "errors"

	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

// Bridge-specific wire error codes, outside the range reserved by JSON-RPC.
const (
	// CodeToolExecution tags failures to run the external tool.
	CodeToolExecution jsonrpc2.Code = -32010
	// CodeStorageWrite tags failures to persist the settings store.
	CodeStorageWrite jsonrpc2.Code = -32011
)

// ErrorToWire translates a handler failure into a tagged wire error, so the
// UI surface always receives a structured (code, message) pair rather than a
// raw internal failure.
func ErrorToWire(err error) error {
	if err == nil {
		return nil
	}

	var toolErr *errors.ToolExecutionError
	if stderr.As(err, &toolErr) {
		return jsonrpc2.NewError(CodeToolExecution, err.Error())
	}

	if errors.IsStorageWrite(err) {
		return jsonrpc2.NewError(CodeStorageWrite, err.Error())
	}

	if errors.IsBadRequest(err) {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}

	return jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
}
