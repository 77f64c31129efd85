package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

func TestErrorToWire(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode jsonrpc2.Code
	}{
		{
			name:     "tool execution failure",
			err:      &errors.ToolExecutionError{Path: "/opt/blender/blender", ExitCode: 1, Stderr: "segfault"},
			wantCode: CodeToolExecution,
		},
		{
			name:     "storage write failure",
			err:      &errors.StorageWriteError{Collection: "installations", Err: errors.New("disk full")},
			wantCode: CodeStorageWrite,
		},
		{
			name:     "validation failure",
			err:      &errors.ValidationError{Argument: "record", Err: errors.NoMessageOnWireError},
			wantCode: jsonrpc2.InvalidParams,
		},
		{
			name:     "unknown failure",
			err:      errors.New("unknown"),
			wantCode: jsonrpc2.InternalError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := ErrorToWire(tt.err)
			require.Error(t, e)

			var wireErr *jsonrpc2.Error
			require.ErrorAs(t, e, &wireErr)
			assert.Equal(t, tt.wantCode, wireErr.Code)
			assert.Equal(t, tt.err.Error(), wireErr.Message)
		})
	}
}

func TestErrorToWireNil(t *testing.T) {
	assert.NoError(t, ErrorToWire(nil))
}
