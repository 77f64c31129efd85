package bridge

import (
	"context"

	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"go.lsp.dev/jsonrpc2"
)

// DialogOpen asks the connected UI client to present a native file-selection
// dialog and returns the user's choice.
func (r *jsonRPCRouter) DialogOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.launcher.OpenDialog(ctx)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	return reply(ctx, result, nil)
}
