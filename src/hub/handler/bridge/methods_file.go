package bridge

import (
	"context"

	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"go.lsp.dev/jsonrpc2"
)

// FileOpen shows a path in the platform file manager. The reveal is best
// effort and the channel reports true once the path argument was present.
func (r *jsonRPCRouter) FileOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	path, err := mapper.RequestToPathArg(req)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	ok, err := r.launcher.RevealFile(ctx, path)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	return reply(ctx, ok, nil)
}
