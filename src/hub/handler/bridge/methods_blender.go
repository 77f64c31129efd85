package bridge

import (
	"context"

	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"go.lsp.dev/jsonrpc2"
)

// BlenderVersion reads an installation's version string. A call with
// no executable path argument replies with a null result rather than failing.
func (r *jsonRPCRouter) BlenderVersion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	rawPath, err := mapper.RequestToPathArg(req)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	version, err := r.launcher.BlenderVersion(ctx, rawPath)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}
	if version == "" {
		return reply(ctx, nil, nil)
	}

	return reply(ctx, version, nil)
}

// BlenderOpen launches an installation with a project file. Absent arguments
// reply with a null result rather than failing.
func (r *jsonRPCRouter) BlenderOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	filePath, rawPath, err := mapper.RequestToOpenArgs(req)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	out, err := r.launcher.BlenderOpen(ctx, filePath, rawPath)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}
	if out == "" {
		return reply(ctx, nil, nil)
	}

	return reply(ctx, out, nil)
}
