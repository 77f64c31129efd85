package bridge

import (
	"context"

	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"go.lsp.dev/jsonrpc2"
)

// StoreInstalls appends the caller-supplied installation record, then
// re-prompts the file dialog and returns its result. The two effects travel
// together on this channel as part of the wire contract.
func (r *jsonRPCRouter) StoreInstalls(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	record, err := mapper.RequestToRecord(req)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	result, err := r.launcher.AddInstall(ctx, record)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	return reply(ctx, result, nil)
}

// StoreProjects appends the caller-supplied project record.
func (r *jsonRPCRouter) StoreProjects(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	record, err := mapper.RequestToRecord(req)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	err = r.launcher.AddProject(ctx, record)
	return reply(ctx, nil, mapper.ErrorToWire(err))
}

// StoreInstallsList returns the stored installation records.
func (r *jsonRPCRouter) StoreInstallsList(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	records, err := r.launcher.Installs(ctx)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	return reply(ctx, records, nil)
}

// StoreProjectsList returns the stored project records.
func (r *jsonRPCRouter) StoreProjectsList(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	records, err := r.launcher.Projects(ctx)
	if err != nil {
		return reply(ctx, nil, mapper.ErrorToWire(err))
	}

	return reply(ctx, records, nil)
}
