package bridge

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"go.lsp.dev/jsonrpc2"
)

// Bridge channel names, mirroring the UI surface's invoke(channel, ...args)
// calling convention.
const (
	// MethodDialogOpen presents a native file-selection dialog.
	MethodDialogOpen = "dialog:open"
	// MethodStoreInstalls appends an installation record, then re-prompts the dialog.
	MethodStoreInstalls = "store:installs"
	// MethodStoreProjects appends a project record.
	MethodStoreProjects = "store:projects"
	// MethodStoreInstallsList returns the stored installation records.
	MethodStoreInstallsList = "store:installs:list"
	// MethodStoreProjectsList returns the stored project records.
	MethodStoreProjectsList = "store:projects:list"
	// MethodBlenderVersion reads an installation's version string.
	MethodBlenderVersion = "blender:version"
	// MethodBlenderOpen launches an installation with a project file.
	MethodBlenderOpen = "blender:open"
	// MethodFileOpen shows a path in the platform file manager.
	MethodFileOpen = "file:open"
)

type jsonRPCRouter struct {
	launcher launcher.Controller
	uuid     uuid.UUID
	stats    tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Dialog related methods.
	case MethodDialogOpen:
		return r.DialogOpen(ctx, reply, req)

	// Settings store related methods.
	case MethodStoreInstalls:
		return r.StoreInstalls(ctx, reply, req)

	case MethodStoreProjects:
		return r.StoreProjects(ctx, reply, req)

	case MethodStoreInstallsList:
		return r.StoreInstallsList(ctx, reply, req)

	case MethodStoreProjectsList:
		return r.StoreProjectsList(ctx, reply, req)

	// Blender related methods.
	case MethodBlenderVersion:
		return r.BlenderVersion(ctx, reply, req)

	case MethodBlenderOpen:
		return r.BlenderOpen(ctx, reply, req)

	// Filesystem related methods.
	case MethodFileOpen:
		return r.FileOpen(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
