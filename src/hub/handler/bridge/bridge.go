// Package bridge exposes the privileged bridge channels to connected UI
// clients over JSON-RPC.
package bridge

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// Handler accepts inbound bridge connections and routes their requests.
type Handler interface {
	// ConnectionManager returns the manager tracking active UI connections.
	ConnectionManager() jsonrpcfx.ConnectionManager
}

type handler struct {
	launcher          launcher.Controller
	connectionManager jsonrpcfx.ConnectionManager
	stats             tally.Scope
}

// New constructs a new bridge Handler and registers it to receive connections.
func New(ctrl launcher.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}

	return &handler{
		launcher:          ctrl,
		connectionManager: &c,
		stats:             stats,
	}, nil
}

func (h *handler) ConnectionManager() jsonrpcfx.ConnectionManager {
	return h.connectionManager
}

type jsonRPCConnectionManager struct {
	ctrl  launcher.Controller
	stats tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		launcher: c.ctrl,
		uuid:     id,
		stats:    c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if the client disconnected abruptly.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
