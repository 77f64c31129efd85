// Package uiclient sends outbound calls and notifications to the connected UI
// process. Native dialogs live on the UI side of the bridge, so the daemon
// asks the client to present them and waits for the user's answer.
package uiclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_errSendToClient = "sending call/notification to UI client: %w"

	_configKeyDialogTimeout = "dialog.timeoutSeconds"
	// Dialogs wait on the user, so the default bound is generous.
	_defaultDialogTimeout = 5 * time.Minute

	_methodShowOpenDialog = "dialog:show"
	_methodShowMessage    = "window:message"
)

// Gateway is used to send outbound calls and notifications to the UI client.
// All calls to the gateway should include a context with a session UUID, which
// will be used to route outbound traffic to the correct UI session.
type Gateway interface {
	// RegisterClient registers a new client with the gateway. Should be called each time a new UI connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time a UI connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// ShowOpenDialog asks the UI client to present a native file-selection
	// dialog and blocks until the user answers or the dialog timeout elapses.
	ShowOpenDialog(ctx context.Context) (*entity.DialogResult, error)
	// ShowMessage sends a display message to the UI client.
	ShowMessage(ctx context.Context, message string) error
}

// Params define values to be used by the gateway.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.Logger
}

type gateway struct {
	connections   map[uuid.UUID]jsonrpc2.Conn
	connectionsMu sync.Mutex
	dialogTimeout time.Duration
	logger        *zap.Logger
}

// New returns a Gateway for sending UI client calls and notifications.
func New(p Params) (Gateway, error) {
	g := &gateway{
		connections:   make(map[uuid.UUID]jsonrpc2.Conn),
		dialogTimeout: _defaultDialogTimeout,
		logger:        p.Logger,
	}

	var seconds int
	if err := p.Config.Get(_configKeyDialogTimeout).Populate(&seconds); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyDialogTimeout, err)
	}
	if seconds > 0 {
		g.dialogTimeout = time.Duration(seconds) * time.Second
	}

	return g, nil
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	g.connections[id] = *conn
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	delete(g.connections, id)
	return nil
}

func (g *gateway) ShowOpenDialog(ctx context.Context) (*entity.DialogResult, error) {
	conn, err := g.getConn(ctx)
	if err != nil {
		return nil, fmt.Errorf(_errSendToClient, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.dialogTimeout)
	defer cancel()

	var result entity.DialogResult
	if _, err := conn.Call(ctx, _methodShowOpenDialog, nil, &result); err != nil {
		return nil, fmt.Errorf(_errSendToClient, err)
	}
	return &result, nil
}

func (g *gateway) ShowMessage(ctx context.Context, message string) error {
	conn, err := g.getConn(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}

	if err := conn.Notify(ctx, _methodShowMessage, map[string]string{"message": message}); err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return nil
}

func (g *gateway) getConn(ctx context.Context) (jsonrpc2.Conn, error) {
	g.connectionsMu.Lock()
	defer g.connectionsMu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, fmt.Errorf("client with id %q not found", id)
	}
	return conn, nil
}
