// Package launcher implements the hub daemon business logic.
package launcher

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	uiclient "github.com/whoisryosuke/blender-hub2/src/hub/gateway/ui-client"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/blender"
	hubfs "github.com/whoisryosuke/blender-hub2/src/hub/internal/fs"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/manifest"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/reveal"
	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
	"github.com/whoisryosuke/blender-hub2/src/hub/repository/session"
	"github.com/whoisryosuke/blender-hub2/src/hub/repository/settings"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
	_legacyManifestKey     = "settings.legacyManifestPath"
)

// Controller orchestrates the business logic for each bridge request.
type Controller interface {
	// Bridge channel methods.

	// OpenDialog asks the connected UI client to present a native
	// file-selection dialog and returns the user's choice.
	OpenDialog(ctx context.Context) (*entity.DialogResult, error)
	// AddInstall appends an installation record, then re-prompts the file
	// dialog and returns its result.
	AddInstall(ctx context.Context, record model.Record) (*entity.DialogResult, error)
	// AddProject appends a project record.
	AddProject(ctx context.Context, record model.Record) error
	// Installs returns the stored installation records.
	Installs(ctx context.Context) ([]model.Record, error)
	// Projects returns the stored project records.
	Projects(ctx context.Context) ([]model.Record, error)
	// BlenderVersion reads an installation's version string.
	BlenderVersion(ctx context.Context, rawPath string) (string, error)
	// BlenderOpen launches an installation with a project file.
	BlenderOpen(ctx context.Context, filePath string, rawPath string) (string, error)
	// RevealFile shows a path in the platform file manager.
	RevealFile(ctx context.Context, path string) (bool, error)

	// Custom methods for use within this service.
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Lifecycle  fx.Lifecycle
	Sessions   session.Repository
	Settings   settings.Repository
	UIGateway  uiclient.Gateway
	Invoker    blender.Invoker
	Revealer   reveal.Revealer
	Logger     *zap.SugaredLogger
	Config     config.Provider
	FS         hubfs.HubFS
}

type controller struct {
	sessions           session.Repository
	settings           settings.Repository
	shutdowner         fx.Shutdowner
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration
	logger             *zap.SugaredLogger
	uiGateway          uiclient.Gateway
	invoker            blender.Invoker
	revealer           reveal.Revealer
	fs                 hubfs.HubFS
	legacyManifestPath string
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	var legacyManifestPath string
	if err := p.Config.Get(_legacyManifestKey).Populate(&legacyManifestPath); err != nil {
		return nil, fmt.Errorf("unable to get legacy manifest path from config: %w", err)
	}

	c := &controller{
		sessions:   p.Sessions,
		settings:   p.Settings,
		shutdowner: p.Shutdowner,
		logger:     p.Logger,
		uiGateway:  p.UIGateway,
		invoker:    p.Invoker,
		revealer:   p.Revealer,
		fs:         p.FS,

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
		legacyManifestPath: legacyManifestPath,
	}
	c.refreshIdleTimer(ctx)

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.importLegacyManifest,
	})

	return c, nil
}

// importLegacyManifest seeds the settings collections from a .blenderhub
// manifest left behind by older launcher builds. The import is best effort
// and only runs against empty collections, so records are never duplicated
// across restarts.
func (c *controller) importLegacyManifest(ctx context.Context) error {
	if c.legacyManifestPath == "" {
		return nil
	}

	exists, err := c.fs.FileExists(c.legacyManifestPath)
	if err != nil || !exists {
		return err
	}

	data, err := c.fs.ReadFile(c.legacyManifestPath)
	if err != nil {
		return fmt.Errorf("reading legacy manifest: %w", err)
	}

	parsed, err := manifest.Parse(bytes.NewReader(data))
	if err != nil {
		c.logger.Warnf("Legacy manifest contains invalid entries, importing the remainder: %v", err)
	}

	if err := c.seedCollection(ctx, entity.CollectionInstallations, mapper.ManifestToInstallRecords(parsed.Installations)); err != nil {
		return err
	}
	if err := c.seedCollection(ctx, entity.CollectionProjects, mapper.ManifestToProjectRecords(parsed.Projects)); err != nil {
		return err
	}

	c.logger.Infow("Legacy manifest imported",
		"path", c.legacyManifestPath,
		"installations", len(parsed.Installations),
		"projects", len(parsed.Projects),
	)
	return nil
}

func (c *controller) seedCollection(ctx context.Context, key entity.CollectionKey, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	current, err := c.settings.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		return nil
	}
	return c.settings.Set(ctx, key, records)
}
