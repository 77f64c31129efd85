package launcher

import (
	"context"
	"fmt"

	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/mapper"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
)

// OpenDialog asks the connected UI client to present a native file-selection
// dialog and returns the user's choice.
func (c *controller) OpenDialog(ctx context.Context) (*entity.DialogResult, error) {
	result, err := c.uiGateway.ShowOpenDialog(ctx)
	if err != nil {
		return nil, fmt.Errorf("showing open dialog: %w", err)
	}
	return result, nil
}

// AddInstall appends an installation record, then re-prompts the file dialog
// and returns its result. The record is enriched with the installation's
// version string when it can be read.
func (c *controller) AddInstall(ctx context.Context, record model.Record) (*entity.DialogResult, error) {
	record = c.enrichInstallVersion(ctx, record)

	if _, err := c.settings.Append(ctx, entity.CollectionInstallations, record); err != nil {
		return nil, err
	}

	return c.OpenDialog(ctx)
}

// AddProject appends a project record.
func (c *controller) AddProject(ctx context.Context, record model.Record) error {
	_, err := c.settings.Append(ctx, entity.CollectionProjects, record)
	return err
}

// Installs returns the stored installation records.
func (c *controller) Installs(ctx context.Context) ([]model.Record, error) {
	return c.settings.Get(ctx, entity.CollectionInstallations)
}

// Projects returns the stored project records.
func (c *controller) Projects(ctx context.Context) ([]model.Record, error) {
	return c.settings.Get(ctx, entity.CollectionProjects)
}

// BlenderVersion reads an installation's version string.
func (c *controller) BlenderVersion(ctx context.Context, rawPath string) (string, error) {
	return c.invoker.Version(ctx, rawPath)
}

// BlenderOpen launches an installation with a project file.
func (c *controller) BlenderOpen(ctx context.Context, filePath string, rawPath string) (string, error) {
	return c.invoker.Open(ctx, filePath, rawPath)
}

// RevealFile shows a path in the platform file manager.
func (c *controller) RevealFile(ctx context.Context, path string) (bool, error) {
	return c.revealer.Reveal(ctx, path), nil
}

// enrichInstallVersion fills in the record's version field by running the
// installation with the version flag. The read is best effort; records whose
// version cannot be determined are stored as supplied.
func (c *controller) enrichInstallVersion(ctx context.Context, record model.Record) model.Record {
	install, err := mapper.RecordToInstall(record)
	if err != nil || install.Path == "" || install.Version != "" {
		return record
	}

	version, err := c.invoker.Version(ctx, install.Path)
	if err != nil {
		c.logger.Warnw("Failed to read installation version", "path", install.Path, "error", err)
		if notifyErr := c.uiGateway.ShowMessage(ctx, fmt.Sprintf("Could not read the Blender version at %s", install.Path)); notifyErr != nil {
			c.logger.Warnw("Failed to notify client", "error", notifyErr)
		}
		return record
	}
	if version == "" {
		return record
	}

	enriched, err := mapper.RecordWithVersion(record, version)
	if err != nil {
		c.logger.Warnw("Failed to tag installation version", "path", install.Path, "error", err)
		return record
	}
	return enriched
}
