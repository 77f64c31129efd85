package mapper

import (
	"encoding/json"

	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/manifest"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
)

// ManifestToInstallRecords maps manifest installation entries to stored records.
func ManifestToInstallRecords(installs []manifest.Install) []model.Record {
	records := make([]model.Record, 0, len(installs))
	for _, install := range installs {
		raw, err := json.Marshal(entity.InstallRecord{Path: install.Path, Version: install.Version})
		if err != nil {
			continue
		}
		records = append(records, raw)
	}
	return records
}

// ManifestToProjectRecords maps manifest project entries to stored records.
func ManifestToProjectRecords(projects []manifest.Project) []model.Record {
	records := make([]model.Record, 0, len(projects))
	for _, project := range projects {
		raw, err := json.Marshal(entity.ProjectRecord{Name: project.Name, Path: project.Path})
		if err != nil {
			continue
		}
		records = append(records, raw)
	}
	return records
}
