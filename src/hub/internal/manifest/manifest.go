// Package manifest parses legacy .blenderhub manifest files. Older launcher
// builds stored installations and projects in a YAML manifest; the records it
// lists can seed the settings collections on first start.
package manifest

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Manifest stores information in a .blenderhub file.
type Manifest struct {
	Installations []Install
	Projects      []Project
}

// Install is one Blender installation listed in a manifest.
type Install struct {
	Path    string `yaml:"path"`
	Version string `yaml:"version"`
}

// Project is one project reference listed in a manifest.
type Project struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Parse reads a .blenderhub manifest. Entries missing their required path are
// skipped; the returned error aggregates one entry per skipped record, so the
// caller may import the valid remainder.
func Parse(r io.Reader) (manifest Manifest, err error) {
	var content struct {
		Installations []Install `yaml:"installations"`
		Projects      []Project `yaml:"projects"`
	}
	if e := yaml.NewDecoder(r).Decode(&content); e != nil {
		if e == io.EOF {
			return manifest, nil
		}
		return manifest, e
	}

	for i, install := range content.Installations {
		if install.Path == "" {
			err = multierr.Append(err, fmt.Errorf("installation %d: missing path", i))
			continue
		}
		manifest.Installations = append(manifest.Installations, install)
	}
	for i, project := range content.Projects {
		if project.Path == "" {
			err = multierr.Append(err, fmt.Errorf("project %d: missing path", i))
			continue
		}
		manifest.Projects = append(manifest.Projects, project)
	}
	return manifest, err
}
