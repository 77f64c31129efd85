// Package entity contains the domain logic for the hub daemon.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// CollectionKey names one durable record sequence in the settings store.
type CollectionKey string

const (
	// CollectionInstallations holds one record per known Blender installation.
	CollectionInstallations CollectionKey = "installations"
	// CollectionProjects holds one record per user project reference.
	CollectionProjects CollectionKey = "projects"
)

// Known reports whether the key is one of the fixed collection identifiers.
// Collection keys are compile-time constants, not runtime input; an unknown
// key reaching the store is a programming error.
func (k CollectionKey) Known() bool {
	return k == CollectionInstallations || k == CollectionProjects
}

// Session entity representing a single connected UI client.
type Session struct {
	UUID          uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn          *jsonrpc2.Conn `json:"-" zap:"-"`
	ClientName    string         `json:"clientName" zap:"clientName"`
	ClientVersion string         `json:"clientVersion" zap:"clientVersion"`
}

// DialogResult is the outcome of a native file-selection dialog presented by the UI client.
type DialogResult struct {
	Canceled  bool     `json:"canceled"`
	FilePaths []string `json:"filePaths"`
}

// InstallRecord is the typed view over a stored installation record.
// Stored records are opaque to the bridge; this view exposes only the fields
// the daemon itself reads.
type InstallRecord struct {
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// ProjectRecord is the typed view over a stored project record.
type ProjectRecord struct {
	Name string `json:"name,omitempty"`
	Path string `json:"path,omitempty"`
}
