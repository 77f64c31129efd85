package model

import (
	"encoding/json"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is the repository layer model for an individual UI client session.
type Session struct {
	UUID          uuid.UUID
	Conn          *jsonrpc2.Conn
	ClientName    string
	ClientVersion string
}

// Record is the repository layer form of one settings record. Records are
// caller-supplied and opaque; the store never inspects their contents.
type Record = json.RawMessage

// Settings is the durable form of the settings file: every known collection,
// keyed by its fixed name.
type Settings struct {
	Installations []Record `json:"installations"`
	Projects      []Record `json:"projects"`
}
