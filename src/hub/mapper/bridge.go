package mapper

import (
	"encoding/json"

	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
	"go.lsp.dev/jsonrpc2"
)

// Bridge requests carry an ordered argument list, mirroring the UI surface's
// invoke(channel, ...args) calling convention. These mappers extract the
// positional arguments each channel expects.

// RequestToRecord extracts the caller-supplied record from the first request
// argument, leaving its contents opaque.
func RequestToRecord(req jsonrpc2.Request) (model.Record, error) {
	args, err := requestToArgs(req)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 || len(args[0]) == 0 {
		return nil, &errors.ValidationError{Argument: "record", Err: errors.NoMessageOnWireError}
	}
	return args[0], nil
}

// RequestToPathArg extracts a single optional path argument. An absent or
// empty argument maps to the empty string, not an error.
func RequestToPathArg(req jsonrpc2.Request) (string, error) {
	paths, err := requestToStringArgs(req, 1)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// RequestToOpenArgs extracts the (filePath, rawExecutablePath) argument pair
// for blender:open. Absent arguments map to empty strings.
func RequestToOpenArgs(req jsonrpc2.Request) (filePath string, rawPath string, err error) {
	paths, err := requestToStringArgs(req, 2)
	if err != nil {
		return "", "", err
	}
	return paths[0], paths[1], nil
}

// RecordToInstall decodes the typed view of an installation record.
// Unknown fields are preserved in the raw record; the view only reads the
// fields the daemon acts on.
func RecordToInstall(rec model.Record) (*entity.InstallRecord, error) {
	install := entity.InstallRecord{}
	if err := json.Unmarshal(rec, &install); err != nil {
		return nil, &errors.ValidationError{Argument: "record", Err: err}
	}
	return &install, nil
}

// InstallToRecord re-encodes a typed installation view into its stored form.
func InstallToRecord(install *entity.InstallRecord) (model.Record, error) {
	raw, err := json.Marshal(install)
	if err != nil {
		return nil, &errors.ValidationError{Argument: "record", Err: err}
	}
	return raw, nil
}

// RecordWithVersion returns a copy of the record with its version field set.
// All other fields pass through untouched, keeping the record opaque.
func RecordWithVersion(rec model.Record, version string) (model.Record, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(rec, &fields); err != nil {
		return nil, &errors.ValidationError{Argument: "record", Err: err}
	}
	raw, err := json.Marshal(version)
	if err != nil {
		return nil, err
	}
	fields["version"] = raw
	return json.Marshal(fields)
}

func requestToArgs(req jsonrpc2.Request) ([]json.RawMessage, error) {
	if len(req.Params()) == 0 {
		return nil, nil
	}
	args := []json.RawMessage{}
	if err := json.Unmarshal(req.Params(), &args); err != nil {
		return nil, &errors.ValidationError{Argument: "params", Err: err}
	}
	return args, nil
}

func requestToStringArgs(req jsonrpc2.Request, n int) ([]string, error) {
	out := make([]string, n)
	if len(req.Params()) == 0 {
		return out, nil
	}
	args := []string{}
	if err := json.Unmarshal(req.Params(), &args); err != nil {
		return nil, &errors.ValidationError{Argument: "params", Err: err}
	}
	copy(out, args)
	return out, nil
}
