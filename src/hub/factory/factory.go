package factory

import (
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// InstallRecordJSON is a factory for a raw installation record with the given path.
func InstallRecordJSON(path string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"path":%q}`, path))
}

// ProjectRecordJSON is a factory for a raw project record with the given name.
func ProjectRecordJSON(name string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"name":%q}`, name))
}
