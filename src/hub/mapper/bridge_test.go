package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/factory"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/errors"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
)

func TestRequestToRecord(t *testing.T) {
	tests := []struct {
		name    string
		params  interface{}
		want    model.Record
		wantErr bool
	}{
		{
			name:   "record present",
			params: []interface{}{factory.InstallRecordJSON("/opt/blender/blender")},
			want:   model.Record(factory.InstallRecordJSON("/opt/blender/blender")),
		},
		{
			name:    "no params",
			wantErr: true,
		},
		{
			name:    "empty argument list",
			params:  []interface{}{},
			wantErr: true,
		},
		{
			name:    "params not a list",
			params:  map[string]string{"path": "/opt/blender/blender"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := factory.JSONRPCRequest("store:installs", tt.params)
			got, err := RequestToRecord(req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestToPathArg(t *testing.T) {
	tests := []struct {
		name    string
		params  interface{}
		want    string
		wantErr bool
	}{
		{
			name:   "path present",
			params: []string{"/opt/blender/blender"},
			want:   "/opt/blender/blender",
		},
		{
			name: "no params",
		},
		{
			name:   "empty argument list",
			params: []string{},
		},
		{
			name:    "params not a list",
			params:  5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := factory.JSONRPCRequest("blender:version", tt.params)
			got, err := RequestToPathArg(req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestToOpenArgs(t *testing.T) {
	tests := []struct {
		name         string
		params       interface{}
		wantFilePath string
		wantRawPath  string
	}{
		{
			name:         "both arguments",
			params:       []string{"/projects/donut.blend", "/opt/blender/blender"},
			wantFilePath: "/projects/donut.blend",
			wantRawPath:  "/opt/blender/blender",
		},
		{
			name:         "file path only",
			params:       []string{"/projects/donut.blend"},
			wantFilePath: "/projects/donut.blend",
		},
		{
			name: "no params",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := factory.JSONRPCRequest("blender:open", tt.params)
			filePath, rawPath, err := RequestToOpenArgs(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilePath, filePath)
			assert.Equal(t, tt.wantRawPath, rawPath)
		})
	}
}

func TestRecordToInstall(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		install, err := RecordToInstall(model.Record(`{"path":"/opt/blender/blender","version":"Blender 4.2.0","theme":"dark"}`))
		require.NoError(t, err)
		assert.Equal(t, "/opt/blender/blender", install.Path)
		assert.Equal(t, "Blender 4.2.0", install.Version)
	})

	t.Run("malformed record", func(t *testing.T) {
		_, err := RecordToInstall(model.Record(`{`))
		require.Error(t, err)
		assert.True(t, errors.IsBadRequest(err))
	})
}

func TestInstallToRecord(t *testing.T) {
	rec, err := InstallToRecord(&entity.InstallRecord{Path: "/opt/blender/blender"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/opt/blender/blender"}`, string(rec))
}

func TestRecordWithVersion(t *testing.T) {
	t.Run("version added", func(t *testing.T) {
		rec, err := RecordWithVersion(model.Record(`{"path":"/opt/blender/blender"}`), "Blender 4.2.0")
		require.NoError(t, err)
		assert.JSONEq(t, `{"path":"/opt/blender/blender","version":"Blender 4.2.0"}`, string(rec))
	})

	t.Run("unknown fields survive", func(t *testing.T) {
		rec, err := RecordWithVersion(model.Record(`{"path":"/opt/blender/blender","pinned":true}`), "Blender 4.2.0")
		require.NoError(t, err)

		fields := map[string]json.RawMessage{}
		require.NoError(t, json.Unmarshal(rec, &fields))
		assert.Contains(t, fields, "pinned")
		assert.JSONEq(t, `"Blender 4.2.0"`, string(fields["version"]))
	})

	t.Run("malformed record", func(t *testing.T) {
		_, err := RecordWithVersion(model.Record(`[]`), "Blender 4.2.0")
		require.Error(t, err)
		assert.True(t, errors.IsBadRequest(err))
	})
}
