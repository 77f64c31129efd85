package mapper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/factory"
	"github.com/whoisryosuke/blender-hub2/src/hub/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
)

func TestSessionToModel(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	f := &entity.Session{
		UUID:          factory.UUID(),
		Conn:          &conn,
		ClientName:    "blender-hub",
		ClientVersion: "2.0.0",
	}
	m := SessionToModel(f)
	assert.Equal(t, f.UUID, m.UUID)
	assert.Equal(t, f.Conn, m.Conn)
	assert.Equal(t, f.ClientName, m.ClientName)
	assert.Equal(t, f.ClientVersion, m.ClientVersion)
}

func TestModelToSession(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	m := &model.Session{
		UUID:          factory.UUID(),
		Conn:          &conn,
		ClientName:    "blender-hub",
		ClientVersion: "2.0.0",
	}
	f, err := ModelToSession(m)
	assert.NoError(t, err)
	assert.Equal(t, m.UUID, f.UUID)
	assert.Equal(t, m.Conn, f.Conn)
	assert.Equal(t, m.ClientName, f.ClientName)
	assert.Equal(t, m.ClientVersion, f.ClientVersion)
}

func TestUUIDToSession(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	u := factory.UUID()
	f := UUIDToSession(u, &conn)
	assert.Equal(t, u, f.UUID)
	assert.Equal(t, &conn, f.Conn)
}

func TestContextToSessionUUID(t *testing.T) {
	t.Run("uuid present", func(t *testing.T) {
		u := factory.UUID()
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, u)
		got, err := ContextToSessionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("uuid missing", func(t *testing.T) {
		_, err := ContextToSessionUUID(context.Background())
		assert.Error(t, err)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
