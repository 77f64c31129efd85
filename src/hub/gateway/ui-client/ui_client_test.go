package uiclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/factory"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/mock/jsonrpc2mock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func staticProvider(t *testing.T, vals map[string]interface{}) config.Provider {
	t.Helper()
	provider, err := config.NewStaticProvider(vals)
	require.NoError(t, err)
	return provider
}

// getTestGateway returns a gateway with one registered mock connection and a
// context carrying that session's UUID.
func getTestGateway(t *testing.T) (*gateway, *jsonrpc2mock.MockConn, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	id := factory.UUID()
	mockConn := jsonrpc2mock.NewMockConn(ctrl)

	g := &gateway{
		connections:   make(map[uuid.UUID]jsonrpc2.Conn),
		dialogTimeout: time.Second,
		logger:        zap.NewNop(),
	}

	var conn jsonrpc2.Conn = mockConn
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
	return g, mockConn, ctx
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		vals        map[string]interface{}
		wantTimeout time.Duration
	}{
		{
			name:        "configured timeout",
			vals:        map[string]interface{}{"dialog": map[string]int{"timeoutSeconds": 60}},
			wantTimeout: time.Minute,
		},
		{
			name:        "defaulted timeout",
			vals:        map[string]interface{}{},
			wantTimeout: _defaultDialogTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(Params{
				Config: staticProvider(t, tt.vals),
				Logger: zap.NewNop(),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTimeout, g.(*gateway).dialogTimeout)
		})
	}
}

func TestRegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		assert.NoError(t, g.RegisterClient(ctx, factory.UUID(), &conn))
	}

	assert.Len(t, g.connections, 10)
}

func TestDeregisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		require.NoError(t, g.RegisterClient(ctx, factory.UUID(), &conn))
	}

	for key := range g.connections {
		assert.NoError(t, g.DeregisterClient(ctx, key))
		assert.Nil(t, g.connections[key])
	}
	assert.Len(t, g.connections, 0)
}

func TestShowOpenDialog(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		g, mockConn, ctx := getTestGateway(t)

		mockConn.EXPECT().Call(gomock.Any(), _methodShowOpenDialog, nil, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
				res := result.(*entity.DialogResult)
				res.FilePaths = []string{"/work/scene.blend"}
				return jsonrpc2.NewNumberID(1), nil
			})

		result, err := g.ShowOpenDialog(ctx)
		require.NoError(t, err)
		assert.False(t, result.Canceled)
		assert.Equal(t, []string{"/work/scene.blend"}, result.FilePaths)
	})

	t.Run("canceled by user", func(t *testing.T) {
		g, mockConn, ctx := getTestGateway(t)

		mockConn.EXPECT().Call(gomock.Any(), _methodShowOpenDialog, nil, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
				result.(*entity.DialogResult).Canceled = true
				return jsonrpc2.NewNumberID(1), nil
			})

		result, err := g.ShowOpenDialog(ctx)
		require.NoError(t, err)
		assert.True(t, result.Canceled)
		assert.Empty(t, result.FilePaths)
	})

	t.Run("call failure", func(t *testing.T) {
		g, mockConn, ctx := getTestGateway(t)

		mockConn.EXPECT().Call(gomock.Any(), _methodShowOpenDialog, nil, gomock.Any()).
			Return(jsonrpc2.NewNumberID(1), errors.New("connection closed"))

		_, err := g.ShowOpenDialog(ctx)
		assert.Error(t, err)
	})

	t.Run("no session in context", func(t *testing.T) {
		g, _, _ := getTestGateway(t)

		_, err := g.ShowOpenDialog(context.Background())
		assert.Error(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		g, _, _ := getTestGateway(t)

		ctx := context.WithValue(context.Background(), entity.SessionContextKey, factory.UUID())
		_, err := g.ShowOpenDialog(ctx)
		assert.Error(t, err)
	})
}

func TestShowMessage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		g, mockConn, ctx := getTestGateway(t)

		mockConn.EXPECT().Notify(gomock.Any(), _methodShowMessage, map[string]string{"message": "hello"}).Return(nil)
		assert.NoError(t, g.ShowMessage(ctx, "hello"))
	})

	t.Run("notify failure", func(t *testing.T) {
		g, mockConn, ctx := getTestGateway(t)

		mockConn.EXPECT().Notify(gomock.Any(), _methodShowMessage, gomock.Any()).Return(errors.New("connection closed"))
		assert.Error(t, g.ShowMessage(ctx, "hello"))
	})
}
