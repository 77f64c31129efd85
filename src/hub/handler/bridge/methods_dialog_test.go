package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher/launchermock"
	"github.com/whoisryosuke/blender-hub2/src/hub/entity"
	"github.com/whoisryosuke/blender-hub2/src/hub/factory"
	"go.uber.org/mock/gomock"
)

func TestDialogOpen(t *testing.T) {
	tests := []struct {
		name             string
		controllerResult *entity.DialogResult
		controllerError  error
		wantErr          bool
	}{
		{
			name:             "selection returned",
			controllerResult: &entity.DialogResult{FilePaths: []string{"/work/scene.blend"}},
		},
		{
			name:             "canceled by user",
			controllerResult: &entity.DialogResult{Canceled: true},
		},
		{
			name:            "error from controller",
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			c := launchermock.NewMockController(ctrl)
			c.EXPECT().OpenDialog(gomock.Any()).Return(tt.controllerResult, tt.controllerError)

			var result interface{}
			var replyErr error
			r := jsonRPCRouter{launcher: c, stats: tally.NoopScope}
			req := factory.JSONRPCRequest(MethodDialogOpen, nil)
			err := r.HandleReq(ctx, newCapturingReplier(&result, &replyErr), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.controllerResult, result)
			}
		})
	}
}
