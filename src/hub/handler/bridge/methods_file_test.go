package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher/launchermock"
	"github.com/whoisryosuke/blender-hub2/src/hub/factory"
	"go.uber.org/mock/gomock"
)

func TestFileOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("path revealed", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		c := launchermock.NewMockController(ctrl)
		c.EXPECT().RevealFile(gomock.Any(), "/projects/donut.blend").Return(true, nil)

		var result interface{}
		var replyErr error
		r := jsonRPCRouter{launcher: c, stats: tally.NoopScope}
		req := factory.JSONRPCRequest(MethodFileOpen, []string{"/projects/donut.blend"})
		err := r.HandleReq(ctx, newCapturingReplier(&result, &replyErr), req)

		assert.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("absent path still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		c := launchermock.NewMockController(ctrl)
		c.EXPECT().RevealFile(gomock.Any(), "").Return(true, nil)

		var result interface{}
		var replyErr error
		r := jsonRPCRouter{launcher: c, stats: tally.NoopScope}
		req := factory.JSONRPCRequest(MethodFileOpen, nil)
		err := r.HandleReq(ctx, newCapturingReplier(&result, &replyErr), req)

		assert.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("error from controller", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		c := launchermock.NewMockController(ctrl)
		c.EXPECT().RevealFile(gomock.Any(), gomock.Any()).Return(false, errors.New("controller error"))

		r := jsonRPCRouter{launcher: c, stats: tally.NoopScope}
		req := factory.JSONRPCRequest(MethodFileOpen, []string{"/projects/donut.blend"})
		err := r.HandleReq(ctx, newMockReplier(), req)
		assert.Error(t, err)
	})
}
