package handler

import (
	controller "github.com/whoisryosuke/blender-hub2/src/hub/controller"
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher"
	bridge "github.com/whoisryosuke/blender-hub2/src/hub/handler/bridge"
	"github.com/whoisryosuke/blender-hub2/src/hub/repository/session"
	"github.com/whoisryosuke/blender-hub2/src/hub/repository/settings"
	"go.uber.org/fx"
)

// Module provides the bridge server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(settings.New),
	fx.Provide(bridge.New),
	fx.Invoke(func(m bridge.Handler) {}),
	fx.Invoke(func(c launcher.Controller) {}),
)
