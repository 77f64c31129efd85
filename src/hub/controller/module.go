package controller

import (
	"github.com/whoisryosuke/blender-hub2/src/hub/controller/launcher"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(launcher.New),
)
