package gateway

import (
	uiclient "github.com/whoisryosuke/blender-hub2/src/hub/gateway/ui-client"
	"go.uber.org/fx"
)

// Module provides the outbound gateways into an Fx application.
var Module = fx.Options(
	fx.Provide(uiclient.New),
)
