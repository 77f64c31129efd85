package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally"
	"github.com/whoisryosuke/blender-hub2/src/hub/gateway"
	"github.com/whoisryosuke/blender-hub2/src/hub/handler"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/blender"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/core"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/executor"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/fs"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/jsonrpcfx"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/reveal"
	"github.com/whoisryosuke/blender-hub2/src/hub/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the blender-hub application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	blender.Module,
	reveal.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "blender-hub",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
