package main

import (
	"github.com/whoisryosuke/blender-hub2/src/hub/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
