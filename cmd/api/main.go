package main

import (
	"go.uber.org/fx"

	appfx "github.com/alternativafozthiago/financas/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
