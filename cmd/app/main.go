package main

import (
	"channelboard/internal/app"

	"go.uber.org/fx"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
