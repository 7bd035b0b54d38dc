package main

import (
	"go.uber.org/fx"

	"github.com/archita9/IPC-News-Bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
