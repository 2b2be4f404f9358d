package main

import (
	"os"

	"github.com/moralisweb3/docschat/internal/docschat/app"
)

func main() {
	if err := app.NewDocschatCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
