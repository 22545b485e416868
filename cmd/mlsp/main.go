package main

import (
	"os"

	"github.com/mlsp/mlsp/cmd/mlsp/command"
	"github.com/mlsp/mlsp/diagnostic"
)

func main() {
	app := command.App()
	if err := app.Run(os.Args); err != nil {
		diagnostic.DisplayError(command.Context(), os.Stderr, err)
		os.Exit(1)
	}
}
