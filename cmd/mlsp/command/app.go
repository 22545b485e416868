package command

import (
	"context"
	"os"

	"github.com/logrusorgru/aurora"
	isatty "github.com/mattn/go-isatty"
	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/diagnostic"
	"github.com/mlsp/mlsp/symbol"
	cli "github.com/urfave/cli/v2"
)

func App() *cli.App {
	app := cli.NewApp()
	app.Name = "mlsp"
	app.Usage = "type hints and completion for ML sources"
	app.Description = "infers best-guess types of ML fragments and serves them to editors"
	app.Commands = []*cli.Command{
		inferCommand,
		describeCommand,
		builtinsCommand,
		langserverCommand,
		versionCommand,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "builtins",
			Aliases: []string{"b"},
			Usage:   "TOML file declaring extra built-in identifiers",
			EnvVars: []string{"MLSP_BUILTINS"},
		},
	}
	return app
}

func Context() context.Context {
	ctx := context.Background()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		ctx = diagnostic.WithColor(ctx, aurora.NewAurora(true))
	}
	return ctx
}

// Builtins returns the built-in identifiers followed by the ones declared in
// the --builtins file, if any.
func Builtins(c *cli.Context) ([]symbol.Identifier, error) {
	extra, err := extraBuiltins(c)
	if err != nil {
		return nil, err
	}
	return append(append([]symbol.Identifier{}, builtin.Identifiers...), extra...), nil
}

func extraBuiltins(c *cli.Context) ([]symbol.Identifier, error) {
	if !c.IsSet("builtins") {
		return nil, nil
	}
	return builtin.LoadFile(c.String("builtins"))
}

// Registry returns a registry declaring every identifier of Builtins.
func Registry(c *cli.Context) (*symbol.Registry, error) {
	ids, err := Builtins(c)
	if err != nil {
		return nil, err
	}

	reg := symbol.NewRegistry()
	reg.Declare(ids...)
	return reg, nil
}
