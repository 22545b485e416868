package command

import (
	"fmt"

	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/gen"
	"github.com/mlsp/mlsp/symbol"
	cli "github.com/urfave/cli/v2"
)

var builtinsCommand = &cli.Command{
	Name:  "builtins",
	Usage: "prints the built-in identifiers and keywords",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: text, json or markdown",
			Value: "text",
		},
	},
	Action: func(c *cli.Context) error {
		ids, err := Builtins(c)
		if err != nil {
			return err
		}

		switch c.String("format") {
		case "json":
			return gen.GenerateDocumentation(ids, builtin.Keywords).WriteJSON(c.App.Writer)
		case "markdown":
			return gen.GenerateDocumentation(ids, builtin.Keywords).WriteMarkdown(c.App.Writer)
		case "text":
		default:
			return fmt.Errorf("unknown format %q", c.String("format"))
		}

		for _, id := range ids {
			detail, ok := symbol.Detail(id)
			if !ok {
				detail = id.Name
			}
			fmt.Fprintf(c.App.Writer, "%s\n    %s\n", detail, id.Description)
		}
		for _, kw := range builtin.Keywords {
			detail, ok := kw.Detail()
			if !ok {
				detail = kw.Name
			}
			fmt.Fprintf(c.App.Writer, "%s\n", detail)
		}
		return nil
	},
}
