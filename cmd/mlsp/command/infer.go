package command

import (
	"fmt"

	"github.com/mlsp/mlsp"
	"github.com/mlsp/mlsp/types"
	cli "github.com/urfave/cli/v2"
)

var inferCommand = &cli.Command{
	Name:      "infer",
	Usage:     "prints the best-guess type of source fragments",
	ArgsUsage: "<fragment>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the structure of each type",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("infer requires at least one fragment")
		}

		reg, err := Registry(c)
		if err != nil {
			return err
		}

		for _, fragment := range c.Args().Slice() {
			typ := mlsp.Infer(reg, fragment)
			if c.Bool("tree") {
				fmt.Fprintf(c.App.Writer, "%s\n%s", fragment, types.Tree(typ))
				continue
			}
			fmt.Fprintf(c.App.Writer, "%s : %s\n", fragment, typ)
		}
		return nil
	},
}
