package command

import (
	"fmt"

	"github.com/mlsp/mlsp"
	cli "github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "prints mlsp tool version",
	Action: func(c *cli.Context) error {
		fmt.Println(mlsp.Version)
		return nil
	},
}
