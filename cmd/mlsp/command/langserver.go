package command

import (
	"log"
	"os"

	"github.com/mlsp/mlsp/langserver"
	cli "github.com/urfave/cli/v2"
)

var langserverCommand = &cli.Command{
	Name:  "langserver",
	Usage: "run mlsp language server over stdio",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "logfile",
			Usage: "file to log output",
			Value: "/tmp/mlsp-langserver.log",
		},
		&cli.DurationFlag{
			Name:  "debounce",
			Usage: "delay before a document change is applied",
			Value: langserver.DefaultDebounce,
		},
	},
	Action: func(c *cli.Context) error {
		f, err := os.Create(c.String("logfile"))
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)

		extra, err := extraBuiltins(c)
		if err != nil {
			return err
		}

		s := langserver.NewServer(
			langserver.WithBuiltins(extra...),
			langserver.WithDebounce(c.Duration("debounce")),
		)
		return s.Listen(Context(), os.Stdin, os.Stdout)
	},
}
