package command

import (
	"io"
	"os"

	"github.com/mlsp/mlsp"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
	cli "github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"
)

var describeCommand = &cli.Command{
	Name:      "describe",
	Usage:     "prints the user-defined identifiers of ML sources",
	ArgsUsage: "<*.sml>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the identifiers of each file as a tree",
		},
	},
	Action: func(c *cli.Context) error {
		rs, cleanup, err := collectReaders(c)
		if err != nil {
			return err
		}
		defer cleanup()

		reg, err := Registry(c)
		if err != nil {
			return err
		}

		docs, err := mlsp.DescribeMultiple(Context(), reg, rs)
		if err != nil {
			return err
		}

		for _, doc := range docs {
			if c.Bool("tree") {
				if _, err := io.WriteString(c.App.Writer, documentTree(doc).String()); err != nil {
					return err
				}
				continue
			}
			for _, id := range doc.Identifiers {
				detail, _ := symbol.Detail(id)
				if _, err := io.WriteString(c.App.Writer, detail+"\n"); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func documentTree(doc mlsp.Document) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(doc.Filename)
	for _, id := range doc.Identifiers {
		detail, _ := symbol.Detail(id)
		branch := tree.AddMetaBranch(id.Kind, detail)
		for _, t := range []types.Type{id.In, id.Out} {
			if t != nil {
				types.AddTree(branch, t)
			}
		}
	}
	return tree
}

func collectReaders(c *cli.Context) (rs []io.Reader, cleanup func() error, err error) {
	cleanup = func() error { return nil }

	var rcs []io.ReadCloser
	if c.NArg() == 0 {
		rcs = append(rcs, os.Stdin)
	} else {
		for _, arg := range c.Args().Slice() {
			f, err := os.Open(arg)
			if err != nil {
				for _, rc := range rcs {
					rc.Close()
				}
				return nil, cleanup, err
			}
			rcs = append(rcs, f)
		}
	}

	for _, rc := range rcs {
		rs = append(rs, rc)
	}

	return rs, func() error {
		for _, rc := range rcs {
			err := rc.Close()
			if err != nil {
				return err
			}
		}
		return nil
	}, nil
}
