package mlsp

import (
	"context"
	"io"

	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
	"golang.org/x/sync/errgroup"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// Infer returns the best-guess type of a source fragment. Identifiers are
// looked up in reg.
func Infer(reg *symbol.Registry, fragment string) types.Type {
	return parser.ParseType(reg, fragment)
}

// Document holds the user identifiers declared in a source file.
type Document struct {
	Filename    string
	Identifiers []symbol.Identifier
}

// Describe reads r to the end and returns the identifiers it declares. Each
// document gets its own copy of reg, so declarations never leak between
// documents.
func Describe(reg *symbol.Registry, r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Identifiers: parser.Identifiers(reg.Clone(), parser.Scan(string(data))),
	}
	if named, ok := r.(interface{ Name() string }); ok {
		doc.Filename = named.Name()
	}
	return doc, nil
}

// DescribeMultiple describes every reader concurrently. Documents are
// returned in the order of rs.
func DescribeMultiple(ctx context.Context, reg *symbol.Registry, rs []io.Reader) ([]Document, error) {
	docs := make([]Document, len(rs))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := Describe(reg, r)
			if err != nil {
				return err
			}

			docs[i] = doc
			return nil
		})
	}

	return docs, g.Wait()
}
