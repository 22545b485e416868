package gen

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/symbol"
)

// Documentation contains the built-in identifiers and keywords of the
// language, grouped by kind.
type Documentation struct {
	Builtins []Builtin
	Keywords []Keyword
}

type Builtin struct {
	Kind  string
	Funcs []*Func
}

type Func struct {
	Name   string
	Detail string
	Doc    string
}

type Keyword struct {
	Name    string
	Detail  string
	Snippet string
}

// GenerateDocumentation documents ids and keywords. Groups are sorted by kind
// and keep the table order of their identifiers.
func GenerateDocumentation(ids []symbol.Identifier, keywords []builtin.Keyword) *Documentation {
	funcsByKind := make(map[string][]*Func)
	for _, id := range ids {
		detail, ok := symbol.Detail(id)
		if !ok {
			detail = id.Name
		}
		kind := id.Kind.String()
		funcsByKind[kind] = append(funcsByKind[kind], &Func{
			Name:   id.Name,
			Detail: detail,
			Doc:    id.Description,
		})
	}

	var doc Documentation
	for kind, funcs := range funcsByKind {
		doc.Builtins = append(doc.Builtins, Builtin{
			Kind:  kind,
			Funcs: funcs,
		})
	}
	sort.SliceStable(doc.Builtins, func(i, j int) bool {
		return doc.Builtins[i].Kind < doc.Builtins[j].Kind
	})

	for _, kw := range keywords {
		detail, _ := kw.Detail()
		doc.Keywords = append(doc.Keywords, Keyword{
			Name:    kw.Name,
			Detail:  detail,
			Snippet: kw.InsertText(),
		})
	}
	return &doc
}

// WriteJSON writes doc as indented JSON.
func (doc *Documentation) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteMarkdown writes doc as a markdown reference.
func (doc *Documentation) WriteMarkdown(w io.Writer) error {
	for _, b := range doc.Builtins {
		_, err := fmt.Fprintf(w, "## %s\n\n", b.Kind)
		if err != nil {
			return err
		}
		for _, fun := range b.Funcs {
			_, err = fmt.Fprintf(w, "### `%s`\n\n```sml\n%s\n```\n\n", fun.Name, fun.Detail)
			if err != nil {
				return err
			}
			if fun.Doc != "" {
				_, err = fmt.Fprintf(w, "%s\n\n", fun.Doc)
				if err != nil {
					return err
				}
			}
		}
	}

	if len(doc.Keywords) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "## keyword\n\n")
	if err != nil {
		return err
	}
	for _, kw := range doc.Keywords {
		if kw.Detail == "" {
			_, err = fmt.Fprintf(w, "- `%s`\n", kw.Name)
		} else {
			_, err = fmt.Fprintf(w, "- `%s`: `%s`\n", kw.Name, kw.Detail)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
