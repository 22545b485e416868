package langserver

import (
	"context"
	"fmt"
	"log"

	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/diagnostic"
	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/symbol"
	lsp "github.com/sourcegraph/go-lsp"
)

func (ls *LangServer) textDocumentHoverHandler(ctx context.Context, params lsp.TextDocumentPositionParams) (*lsp.Hover, error) {
	uri := params.TextDocument.URI
	log.Printf("text document hover %q", uri)

	td, err := ls.document(uri)
	if err != nil {
		return nil, err
	}
	return ls.Hover(td, params.Position), nil
}

// Hover describes the word under pos. Built-in identifiers and keywords are
// described by their table entries, user bindings by the last declaration
// before the word.
func (ls *LangServer) Hover(td TextDocument, pos lsp.Position) *lsp.Hover {
	var h lsp.Hover

	word, start, end := td.Buffer.WordAt(td.Offset(pos))
	if word == "" {
		return &h
	}
	r := newRange(td, start, end)
	h.Range = &r

	for _, id := range builtin.Lookup(ls.builtins, word) {
		h.Contents = append(h.Contents, identifierContents(id)...)
	}
	for _, kw := range builtin.Keywords {
		if kw.Name != word {
			continue
		}
		detail, ok := kw.Detail()
		if !ok {
			detail = kw.Name
		}
		h.Contents = append(h.Contents, lsp.MarkedString{Language: "sml", Value: detail})
	}

	ids := ls.visibleIdentifiers(td, start)
	for i := len(ids) - 1; i >= 0; i-- {
		if ids[i].Name == word {
			h.Contents = append(h.Contents, identifierContents(ids[i])...)
			break
		}
	}

	if len(h.Contents) > 0 {
		return &h
	}

	candidates := builtin.Names(ls.builtins)
	for _, kw := range builtin.Keywords {
		candidates = append(candidates, kw.Name)
	}
	for _, id := range ids {
		candidates = append(candidates, id.Name)
	}
	if suggestion := diagnostic.Suggestion(word, candidates); suggestion != "" {
		h.Contents = []lsp.MarkedString{
			lsp.RawMarkedString(fmt.Sprintf("did you mean `%s`?", suggestion)),
		}
	}
	return &h
}

// visibleIdentifiers returns the user identifiers declared before offset.
func (ls *LangServer) visibleIdentifiers(td TextDocument, offset int) []symbol.Identifier {
	var bindings []parser.Binding
	for _, b := range td.Bindings {
		if b.Name.Pos.Offset > offset {
			break
		}
		bindings = append(bindings, b)
	}
	return parser.Identifiers(ls.registry.Clone(), bindings)
}

func identifierContents(id symbol.Identifier) []lsp.MarkedString {
	var contents []lsp.MarkedString
	if detail, ok := symbol.Detail(id); ok {
		contents = append(contents, lsp.MarkedString{Language: "sml", Value: detail})
	}
	if id.Description != "" {
		contents = append(contents, lsp.RawMarkedString(id.Description))
	}
	return contents
}

func (ls *LangServer) textDocumentDefinitionHandler(ctx context.Context, params lsp.TextDocumentPositionParams) ([]lsp.Location, error) {
	uri := params.TextDocument.URI
	log.Printf("text document definition %q", uri)

	td, err := ls.document(uri)
	if err != nil {
		return nil, err
	}

	var locs []lsp.Location
	if loc := Definition(td, params.Position); loc != nil {
		locs = append(locs, *loc)
	}
	return locs, nil
}

// Definition returns the location of the name of the last binding declared
// before pos that is named by the word under pos.
func Definition(td TextDocument, pos lsp.Position) *lsp.Location {
	word, start, _ := td.Buffer.WordAt(td.Offset(pos))
	if word == "" {
		return nil
	}

	var loc *lsp.Location
	for _, b := range td.Bindings {
		if b.Name.Pos.Offset > start {
			break
		}
		if b.Name.Value != word {
			continue
		}
		loc = &lsp.Location{
			URI:   td.Identifier.URI,
			Range: newRange(td, b.Name.Pos.Offset, b.Name.Pos.Offset+len(b.Name.Value)),
		}
	}
	return loc
}

func newRange(td TextDocument, start, end int) lsp.Range {
	return lsp.Range{
		Start: newPosition(td, start),
		End:   newPosition(td, end),
	}
}

func newPosition(td TextDocument, offset int) lsp.Position {
	pos := td.Buffer.PositionAt(offset)
	return lsp.Position{Line: pos.Line - 1, Character: pos.Column - 1}
}
