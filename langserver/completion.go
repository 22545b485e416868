package langserver

import (
	"context"
	"fmt"
	"log"

	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/symbol"
	lsp "github.com/sourcegraph/go-lsp"
)

var completionKind = map[symbol.Kind]lsp.CompletionItemKind{
	symbol.Function: lsp.CIKFunction,
	symbol.Operator: lsp.CIKOperator,
	symbol.Variable: lsp.CIKVariable,
	symbol.Constant: lsp.CIKConstant,
	symbol.Snippet:  lsp.CIKSnippet,
}

func (ls *LangServer) textDocumentCompletionHandler(ctx context.Context, params lsp.CompletionParams) (*lsp.CompletionList, error) {
	uri := params.TextDocument.URI
	log.Printf("text document completion %q", uri)

	td, err := ls.document(uri)
	if err != nil {
		return nil, err
	}

	return &lsp.CompletionList{
		Items: ls.Complete(td.Text[:td.Offset(params.Position)]),
	}, nil
}

// Complete returns the completion items offered after text. Only bindings
// declared in text are suggested, so text is usually the document up to the
// cursor.
func (ls *LangServer) Complete(text string) []lsp.CompletionItem {
	var items []lsp.CompletionItem
	for _, id := range ls.builtins {
		items = append(items, identifierItem(id))
	}
	for _, kw := range builtin.Keywords {
		items = append(items, keywordItem(kw))
	}

	bindings := parser.Scan(text)
	if name, ok := parser.OpenFunction(bindings); ok {
		items = append(items, clauseItem(name))
	}
	for _, id := range parser.Identifiers(ls.registry.Clone(), bindings) {
		items = append(items, identifierItem(id))
	}
	return items
}

func identifierItem(id symbol.Identifier) lsp.CompletionItem {
	item := lsp.CompletionItem{
		Label:         id.Name,
		Kind:          completionKind[id.Kind],
		Documentation: id.Description,
	}
	if detail, ok := symbol.Detail(id); ok {
		item.Detail = detail
	}
	return item
}

func keywordItem(kw builtin.Keyword) lsp.CompletionItem {
	item := lsp.CompletionItem{
		Label:            kw.Name,
		Kind:             lsp.CIKKeyword,
		InsertText:       kw.InsertText(),
		InsertTextFormat: lsp.ITFSnippet,
	}
	if detail, ok := kw.Detail(); ok {
		item.Detail = detail
	}
	return item
}

// clauseItem offers another pattern clause for the function being declared.
func clauseItem(name string) lsp.CompletionItem {
	return lsp.CompletionItem{
		Label:            fmt.Sprintf("| %s () =", name),
		Kind:             lsp.CIKSnippet,
		Detail:           fmt.Sprintf("| %s (<params>) = <code>;", name),
		Documentation:    "Adds a pattern to a function.",
		InsertText:       fmt.Sprintf("   %s ($1) = $2", name),
		InsertTextFormat: lsp.ITFSnippet,
	}
}

// triggerCharacters returns the first character of every built-in identifier
// and keyword, followed by the clause trigger "|".
func (ls *LangServer) triggerCharacters() []string {
	var (
		chars []string
		seen  = make(map[string]struct{})
	)
	add := func(name string) {
		if name == "" {
			return
		}
		c := name[:1]
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		chars = append(chars, c)
	}
	for _, id := range ls.builtins {
		add(id.Name)
	}
	for _, kw := range builtin.Keywords {
		add(kw.Name)
	}
	add("|")
	return chars
}
