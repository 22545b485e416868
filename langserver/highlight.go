package langserver

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/alecthomas/participle/lexer"
	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/symbol"
	lsp "github.com/sourcegraph/go-lsp"
)

func (ls *LangServer) highlight(ctx context.Context, td TextDocument) {
	if _, ok := ls.capset[SemanticHighlightingCapability]; !ok {
		return
	}
	go func() {
		err := ls.publishSemanticHighlighting(ctx, td)
		if err != nil {
			log.Printf("err: %s", err)
		}
	}()
}

func (ls *LangServer) publishSemanticHighlighting(ctx context.Context, td TextDocument) error {
	log.Printf("publishing semantic highlighting")
	return ls.server.Notify(ctx, "textDocument/semanticHighlighting", ls.semanticHighlighting(td))
}

func (ls *LangServer) semanticHighlighting(td TextDocument) lsp.SemanticHighlightingParams {
	params := lsp.SemanticHighlightingParams{
		TextDocument: td.Identifier,
	}

	lines := make(map[int]lsp.SemanticHighlightingTokens)
	ls.highlightTokens(lines, td)

	var sortedLines []int
	for line := range lines {
		sortedLines = append(sortedLines, line)
	}
	sort.Ints(sortedLines)

	for _, line := range sortedLines {
		params.Lines = append(params.Lines, lsp.SemanticHighlightingInformation{
			Line:   line,
			Tokens: lines[line],
		})
	}
	return params
}

func (ls *LangServer) highlightTokens(lines map[int]lsp.SemanticHighlightingTokens, td TextDocument) {
	declared := make(map[int]Scope)
	for _, b := range td.Bindings {
		scope := Variable
		if b.Kind == parser.FunBinding {
			scope = Function
		}
		declared[b.Name.Pos.Offset] = scope
	}

	for _, tok := range td.Tokens {
		if parser.IsComment(tok) {
			highlightToken(lines, tok, Comment)
			continue
		}

		switch parser.TokenKind(tok) {
		case "Keyword":
			highlightToken(lines, tok, Keyword)
		case "Bool":
			highlightToken(lines, tok, Constant)
		case "Int", "Real":
			highlightToken(lines, tok, Numeric)
		case "String", "Char":
			highlightToken(lines, tok, String)
		case "TypeVar":
			highlightToken(lines, tok, Type)
		case "Ident", "Operator":
			if scope, ok := declared[tok.Pos.Offset]; ok {
				highlightToken(lines, tok, scope)
			} else if scope, ok := ls.builtinScope(tok.Value); ok {
				highlightToken(lines, tok, scope)
			}
		}
	}
}

func (ls *LangServer) builtinScope(name string) (Scope, bool) {
	for _, id := range ls.builtins {
		if id.Name != name {
			continue
		}
		switch id.Kind {
		case symbol.Function:
			return Function, true
		case symbol.Operator:
			return Operator, true
		case symbol.Constant:
			return Constant, true
		case symbol.Variable:
			return Variable, true
		}
	}
	return 0, false
}

// highlightToken highlights tok, splitting tokens spanning several lines into
// one highlight per line.
func highlightToken(lines map[int]lsp.SemanticHighlightingTokens, tok lexer.Token, s Scope) {
	line := tok.Pos.Line - 1
	column := tok.Pos.Column - 1
	for i, segment := range strings.Split(tok.Value, "\n") {
		if i > 0 {
			line++
			column = 0
		}
		if segment == "" {
			continue
		}
		lines[line] = append(lines[line], lsp.SemanticHighlightingToken{
			Character: uint32(column),
			Length:    uint16(len(segment)),
			Scope:     uint16(s),
		})
	}
}
