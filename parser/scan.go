package parser

import (
	"log"
	"strings"

	"github.com/alecthomas/participle/lexer"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
)

// BindingKind distinguishes value bindings from function bindings.
type BindingKind int

const (
	ValBinding BindingKind = iota
	FunBinding
)

// Binding is a user-defined `val` or `fun` declaration found in source text.
type Binding struct {
	Kind BindingKind

	// Name is the token naming the binding.
	Name lexer.Token

	// Params is the parameter text of a function. Parentheses are kept only
	// around a parameter tuple.
	Params string

	// Value is the text after "=" up to the terminating ";".
	Value string

	// Defined is true if the declaration has reached its "=".
	Defined bool

	// Terminated is true if the declaration is closed by a ";".
	Terminated bool
}

// Scan finds the `val` and `fun` declarations in text, in source order.
func Scan(text string) []Binding {
	toks, err := Tokenize(text)
	if err != nil {
		log.Printf("failed to lex bindings: %s", err)
	}

	var code []lexer.Token
	for _, tok := range toks {
		if !IsComment(tok) {
			code = append(code, tok)
		}
	}

	var bindings []Binding
	for i := 0; i+1 < len(code); i++ {
		if TokenKind(code[i]) != "Keyword" || TokenKind(code[i+1]) != "Ident" {
			continue
		}

		var kind BindingKind
		switch code[i].Value {
		case "val":
			kind = ValBinding
		case "fun":
			kind = FunBinding
		default:
			continue
		}

		b := Binding{Kind: kind, Name: code[i+1]}
		rest := code[i+2:]

		eq := indexTopLevel(rest, isOperator("="), isPunct(";"), isKeyword("val", "fun"))
		if kind == FunBinding && eq > 0 {
			b.Params = params(text, rest[:eq])
		}
		if eq < 0 || (kind == ValBinding && eq > 0) {
			bindings = append(bindings, b)
			continue
		}

		b.Defined = true
		body := rest[eq+1:]
		end := indexTopLevel(body, isPunct(";"))
		if end >= 0 {
			b.Terminated = true
			body = body[:end]
		}
		b.Value = span(text, body)
		bindings = append(bindings, b)
	}
	return bindings
}

// OpenFunction returns the name of the last function declaration in text that
// has reached its "=" but has not been terminated yet.
func OpenFunction(bindings []Binding) (string, bool) {
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		if b.Kind != FunBinding {
			continue
		}
		if b.Defined && !b.Terminated {
			return b.Name.Value, true
		}
		return "", false
	}
	return "", false
}

// Identifiers turns bindings into identifiers. Each binding is declared into
// reg before the next one is parsed, so later bindings may refer to earlier
// ones. Function declarations that are not complete are skipped.
func Identifiers(reg *symbol.Registry, bindings []Binding) []symbol.Identifier {
	var ids []symbol.Identifier
	for _, b := range bindings {
		var id symbol.Identifier
		switch b.Kind {
		case ValBinding:
			id = symbol.Identifier{
				Name:        b.Name.Value,
				In:          ParseType(reg, b.Value),
				Description: "User-defined variable",
				Kind:        symbol.Variable,
				Value:       strings.Join(strings.Fields(b.Value), " "),
			}
		case FunBinding:
			if !b.Defined || !b.Terminated {
				continue
			}
			id = symbol.Identifier{
				Name:        b.Name.Value,
				In:          ParseType(reg, b.Params),
				Out:         clausesType(reg, b.Value),
				Description: "User-defined function",
				Kind:        symbol.Function,
				Value:       strings.Join(strings.Fields(b.Value), " "),
			}
		}
		reg.Declare(id)
		ids = append(ids, id)
	}
	return ids
}

// clausesType returns the type of the first clause of a function body that
// has a concrete type. Clauses after the first are `name pattern = body`.
func clausesType(reg *symbol.Registry, body string) types.Type {
	toks, err := Tokenize(body)
	if err != nil {
		log.Printf("failed to lex function body: %s", err)
	}

	var first types.Type
	for i, clause := range splitTopLevel(toks, isOperator("|")) {
		if i > 0 {
			eq := indexTopLevel(clause, isOperator("="))
			if eq < 0 {
				continue
			}
			clause = clause[eq+1:]
		}

		t := ParseType(reg, span(body, clause))
		if !types.IsUnbound(t) {
			return t
		}
		if first == nil {
			first = t
		}
	}
	return first
}

// params returns the parameter text of a function. A parenthesized group
// with a single parameter is unwrapped.
func params(text string, toks []lexer.Token) string {
	s := span(text, toks)
	if enclosed(s, '(', ')') && len(SplitTopLevel(s[1:len(s)-1])) == 1 {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// span returns the source text covered by toks.
func span(text string, toks []lexer.Token) string {
	if len(toks) == 0 {
		return ""
	}
	last := toks[len(toks)-1]
	return strings.TrimSpace(text[toks[0].Pos.Offset : last.Pos.Offset+len(last.Value)])
}

type tokenMatcher func(lexer.Token) bool

func isOperator(value string) tokenMatcher {
	return func(tok lexer.Token) bool {
		return TokenKind(tok) == "Operator" && tok.Value == value
	}
}

func isKeyword(values ...string) tokenMatcher {
	return func(tok lexer.Token) bool {
		if TokenKind(tok) != "Keyword" {
			return false
		}
		for _, value := range values {
			if tok.Value == value {
				return true
			}
		}
		return false
	}
}

func isPunct(value string) tokenMatcher {
	return func(tok lexer.Token) bool {
		return TokenKind(tok) == "Punct" && tok.Value == value
	}
}

// indexTopLevel returns the index of the first token outside of brackets
// matching want, or -1 if a token matching stop comes first.
func indexTopLevel(toks []lexer.Token, want tokenMatcher, stop ...tokenMatcher) int {
	depth := 0
	for i, tok := range toks {
		if depth == 0 {
			if want(tok) {
				return i
			}
			for _, s := range stop {
				if s(tok) {
					return -1
				}
			}
		}
		depth = nest(tok, depth)
	}
	return -1
}

func splitTopLevel(toks []lexer.Token, sep tokenMatcher) [][]lexer.Token {
	var (
		groups [][]lexer.Token
		depth  int
		start  int
	)
	for i, tok := range toks {
		if depth == 0 && sep(tok) {
			groups = append(groups, toks[start:i])
			start = i + 1
		}
		depth = nest(tok, depth)
	}
	return append(groups, toks[start:])
}

func nest(tok lexer.Token, depth int) int {
	if TokenKind(tok) != "Punct" {
		return depth
	}
	switch tok.Value {
	case "(", "[", "{":
		return depth + 1
	case ")", "]", "}":
		if depth > 0 {
			return depth - 1
		}
	}
	return depth
}
