package parser

import (
	"strings"

	"github.com/alecthomas/participle/lexer"
	"github.com/alecthomas/participle/lexer/stateful"
)

var (
	// Lexer lexes ML source into tokens. Every input is accepted: characters
	// outside the language become Other tokens.
	Lexer = lexer.Must(stateful.New(stateful.Rules{
		"Root": {
			{"Comment", `\(\*`, stateful.Push("Comment")},
			{"String", `"(\\.|[^"\\])*"`, nil},
			{"Char", `#"(\\.|[^"\\])*"`, nil},
			{"Keyword", `\b(abstype|and|andalso|as|case|datatype|do|else|end|exception|fn|fun|functor|handle|if|in|infix|infixr|let|local|nonfix|of|op|open|orelse|raise|rec|sig|signature|struct|structure|then|type|use|val|while|with|withtype)\b`, nil},
			{"Bool", `\b(true|false)\b`, nil},
			{"Real", `~?\d+\.\d+([eE]~?\d+)?`, nil},
			{"Int", `~?\d+`, nil},
			{"TypeVar", `'[\w']*`, nil},
			{"Ident", `[A-Za-z][\w']*(\.[A-Za-z][\w']*)*`, nil},
			{"Operator", `[!%&$#+\-/:<=>?@\\~^|*]+`, nil},
			{"Punct", `[()\[\]{},;_.]`, nil},
			{"whitespace", `\s+`, nil},
			{"Other", `.`, nil},
		},
		"Comment": {
			{"CommentEnd", `\*\)`, stateful.Pop()},
			{"Comment", `\(\*`, stateful.Push("Comment")},
			{"CommentText", `[^*(]+|\*|\(`, nil},
		},
	}))

	symbols = Lexer.Symbols()

	tokenNames = func() map[rune]string {
		names := make(map[rune]string, len(symbols))
		for name, r := range symbols {
			names[r] = name
		}
		return names
	}()
)

// TokenKind returns the name of the lexer rule that produced tok.
func TokenKind(tok lexer.Token) string {
	return tokenNames[tok.Type]
}

// IsComment returns true if tok is part of a comment.
func IsComment(tok lexer.Token) bool {
	switch TokenKind(tok) {
	case "Comment", "CommentText", "CommentEnd":
		return true
	}
	return false
}

// Tokenize lexes text until the end of input. Tokens lexed before an error
// are returned together with the error.
func Tokenize(text string) ([]lexer.Token, error) {
	lex, err := Lexer.Lex(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	var toks []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return toks, err
		}
		if tok.Type == lexer.EOF {
			return toks, nil
		}
		if TokenKind(tok) == "whitespace" {
			continue
		}
		toks = append(toks, tok)
	}
}
