package parser

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/alecthomas/participle/lexer/stateful"
	"github.com/mlsp/mlsp/types"
	"github.com/pkg/errors"
)

var (
	signatureLexer = lexer.Must(stateful.New(stateful.Rules{
		"Root": {
			{"TypeVar", `'+[A-Za-z_]\w*`, nil},
			{"Ident", `[A-Za-z_]\w*`, nil},
			{"Operator", `[*()]`, nil},
			{"whitespace", `\s+`, nil},
		},
	}))

	signatureParser = participle.MustBuild(
		&Signature{},
		participle.Lexer(signatureLexer),
	)
)

// Signature is a type written in ML syntax, e.g. "(int * 'a list) list".
type Signature struct {
	Elems []*SignatureApp `@@ ( "*" @@ )*`
}

// SignatureApp is an atom followed by zero or more list constructors.
type SignatureApp struct {
	Atom  *SignatureAtom `@@`
	Lists []string       `( @"list" )*`
}

type SignatureAtom struct {
	Var   *string    `  @TypeVar`
	Name  *string    `| @Ident`
	Group *Signature `| "(" @@ ")"`
}

// ParseSignature parses a type written in ML syntax. Unknown type names
// become unbound type variables.
func ParseSignature(s string) (types.Type, error) {
	sig := &Signature{}
	err := signatureParser.ParseString(s, sig)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type signature %q", s)
	}
	return sig.Type(), nil
}

func (s *Signature) Type() types.Type {
	if len(s.Elems) == 1 {
		return s.Elems[0].Type()
	}
	elems := make([]types.Type, len(s.Elems))
	for i, elem := range s.Elems {
		elems[i] = elem.Type()
	}
	return types.NewTuple(elems...)
}

func (a *SignatureApp) Type() types.Type {
	t := a.Atom.Type()
	for range a.Lists {
		t = types.NewList(t)
	}
	return t
}

func (a *SignatureAtom) Type() types.Type {
	switch {
	case a.Var != nil:
		return types.New(*a.Var)
	case a.Name != nil:
		return types.New(*a.Name)
	case a.Group != nil:
		return a.Group.Type()
	}
	return types.NewVar()
}
