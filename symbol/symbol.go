package symbol

import (
	"github.com/mlsp/mlsp/types"
)

// Kind classifies an identifier for display.
type Kind int

const (
	Snippet Kind = iota
	Function
	Operator
	Variable
	Constant
)

var kindAsString = map[Kind]string{
	Snippet:  "snippet",
	Function: "function",
	Operator: "operator",
	Variable: "variable",
	Constant: "constant",
}

func (k Kind) String() string {
	return kindAsString[k]
}

// ParseKind returns the kind named s, falling back to Snippet for unknown
// names.
func ParseKind(s string) Kind {
	for kind, name := range kindAsString {
		if name == s {
			return kind
		}
	}
	return Snippet
}

// Identifier is a named built-in or user-defined symbol.
type Identifier struct {
	Name string

	// In is the argument type of a function, the pair of operand types of an
	// operator, or the type of a value.
	In types.Type

	// Out is the result type, nil for values.
	Out types.Type

	Description string
	Kind        Kind

	// Value is the literal source text of a value, if known.
	Value string
}

// Type returns the type an identifier contributes to a registry: its result
// type if there is one, otherwise its input type.
func (id Identifier) Type() types.Type {
	if id.Out != nil {
		return id.Out
	}
	return id.In
}
