package builtin

import (
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
)

var (
	intType    = types.New(types.Int)
	realType   = types.New(types.Real)
	boolType   = types.New(types.Bool)
	stringType = types.New(types.String)
	charType   = types.New(types.Char)

	// Identifiers are the built-in functions, operators and constants of the
	// language. Operators overloaded for int and real appear once per flavour.
	Identifiers = []symbol.Identifier{
		function("hd", types.NewList(nil), types.NewVar(), "Returns the first element of a list."),
		function("tl", types.NewList(nil), types.NewList(nil), "Returns a list without its first element."),
		function("explode", stringType, types.NewList(charType), "Converts a string into a list of characters."),
		function("implode", types.NewList(charType), stringType, "Converts a list of characters into a string."),
		function("floor", realType, intType, "Rounds a real number down to the nearest integer."),
		function("ceil", realType, intType, "Rounds a real number up to the nearest integer."),
		function("trunc", realType, intType, "Truncates a real number to an integer."),
		function("round", realType, intType, "Rounds a real number to the nearest integer."),
		function("abs", realType, intType, "Returns the absolute value of a real number."),
		function("ord", charType, intType, "Returns the ASCII value of a character."),
		function("chr", intType, charType, "Returns the character with the given ASCII value."),
		function("str", charType, stringType, "Converts a character into a string."),
		function("real", intType, realType, "Converts an integer into a real number."),
		function("not", boolType, boolType, "Negates a boolean value."),
		operator("+", intType, intType, intType, "Returns the sum of two integer numbers."),
		operator("+", realType, realType, realType, "Returns the sum of two real numbers."),
		operator("-", intType, intType, intType, "Returns the difference of two integer numbers."),
		operator("-", realType, realType, realType, "Returns the difference of two real numbers."),
		operator("*", intType, intType, intType, "Returns the product of two integer numbers."),
		operator("*", realType, realType, realType, "Returns the product of two real numbers."),
		operator("div", intType, intType, intType, "Returns the quotient of two integer numbers."),
		operator("/", realType, realType, realType, "Returns the quotient of two real numbers."),
		operator("mod", intType, intType, intType, "Returns the remainder of two integer numbers."),
		operator("^", stringType, stringType, stringType, "Concatenates two strings."),
		operator("@", types.NewList(nil), types.NewList(nil), types.NewList(nil), "Concatenates two lists."),
		operator("::", types.NewVar(), types.NewList(nil), types.NewList(nil), "Adds an element to the beginning of a list."),
		{
			Name:        "nil",
			In:          types.NewList(nil),
			Description: "The empty list.",
			Kind:        symbol.Constant,
			Value:       "[]",
		},
	}

	// Keywords are the language keywords offered as snippets.
	Keywords = []Keyword{
		{"use", "use $1;", []string{"path to module"}},
		{"exception", "exception $1;", []string{"name"}},
		{"then", "then $1 else $2", []string{"function", "function"}},
		{"else", "else $1", []string{"function"}},
		{"raise", "raise $1", []string{"exception"}},
		{Name: "and"},
		{Name: "andalso"},
		{Name: "orelse"},
		{Name: "or"},
		{Name: "as"},
	}
)

func function(name string, in, out types.Type, description string) symbol.Identifier {
	return symbol.Identifier{
		Name:        name,
		In:          in,
		Out:         out,
		Description: description,
		Kind:        symbol.Function,
	}
}

func operator(name string, lhs, rhs, out types.Type, description string) symbol.Identifier {
	return symbol.Identifier{
		Name:        name,
		In:          types.NewTuple(lhs, rhs),
		Out:         out,
		Description: description,
		Kind:        symbol.Operator,
	}
}

// Registry returns a registry with every built-in identifier declared, in
// table order.
func Registry() *symbol.Registry {
	reg := symbol.NewRegistry()
	reg.Declare(Identifiers...)
	return reg
}

// Lookup returns every built-in identifier named name.
func Lookup(ids []symbol.Identifier, name string) []symbol.Identifier {
	var matches []symbol.Identifier
	for _, id := range ids {
		if id.Name == name {
			matches = append(matches, id)
		}
	}
	return matches
}

// Names returns the distinct names of ids in table order.
func Names(ids []symbol.Identifier) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	for _, id := range ids {
		if _, ok := seen[id.Name]; ok {
			continue
		}
		seen[id.Name] = struct{}{}
		names = append(names, id.Name)
	}
	return names
}
