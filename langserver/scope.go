package langserver

type Scope uint16

const (
	String Scope = iota
	Constant
	Numeric
	Variable
	Keyword
	Operator
	Type
	Function
	Comment
)

// Scopes lists every scope in the order advertised to the client.
var Scopes = []Scope{
	String,
	Constant,
	Numeric,
	Variable,
	Keyword,
	Operator,
	Type,
	Function,
	Comment,
}

func (s Scope) String() string {
	return scopeAsString[s]
}

var (
	// Conventional textmate scopes:
	// https://macromates.com/manual/en/language_grammars
	scopeAsString = map[Scope]string{
		String:   "string.sml",
		Constant: "constant.language.sml",
		Numeric:  "constant.numeric.sml",
		Variable: "variable.sml",
		Keyword:  "keyword.sml",
		Operator: "keyword.operator.sml",
		Type:     "storage.type.sml",
		Function: "entity.name.function.sml",
		Comment:  "comment.sml",
	}
)
