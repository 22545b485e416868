package gen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocumentation(t *testing.T) {
	t.Parallel()

	doc := GenerateDocumentation(builtin.Identifiers, builtin.Keywords)

	var kinds []string
	for _, b := range doc.Builtins {
		kinds = append(kinds, b.Kind)
	}
	require.Equal(t, []string{"constant", "function", "operator"}, kinds)
	require.Equal(t, "hd", doc.Builtins[1].Funcs[0].Name)
	require.Equal(t, "hd : 'a list -> 'a", doc.Builtins[1].Funcs[0].Detail)
	require.Len(t, doc.Keywords, len(builtin.Keywords))

	var buf bytes.Buffer
	require.NoError(t, doc.WriteJSON(&buf))

	var decoded Documentation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *doc, decoded)
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()

	doc := GenerateDocumentation([]symbol.Identifier{{
		Name:        "floor",
		In:          types.New(types.Real),
		Out:         types.New(types.Int),
		Description: "Rounds down.",
		Kind:        symbol.Function,
	}}, []builtin.Keyword{
		{Name: "raise", Template: "raise $1", Params: []string{"exception"}},
		{Name: "and"},
	})

	var buf bytes.Buffer
	require.NoError(t, doc.WriteMarkdown(&buf))
	require.Equal(t, "## function\n\n"+
		"### `floor`\n\n"+
		"```sml\nfloor : real -> int\n```\n\n"+
		"Rounds down.\n\n"+
		"## keyword\n\n"+
		"- `raise`: `raise <exception>`\n"+
		"- `and`\n", buf.String())
}
