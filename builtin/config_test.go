package builtin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/mlsp/mlsp/diagnostic"
	"github.com/mlsp/mlsp/symbol"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	ids, err := Load(strings.NewReader(dedent.Dedent(`
		[[identifier]]
		name = "size"
		in = "string"
		out = "int"
		kind = "function"
		description = "Returns the length of a string."

		[[identifier]]
		name = "<>"
		in = "''a * ''a"
		out = "bool"
		kind = "operator"

		[[identifier]]
		name = "maxInt"
		in = "int"
		kind = "constant"
		value = "1073741823"

		[[identifier]]
		name = "print"
	`)))
	require.NoError(t, err)
	require.Len(t, ids, 4)

	var details []string
	for _, id := range ids {
		detail, _ := symbol.Detail(id)
		details = append(details, detail)
	}
	require.Equal(t, []string{
		"size : string -> int",
		"''a <> ''a : bool",
		"maxInt = 1073741823 : int",
		"",
	}, details)
	require.Equal(t, symbol.Snippet, ids[3].Kind)
	require.Nil(t, ids[3].In)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		input string
		err   string
	}{{
		"missing name",
		`
		[[identifier]]
		in = "int"
		`,
		"identifier #1: missing name",
	}, {
		"bad signature",
		`
		[[identifier]]
		name = "f"
		in = "int ->"
		`,
		"identifier #1: f: invalid type signature",
	}} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(dedent.Dedent(tc.input)))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "builtins.toml")
	err := os.WriteFile(filename, []byte("[[identifier]]\nname = \"x\"\nin = \"real\"\nkind = \"variable\"\n"), 0o600)
	require.NoError(t, err)

	ids, err := LoadFile(filename)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	require.Equal(t, "x", ids[0].Name)
	require.Equal(t, symbol.Variable, ids[0].Kind)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadFile_SyntaxError(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "builtins.toml")
	err := os.WriteFile(filename, []byte("[[identifier]]\nname = \"x\n"), 0o600)
	require.NoError(t, err)

	_, err = LoadFile(filename)
	require.Error(t, err)

	spans := diagnostic.Spans(err)
	require.Len(t, spans, 1)
	require.Equal(t, filename, spans[0].Pos.Filename)
	require.Equal(t, 2, spans[0].Pos.Line)
}
