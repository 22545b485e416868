package parser

import (
	"testing"

	"github.com/mlsp/mlsp/types"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	t.Parallel()

	var (
		intType  = types.New(types.Int)
		strType  = types.New(types.String)
		charType = types.New(types.Char)
	)

	for _, tc := range []struct {
		input    string
		expected types.Type
	}{
		{"int", intType},
		{"'a", types.NewVar()},
		{"''a", &types.Var{Name: "''a"}},
		{"unknown", types.NewVar()},
		{"int * int", types.NewTuple(intType, intType)},
		{"'a list", types.NewList(types.NewVar())},
		{"char list list", types.NewList(types.NewList(charType))},
		{"(string * char) list", types.NewList(types.NewTuple(strType, charType))},
		{"'a * 'a list", types.NewTuple(types.NewVar(), types.NewList(types.NewVar()))},
		{"(int)", intType},
	} {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			typ, err := ParseSignature(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, typ)
		})
	}
}

func TestParseSignature_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "int *", "(int", "int -> int"} {
		_, err := ParseSignature(input)
		require.Error(t, err, input)
	}
}
