package symbol

import (
	"testing"

	"github.com/mlsp/mlsp/types"
	"github.com/stretchr/testify/require"
)

func TestDetail(t *testing.T) {
	t.Parallel()

	var (
		intType  = types.New(types.Int)
		realType = types.New(types.Real)
	)

	type testCase struct {
		name     string
		id       Identifier
		expected string
		ok       bool
	}

	for _, tc := range []testCase{{
		"function",
		Identifier{Name: "floor", In: realType, Out: intType, Kind: Function},
		"floor : real -> int",
		true,
	}, {
		"function without output",
		Identifier{Name: "f", In: realType, Kind: Function},
		"f : function",
		true,
	}, {
		"variable with value",
		Identifier{Name: "x", In: intType, Kind: Variable, Value: "42"},
		"val x = 42 : int",
		true,
	}, {
		"variable with type",
		Identifier{Name: "x", In: types.NewList(nil), Kind: Variable},
		"val x : 'a list",
		true,
	}, {
		"bare variable",
		Identifier{Name: "x", Kind: Variable},
		"val x",
		true,
	}, {
		"constant with value",
		Identifier{Name: "nil", In: types.NewList(nil), Kind: Constant, Value: "[]"},
		"nil = [] : 'a list",
		true,
	}, {
		"constant with type",
		Identifier{Name: "pi", In: realType, Kind: Constant},
		"pi : real",
		true,
	}, {
		"bare constant",
		Identifier{Name: "pi", Kind: Constant},
		"pi",
		true,
	}, {
		"operator",
		Identifier{Name: "+", In: types.NewTuple(intType, intType), Out: intType, Kind: Operator},
		"int + int : int",
		true,
	}, {
		"masked operator",
		Identifier{Name: "@", In: types.NewMasked(types.NewTuple(types.NewList(nil), types.NewList(nil)), types.Uniform("int")), Out: types.NewList(nil), Kind: Operator},
		"'a list @ 'a list : 'a list",
		true,
	}, {
		"bare operator",
		Identifier{Name: "+", Kind: Operator},
		"+",
		true,
	}, {
		"snippet",
		Identifier{Name: "use", Kind: Snippet},
		"",
		false,
	}} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			detail, ok := Detail(tc.id)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.expected, detail)
		})
	}
}
