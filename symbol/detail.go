package symbol

import (
	"fmt"

	"github.com/mlsp/mlsp/types"
)

// Detail renders the one-line signature shown next to a completion item.
// Snippets have no detail.
func Detail(id Identifier) (string, bool) {
	switch id.Kind {
	case Function:
		if id.In != nil && id.Out != nil {
			return fmt.Sprintf("%s : %s -> %s", id.Name, id.In, id.Out), true
		}
		return fmt.Sprintf("%s : function", id.Name), true
	case Variable:
		return "val " + valueDetail(id), true
	case Constant:
		return valueDetail(id), true
	case Operator:
		if id.In != nil && id.Out != nil {
			lhs, rhs := operands(id.In)
			return fmt.Sprintf("%s %s %s : %s", lhs, id.Name, rhs, id.Out), true
		}
		return id.Name, true
	}
	return "", false
}

func valueDetail(id Identifier) string {
	switch {
	case id.Value != "":
		return fmt.Sprintf("%s = %s : %s", id.Name, id.Value, typeString(id.In))
	case id.In != nil:
		return fmt.Sprintf("%s : %s", id.Name, id.In)
	default:
		return id.Name
	}
}

// operands returns the two slots of an operator's input tuple. Missing slots
// render as unbound variables.
func operands(in types.Type) (lhs, rhs types.Type) {
	elems, _ := types.TupleElems(in)
	slot := func(i int) types.Type {
		if i < len(elems) {
			return elems[i]
		}
		return types.NewVar()
	}
	return slot(0), slot(1)
}

func typeString(t types.Type) string {
	if t == nil {
		return types.Unbound
	}
	return t.String()
}
