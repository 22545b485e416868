package types

import "github.com/xlab/treeprint"

// Tree returns the structure of t as a printable tree, one node per shape.
func Tree(t Type) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(t.String())
	addShape(tree, t)
	return tree
}

// AddTree adds t and its structure as a branch of node.
func AddTree(node treeprint.Tree, t Type) {
	addShape(node.AddBranch(t.String()), t)
}

func addShape(node treeprint.Tree, t Type) {
	switch t := t.(type) {
	case *Var:
		node.AddMetaNode("var", t.Name)
	case *Base:
		node.AddMetaNode("base", t.Name)
	case *List:
		addShape(node.AddMetaBranch("list", t.Elem.String()), t.Elem)
	case *Tuple:
		branch := node.AddMetaBranch("tuple", len(t.Elems))
		for _, elem := range t.Elems {
			addShape(branch.AddBranch(elem.String()), elem)
		}
	case *Masked:
		addShape(node.AddMetaBranch("mask", t.Mask.String()), t.Elem)
	}
}
