package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Names of the base types.
const (
	Int    = "int"
	Real   = "real"
	Bool   = "bool"
	String = "string"
	Char   = "char"
)

// Unbound is the canonical form of an unbound type variable.
const Unbound = "'a"

var baseNames = map[string]struct{}{
	Int:    {},
	Real:   {},
	Bool:   {},
	String: {},
	Char:   {},
}

// Type is implemented by every shape of ML type. The set of shapes is closed:
// *Var, *Base, *List, *Tuple and *Masked.
type Type interface {
	// Stringer renders the canonical form shown to users, e.g. "(int * 'a list)".
	fmt.Stringer

	isType()
}

func (*Var) isType()    {}
func (*Base) isType()   {}
func (*List) isType()   {}
func (*Tuple) isType()  {}
func (*Masked) isType() {}

// Var is a polymorphic type variable. Deeper quoting ('a, ''a, ...) denotes a
// distinct masking rank.
type Var struct {
	Name string
}

func (v *Var) String() string { return v.Name }

// Base is one of int, real, bool, string or char.
type Base struct {
	Name string
}

func (b *Base) String() string { return b.Name }

// List is a list type parameterized by its element type.
type List struct {
	Elem Type
}

func (l *List) String() string { return fmt.Sprintf("%s list", l.Elem) }

// Tuple is a fixed-arity product type.
type Tuple struct {
	Elems []Type
}

func (t *Tuple) String() string {
	elems := make([]string, len(t.Elems))
	for i, elem := range t.Elems {
		elems[i] = elem.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(elems, " * "))
}

// New returns the type named by raw. Base type names produce a *Base, names
// carrying a quote produce a *Var with that name, and anything else collapses
// to the unbound type variable.
func New(raw string) Type {
	if IsBase(raw) {
		return &Base{Name: raw}
	}
	if strings.Contains(raw, "'") {
		return &Var{Name: raw}
	}
	return NewVar()
}

// NewVar returns a fresh unbound type variable.
func NewVar() *Var {
	return &Var{Name: Unbound}
}

// NewList returns a list of elem, or a list of an unbound variable when elem
// is nil.
func NewList(elem Type) *List {
	if elem == nil {
		elem = NewVar()
	}
	return &List{Elem: elem}
}

// NewTuple returns a tuple of elems. Nil slots are filled with unbound
// variables and a tuple without elements gets a single unbound slot.
func NewTuple(elems ...Type) *Tuple {
	if len(elems) == 0 {
		return &Tuple{Elems: []Type{NewVar()}}
	}
	t := &Tuple{Elems: make([]Type, len(elems))}
	for i, elem := range elems {
		if elem == nil {
			elem = NewVar()
		}
		t.Elems[i] = elem
	}
	return t
}

// IsBase returns true if name is one of the base type names.
func IsBase(name string) bool {
	_, ok := baseNames[name]
	return ok
}

// IsUnbound returns true if t is the canonical unbound type variable.
func IsUnbound(t Type) bool {
	v, ok := t.(*Var)
	return ok && v.Name == Unbound
}

// Instantiate returns a new instance of t's shape with default arguments:
// lists and tuples lose their element types, masks are dropped.
func Instantiate(t Type) Type {
	switch t := t.(type) {
	case *Base:
		return &Base{Name: t.Name}
	case *List:
		return NewList(nil)
	case *Tuple:
		return NewTuple()
	case *Masked:
		return Instantiate(t.Elem)
	default:
		return NewVar()
	}
}

// ListElem returns the element type of a list, looking through masks.
func ListElem(t Type) (Type, bool) {
	switch t := t.(type) {
	case *List:
		return t.Elem, true
	case *Masked:
		return ListElem(t.Elem)
	}
	return nil, false
}

// TupleElems returns the slots of a tuple, looking through masks.
func TupleElems(t Type) ([]Type, bool) {
	switch t := t.(type) {
	case *Tuple:
		return t.Elems, true
	case *Masked:
		return TupleElems(t.Elem)
	}
	return nil, false
}

// Masked is a view over Elem whose type variables are substituted by Mask
// each time it is rendered. Elem is never modified.
type Masked struct {
	Elem Type
	Mask Mask
}

// Mask substitutes type variables. A uniform mask replaces every variable
// with the same text, a ranked mask replaces a variable with n quotes by the
// value at index n.
type Mask struct {
	values []string
	ranked bool
}

// Uniform returns a mask replacing every type variable with value.
func Uniform(value string) Mask {
	return Mask{values: []string{value}}
}

// Ranked returns a mask replacing a variable with n quotes by values[n]:
// 'a takes values[1], ''a takes values[2] and so on. values[0] is never
// substituted.
func Ranked(values ...string) Mask {
	return Mask{values: values, ranked: true}
}

var varPattern = regexp.MustCompile(`'+a`)

// NewMasked returns elem viewed through mask.
func NewMasked(elem Type, mask Mask) *Masked {
	return &Masked{Elem: elem, Mask: mask}
}

func (m *Masked) String() string {
	return varPattern.ReplaceAllStringFunc(m.Elem.String(), m.Mask.substitute)
}

func (m Mask) substitute(match string) string {
	if !m.ranked {
		if len(m.values) == 0 {
			return match
		}
		return m.values[0]
	}
	rank := strings.Count(match, "'")
	if rank >= len(m.values) {
		return match
	}
	return m.values[rank]
}

func (m Mask) String() string {
	if !m.ranked {
		return strings.Join(m.values, "")
	}
	return fmt.Sprintf("[%s]", strings.Join(m.values, ", "))
}
