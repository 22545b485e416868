package symbol

import (
	"github.com/benbjohnson/immutable"
	"github.com/mlsp/mlsp/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// Registry maps identifier names to their most recently declared type.
//
// The underlying map is persistent, so Clone is O(1) and registrations on a
// clone are never visible to the original.
type Registry struct {
	m *immutable.SortedMap
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: emptyMap}
}

// Register inserts or overwrites the type of name.
func (r *Registry) Register(name string, t types.Type) {
	r.m = r.m.Set(name, t)
}

// Declare registers id under its name. The last declaration wins, including
// declarations without any type which hide earlier ones.
func (r *Registry) Declare(ids ...Identifier) {
	for _, id := range ids {
		r.Register(id.Name, id.Type())
	}
}

// Lookup returns the type registered for name.
func (r *Registry) Lookup(name string) (types.Type, bool) {
	v, ok := r.m.Get(name)
	if !ok {
		return nil, false
	}
	t, ok := v.(types.Type)
	return t, ok && t != nil
}

// Clone returns a registry that starts with r's entries.
func (r *Registry) Clone() *Registry {
	return &Registry{m: r.m}
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return r.m.Len()
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.m.Len())
	itr := r.m.Iterator()
	for !itr.Done() {
		k, _ := itr.Next()
		names = append(names, k.(string))
	}
	return names
}
