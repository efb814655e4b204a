package pyname

import "reflect"

type setKey struct {
	prefix string
	typ    reflect.Type
	id     any
}

// Set is an unordered collection of bindings, deduplicated by prefix and
// bound-object identity.
type Set struct {
	members map[setKey]*Name
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[setKey]*Name)}
}

func (s *Set) add(n *Name) {
	s.members[keyOf(n)] = n
}

// Len returns the number of distinct bindings.
func (s *Set) Len() int { return len(s.members) }

// Contains reports whether the set holds a binding with the same prefix and
// the same bound object.
func (s *Set) Contains(n *Name) bool {
	_, ok := s.members[keyOf(n)]
	return ok
}

// Names returns the bindings in unspecified order.
func (s *Set) Names() []*Name {
	out := make([]*Name, 0, len(s.members))
	for _, n := range s.members {
		out = append(out, n)
	}
	return out
}

// keyOf folds a binding to a comparable key. Pointer-shaped kinds carry a
// real identity and dedupe by pointer; everything else falls back to the
// binding instance itself, so two distinct members that merely hold equal
// values stay distinct bindings.
func keyOf(n *Name) setKey {
	k := setKey{prefix: n.prefix}
	rv := reflect.ValueOf(n.obj)
	if !rv.IsValid() {
		return k
	}
	k.typ = rv.Type()
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		k.id = rv.Pointer()
	default:
		k.id = n
	}
	return k
}
