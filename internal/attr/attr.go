// Package attr provides member access over arbitrary values. The name
// service depends on this capability, not on reflection mechanics: a value
// may implement the interfaces below itself, otherwise exported struct
// fields and methods are reached via reflection.
package attr

import "reflect"

// Named is implemented by values that expose their own identifier. Values
// that do not implement it may instead expose an exported Name string field.
type Named interface {
	ObjectName() string
}

// Getter is implemented by values that handle member lookup themselves.
type Getter interface {
	Attr(name string) (any, bool)
}

// Lister is implemented by values that enumerate their own members.
type Lister interface {
	Attrs() []Member
}

// Member is a named member of a value.
type Member struct {
	Name  string
	Value any
}

// OwnName resolves a value's own identifier: the Named interface first,
// then an exported Name string field.
func OwnName(v any) (string, bool) {
	if n, ok := v.(Named); ok {
		return n.ObjectName(), true
	}
	sv := structOf(v)
	if !sv.IsValid() {
		return "", false
	}
	f := sv.FieldByName("Name")
	if f.IsValid() && f.Kind() == reflect.String && f.CanInterface() {
		return f.String(), true
	}
	return "", false
}

// Lookup returns the named member of v: a Getter's member, an exported
// method bound to v, or an exported struct field. The value is captured at
// call time.
func Lookup(v any, name string) (any, bool) {
	if g, ok := v.(Getter); ok {
		return g.Attr(name)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	if sv := structOf(v); sv.IsValid() {
		if f := sv.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface(), true
		}
	}
	return nil, false
}

// Members enumerates the reachable members of v: a Lister's own members, or
// exported struct fields followed by exported methods. Unexported members
// are skipped.
func Members(v any) []Member {
	if l, ok := v.(Lister); ok {
		return l.Attrs()
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	var out []Member
	if sv := structOf(v); sv.IsValid() {
		t := sv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out = append(out, Member{Name: f.Name, Value: sv.Field(i).Interface()})
		}
	}
	t := rv.Type()
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		out = append(out, Member{Name: m.Name, Value: rv.Method(i).Interface()})
	}
	return out
}

// structOf unwraps pointers down to a struct value, or returns the zero
// Value when v is not a struct.
func structOf(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return rv
}
