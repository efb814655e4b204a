package pyname

import (
	"github.com/gobwas/glob"

	"github.com/qzmfranklin/pyname/internal/attr"
)

// Sub derives a binding for a named member of the bound object. The member
// value is captured at call time; later mutation of the parent object does
// not propagate. Returns (nil, nil) when the object has no such member;
// absence is not an error.
func (n *Name) Sub(attribute string) (*Name, error) {
	full, err := n.FullName()
	if err != nil {
		return nil, err
	}
	v, ok := attr.Lookup(n.obj, attribute)
	if !ok {
		return nil, nil
	}
	return New(full, v), nil
}

// SubGlob derives bindings for every member of the bound object whose bare
// name matches pattern. Member names contain no dots, so pattern is a plain
// glob here, not the suffix-aware GlobMatch. Every binding in the result
// has the parent's full name as its prefix.
func (n *Name) SubGlob(pattern string) (*Set, error) {
	full, err := n.FullName()
	if err != nil {
		return nil, err
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	out := NewSet()
	for _, m := range attr.Members(n.obj) {
		if g.Match(m.Name) {
			out.add(New(full, m.Value))
		}
	}
	return out, nil
}
