// Package pyname manages Python-style dotted names for objects: converting
// module file paths to dotted names, matching names against glob patterns,
// and deriving sub-names from an object's members.
package pyname

import (
	"fmt"
	"strings"

	"github.com/qzmfranklin/pyname/internal/attr"
)

// Named is implemented by objects that expose their own identifier. Objects
// that do not implement it may instead expose an exported Name string field.
type Named = attr.Named

// Name binds a dotted-name prefix to an object. It is immutable after
// construction and safe for concurrent use.
type Name struct {
	prefix string
	obj    any
}

// New creates a binding of prefix to obj. Trailing dots in prefix are
// trimmed. obj must expose its own identifier (see Named); this is not
// checked until FullName is read.
func New(prefix string, obj any) *Name {
	return &Name{prefix: strings.TrimRight(prefix, "."), obj: obj}
}

// Prefix returns the dotted-name prefix.
func (n *Name) Prefix() string { return n.prefix }

// Object returns the bound object.
func (n *Name) Object() any { return n.obj }

// FullName returns the full dotted name of the bound object. With an empty
// prefix the object's own identifier is returned as-is, with no leading
// dot. Returns ErrNoObjectName when the object exposes no identifier.
func (n *Name) FullName() (string, error) {
	own, ok := attr.OwnName(n.obj)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrNoObjectName, n.obj)
	}
	if n.prefix == "" {
		return own, nil
	}
	return n.prefix + "." + own, nil
}
