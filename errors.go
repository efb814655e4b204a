package pyname

import (
	"errors"
	"fmt"
)

var (
	ErrNotModuleFile = errors.New("pyname: not a recognized module file")
	ErrNameChars     = errors.New("pyname: invalid characters in derived name")
	ErrNoObjectName  = errors.New("pyname: object has no name")
)

// NameFormatError reports a path that cannot be converted to a dotted name.
// It unwraps to one of the sentinel errors above.
type NameFormatError struct {
	Path   string
	Reason error
}

func (e *NameFormatError) Error() string {
	return fmt.Sprintf("%v: %q", e.Reason, e.Path)
}

func (e *NameFormatError) Unwrap() error { return e.Reason }
