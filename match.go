package pyname

import (
	"strings"

	"github.com/gobwas/glob"
)

// GlobMatch reports whether needle matches haystack exactly or matches a
// dot-bounded suffix of it. haystack is a literal dotted name; needle may
// use shell-glob wildcards ('*', '?', '[...]'). Wildcards are not
// dot-restricted: '*' in needle can match across dot boundaries. The full
// needle syntax is the gobwas/glob superset of shell globs, which also
// gives '{a,b}' alternation and '\\' escapes special meaning. An
// uncompilable needle matches nothing.
//
// For example, for (haystack, needle):
//
//	("foo.bar.Case1", "Case1")     => true
//	("foo.bar.Case1", "bar.Case1") => true
//	("foo.bar.Case1", "foo.Case1") => false
//	("foo.bar.Case1", "Case2")     => false
//	("foo.bar.Case100", "Case10")  => false
func GlobMatch(haystack, needle string) bool {
	g, err := glob.Compile(needle)
	if err != nil {
		return false
	}
	if g.Match(haystack) {
		return true
	}
	rest := haystack
	for {
		i := strings.IndexByte(rest, '.')
		if i < 0 {
			return false
		}
		rest = rest[i+1:]
		if g.Match(rest) {
			return true
		}
	}
}

// Match matches the binding's full name against a glob pattern.
func (n *Name) Match(pattern string) (bool, error) {
	full, err := n.FullName()
	if err != nil {
		return false, err
	}
	return GlobMatch(full, pattern), nil
}
