package pyname

import (
	"os"
	gopath "path"
	"strings"
)

// ModuleExt is the file extension of a Python module file.
const ModuleExt = ".py"

// ToDotted converts a UNIX path of a Python module file to a Python-style
// dotted name.
//
// Example:
//
//	/usr/lib/python/unit-test.py   =>  .usr.lib.python.unit_test
//	relative/path/to/this_modue.py =>  relative.path.to.this_modue
//
// A leading '~' expands to the home directory and the path is cleaned.
// Symlinks are not resolved and relative paths are not made absolute, so an
// absolute path keeps its leading dot in the result. Every hyphen becomes
// an underscore. Returns a *NameFormatError when the path does not end in
// ModuleExt or when the stripped path still contains '.' or ':'.
func ToDotted(path string) (string, error) {
	p := gopath.Clean(expandUser(path))
	ext := gopath.Ext(p)
	if ext != ModuleExt {
		return "", &NameFormatError{Path: path, Reason: ErrNotModuleFile}
	}
	stem := strings.TrimSuffix(p, ext)
	if stem == "" || strings.HasSuffix(stem, "/") {
		// the whole basename was ".py": a hidden file, not an extension
		return "", &NameFormatError{Path: path, Reason: ErrNotModuleFile}
	}
	stem = strings.ReplaceAll(stem, "-", "_")
	if strings.ContainsAny(stem, ".:") {
		return "", &NameFormatError{Path: path, Reason: ErrNameChars}
	}
	return strings.ReplaceAll(stem, "/", "."), nil
}

// IsModuleFile reports whether path names a Python module file.
func IsModuleFile(path string) bool {
	return strings.HasSuffix(path, ModuleExt) && path != ModuleExt
}

// expandUser expands a leading "~" or "~/" to the home directory. The
// "~user" form is left untouched.
func expandUser(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return gopath.Join(home, p[2:])
}
