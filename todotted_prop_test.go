package pyname

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestToDottedProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("conversion is deterministic", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				segments = []string{"mod"}
			}
			path := strings.Join(segments, "/") + ModuleExt
			first, err1 := ToDotted(path)
			second, err2 := ToDotted(path)
			if err1 != nil || err2 != nil {
				return false
			}
			return first == second
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("output has no separators or hyphens", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				segments = []string{"mod"}
			}
			for i, s := range segments {
				segments[i] = s + "-" + s
			}
			path := strings.Join(segments, "/") + ModuleExt
			out, err := ToDotted(path)
			if err != nil {
				return false
			}
			return !strings.ContainsAny(out, "/-")
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("one output segment per path segment", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				segments = []string{"mod"}
			}
			path := strings.Join(segments, "/") + ModuleExt
			out, err := ToDotted(path)
			if err != nil {
				return false
			}
			return strings.Count(out, ".") == len(segments)-1
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("non-module extension always fails", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				segments = []string{"mod"}
			}
			path := strings.Join(segments, "/") + ".txt"
			_, err := ToDotted(path)
			return err != nil
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
