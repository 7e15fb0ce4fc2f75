package lint

import (
	"fmt"
	"io"
	"strings"

	"github.com/obentoo/renovatelint/internal/common/output"
	"github.com/obentoo/renovatelint/internal/renovate"
)

// Message returns the warning line for a duplicate group found in path
func (g DuplicateGroup) Message(path string) string {
	return fmt.Sprintf("WARNING: Duplicate/overlapping packageRules in %s for matchManagers=%s and matchPackageNames=%s at indices %s",
		path, formatList(g.Key.Managers), formatList(g.Key.PackageNames), formatIndices(g.Indices))
}

// Message returns the warning line for an overlapping pair
func (o Overlap) Message() string {
	return fmt.Sprintf("WARNING: Overlapping matchPackageNames in rules %d and %d for matchManagers=%s: %s",
		o.First, o.Second, formatSet(o.Managers), formatSet(o.PackageNames))
}

// ProblemMessage returns the warning line for a malformed entry
func ProblemMessage(path string, p renovate.Problem) string {
	if p.Index < 0 {
		return fmt.Sprintf("WARNING: Ignoring packageRules in %s: %s", path, p.Message)
	}
	verb := "Malformed"
	if p.Skipped {
		verb = "Skipped"
	}
	return fmt.Sprintf("WARNING: %s packageRules[%d] in %s: %s", verb, p.Index, path, p.Message)
}

// WriteWarnings prints one line per finding: shape problems first, then
// duplicate groups, then overlapping pairs.
func WriteWarnings(w io.Writer, r *Result) {
	for _, p := range r.Problems {
		output.Warning.Fprintln(w, ProblemMessage(r.Path, p))
	}
	for _, g := range r.Duplicates {
		output.Warning.Fprintln(w, g.Message(r.Path))
	}
	for _, o := range r.Overlaps {
		output.Warning.Fprintln(w, o.Message())
	}
}

func formatList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

func formatSet(values []string) string {
	return "{" + strings.Join(values, ", ") + "}"
}

func formatIndices(indices []int) string {
	return "[" + joinIndices(indices) + "]"
}
