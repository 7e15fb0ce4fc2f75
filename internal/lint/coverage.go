package lint

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/obentoo/renovatelint/internal/common/output"
	"github.com/obentoo/renovatelint/internal/renovate"
)

// CoverageEntry lists the rules that mention one manager or package name
type CoverageEntry struct {
	Name    string
	Indices []int
}

// Multi reports whether more than one rule covers the entry
func (e CoverageEntry) Multi() bool {
	return len(e.Indices) > 1
}

// Coverage maps every manager and package name to the rules covering it.
// Entries keep the order in which names were first seen.
type Coverage struct {
	Managers     []CoverageEntry
	PackageNames []CoverageEntry
}

// BuildCoverage collects coverage for the given rules. A name repeated inside
// one rule counts once for that rule.
func BuildCoverage(rules []renovate.Rule) *Coverage {
	managers := newCoverageIndex()
	packages := newCoverageIndex()

	for _, rule := range rules {
		for _, m := range sortedUnique(rule.MatchManagers) {
			managers.add(m, rule.Index)
		}
		for _, p := range sortedUnique(rule.MatchPackageNames) {
			packages.add(p, rule.Index)
		}
	}

	return &Coverage{
		Managers:     managers.entries,
		PackageNames: packages.entries,
	}
}

type coverageIndex struct {
	entries  []CoverageEntry
	position map[string]int
}

func newCoverageIndex() *coverageIndex {
	return &coverageIndex{position: make(map[string]int)}
}

func (c *coverageIndex) add(name string, index int) {
	pos, ok := c.position[name]
	if !ok {
		pos = len(c.entries)
		c.position[name] = pos
		c.entries = append(c.entries, CoverageEntry{Name: name})
	}
	c.entries[pos].Indices = append(c.entries[pos].Indices, index)
}

// WriteCoverage prints the coverage report for path
func WriteCoverage(w io.Writer, path string, cov *Coverage) {
	fmt.Fprintln(w)
	output.Header.Fprintf(w, "Rule coverage for %s\n", path)
	output.Info.Fprintln(w, "Managers covered by rules:")
	writeCoverageEntries(w, cov.Managers)
	output.Info.Fprintln(w, "Package names covered by rules:")
	writeCoverageEntries(w, cov.PackageNames)
}

func writeCoverageEntries(w io.Writer, entries []CoverageEntry) {
	if len(entries) == 0 {
		output.Dim.Fprintln(w, "  (none)")
		return
	}

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	for _, e := range entries {
		label := output.FormatLabel(e.Multi())
		noun := "rules"
		if len(e.Indices) == 1 {
			noun = "rule"
		}
		fmt.Fprintf(w, "  %s %-*s (covered by %d %s): %s\n",
			label, width, e.Name, len(e.Indices), noun, joinIndices(e.Indices))
	}
}

func joinIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ", ")
}
