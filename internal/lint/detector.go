// Package lint detects redundant Renovate packageRules.
//
// Two independent passes run over the decoded rules:
//
//   - FindDuplicates groups rules whose sorted, de-duplicated matchManagers and
//     matchPackageNames are identical.
//   - FindOverlaps compares every pair of rules and reports those with equal
//     matchManagers sets whose matchPackageNames sets intersect.
//
// A single pair of rules can show up in both passes. Findings are warnings
// and never make a check fail.
package lint

import (
	"strconv"
	"strings"

	"github.com/obentoo/renovatelint/internal/common/logger"
	"github.com/obentoo/renovatelint/internal/renovate"
)

// Key is the normalized form of a rule used for exact-duplicate grouping
type Key struct {
	Managers     []string
	PackageNames []string
}

// NormalizeKey sorts and de-duplicates both match lists of a rule
func NormalizeKey(rule renovate.Rule) Key {
	return Key{
		Managers:     sortedUnique(rule.MatchManagers),
		PackageNames: sortedUnique(rule.MatchPackageNames),
	}
}

// id encodes the key as an unambiguous map key
func (k Key) id() string {
	var b strings.Builder
	for _, m := range k.Managers {
		b.WriteString(strconv.Quote(m))
	}
	b.WriteByte('|')
	for _, p := range k.PackageNames {
		b.WriteString(strconv.Quote(p))
	}
	return b.String()
}

// DuplicateGroup lists rules that share the same normalized key
type DuplicateGroup struct {
	Key     Key
	Indices []int
}

// Overlap reports two rules with identical manager sets and intersecting
// package name sets.
type Overlap struct {
	First  int
	Second int
	// Managers is the shared manager set, sorted
	Managers []string
	// PackageNames is the intersection of both package name sets, sorted
	PackageNames []string
}

// FindDuplicates groups rules by normalized key and returns every group with
// more than one member. Groups are ordered by the first occurrence of their
// key and indices keep the order in which they were seen.
func FindDuplicates(rules []renovate.Rule) []DuplicateGroup {
	var groups []*DuplicateGroup
	byKey := make(map[string]*DuplicateGroup)

	for _, rule := range rules {
		key := NormalizeKey(rule)
		id := key.id()
		group, ok := byKey[id]
		if !ok {
			group = &DuplicateGroup{Key: key}
			byKey[id] = group
			groups = append(groups, group)
		}
		group.Indices = append(group.Indices, rule.Index)
	}

	var result []DuplicateGroup
	for _, g := range groups {
		if len(g.Indices) > 1 {
			result = append(result, *g)
		}
	}
	return result
}

// FindOverlaps checks every unordered pair of rules once, in ascending
// (i, j) order.
func FindOverlaps(rules []renovate.Rule) []Overlap {
	managers := make([]stringSet, len(rules))
	packages := make([]stringSet, len(rules))
	for i, rule := range rules {
		managers[i] = newStringSet(rule.MatchManagers)
		packages[i] = newStringSet(rule.MatchPackageNames)
	}

	var result []Overlap
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if !managers[i].equal(managers[j]) {
				continue
			}
			common := packages[i].intersect(packages[j])
			if len(common) == 0 {
				continue
			}
			result = append(result, Overlap{
				First:        rules[i].Index,
				Second:       rules[j].Index,
				Managers:     managers[i].sorted(),
				PackageNames: common.sorted(),
			})
		}
	}
	return result
}

// Options selects which passes Check runs
type Options struct {
	Duplicates bool
	Overlaps   bool
}

// DefaultOptions enables both passes
func DefaultOptions() Options {
	return Options{Duplicates: true, Overlaps: true}
}

// Result holds everything found in one document
type Result struct {
	Path       string
	RuleCount  int
	Problems   []renovate.Problem
	Duplicates []DuplicateGroup
	Overlaps   []Overlap
}

// WarningCount returns the number of warning lines the result produces
func (r *Result) WarningCount() int {
	return len(r.Problems) + len(r.Duplicates) + len(r.Overlaps)
}

// Check runs the enabled passes over a decoded document
func Check(doc *renovate.Document, opts Options) *Result {
	result := &Result{
		Path:      doc.Path,
		RuleCount: len(doc.Rules),
		Problems:  doc.Problems,
	}
	logger.Debug("Checking %d packageRules in %s", result.RuleCount, doc.Path)

	if opts.Duplicates {
		result.Duplicates = FindDuplicates(doc.Rules)
		if len(result.Duplicates) == 0 {
			logger.Debug("No exact duplicate packageRules found")
		} else {
			logger.Debug("Found %d duplicate group(s)", len(result.Duplicates))
		}
	}

	if opts.Overlaps {
		result.Overlaps = FindOverlaps(doc.Rules)
		if len(result.Overlaps) == 0 {
			logger.Debug("No overlapping packageRules found")
		} else {
			logger.Debug("Found %d overlapping pair(s)", len(result.Overlaps))
		}
	}

	return result
}
