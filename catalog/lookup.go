// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsort/core"
)

var (
	// ErrNotFound indicates that no algorithm matches a lookup target.
	ErrNotFound = errors.New("catalog: algorithm not found")

	// ErrAmbiguous indicates that a substring matches several algorithms.
	ErrAmbiguous = errors.New("catalog: ambiguous algorithm name")
)

// maxCandidates bounds the candidate list carried by ErrAmbiguous.
const maxCandidates = 25

// All returns every registered algorithm in registry order: family order,
// then name. The result and its Demo slices are copies.
func All() []Algorithm {
	return lo.Map(registry, func(a Algorithm, _ int) Algorithm {
		a.Demo = core.Clone(a.Demo)
		return a
	})
}

// Names returns the names of All, in order.
func Names() []string {
	return lo.Map(registry, func(a Algorithm, _ int) string { return a.Name })
}

// Families returns the families that have at least one algorithm, in
// registry order.
func Families() []Family {
	return lo.Uniq(lo.Map(registry, func(a Algorithm, _ int) Family { return a.Family }))
}

// ByFamily returns the algorithms of family f, in registry order.
func ByFamily(f Family) []Algorithm {
	return lo.Filter(All(), func(a Algorithm, _ int) bool { return a.Family == f })
}

// Lookup resolves target to an algorithm: a 1-based index into All, then an
// exact name, then a unique substring of a name. Name matching ignores case,
// surrounding space and a trailing "sort" word ("Bubble-Sort" finds bubble).
//
// Errors: ErrNotFound; ErrAmbiguous wrapping the candidate names.
func Lookup(target string) (Algorithm, error) {
	all := All()
	raw := strings.TrimSpace(target)
	if idx, err := strconv.Atoi(raw); err == nil && idx >= 1 && idx <= len(all) {
		return all[idx-1], nil
	}

	needle := normalize(raw)
	if needle == "" {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	if a, ok := lo.Find(all, func(a Algorithm) bool { return a.Name == needle }); ok {
		return a, nil
	}

	matches := lo.Filter(all, func(a Algorithm, _ int) bool { return strings.Contains(a.Name, needle) })
	switch len(matches) {
	case 0:
		return Algorithm{}, fmt.Errorf("%w: %q (use an index, a name or a unique substring)", ErrNotFound, target)
	case 1:
		return matches[0], nil
	default:
		names := lo.Map(matches, func(a Algorithm, _ int) string { return a.Name })
		more := ""
		if len(names) > maxCandidates {
			more = fmt.Sprintf(" and %d more", len(names)-maxCandidates)
			names = names[:maxCandidates]
		}

		return Algorithm{}, fmt.Errorf("%w: %q matches %s%s", ErrAmbiguous, target, strings.Join(names, ", "), more)
	}
}

// MustLookup is Lookup for names known at compile time; it panics on error.
func MustLookup(target string) Algorithm {
	a, err := Lookup(target)
	if err != nil {
		panic(err)
	}

	return a
}

// normalize lower-cases a name, maps spaces and underscores to dashes and
// drops a trailing "sort" word and file extension.
func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, ".go")
	n = strings.TrimSuffix(n, ".py")
	n = strings.NewReplacer(" ", "-", "_", "-").Replace(n)
	n = strings.TrimSuffix(n, "-sort")

	return n
}
