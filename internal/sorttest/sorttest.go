// SPDX-License-Identifier: MIT

// Package sorttest holds the property checks shared by the algorithm tests:
// sortedness, permutation preservation and stability, plus a fixed corpus of
// edge-case inputs.
package sorttest

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/dataset"
)

// Record is a keyed value whose Tag remembers the input position, so a test
// can tell equal keys apart after sorting.
type Record struct {
	Key int
	Tag int
}

// String renders a record as key/tag.
func (r Record) String() string {
	return fmt.Sprintf("%d/%d", r.Key, r.Tag)
}

// ByKey orders records by Key only.
func ByKey(a, b Record) bool {
	return a.Key < b.Key
}

// KeyOf projects a record on its key.
func KeyOf(r Record) int {
	return r.Key
}

// Tagged wraps keys into records tagged with their index.
func Tagged(keys []int) []Record {
	out := make([]Record, len(keys))
	for i, k := range keys {
		out[i] = Record{Key: k, Tag: i}
	}

	return out
}

// Case is a named input.
type Case struct {
	Name string
	In   []int
}

// Cases returns the shared corpus of non-negative inputs: the degenerate
// lengths, the classic shapes and a few duplicate-heavy vectors. Every call
// returns fresh slices.
func Cases() []Case {
	cases := []Case{
		{"empty", []int{}},
		{"single", []int{5}},
		{"pair sorted", []int{1, 2}},
		{"pair reversed", []int{2, 1}},
		{"bubble vector", []int{64, 34, 25, 12, 22, 11, 90}},
		{"counting vector", []int{4, 2, 2, 8, 3, 3, 1}},
		{"radix vector", []int{170, 45, 75, 90, 802, 24, 2, 66}},
		{"zeros", []int{0, 0, 0}},
	}
	for _, shape := range dataset.Shapes() {
		for _, n := range []int{17, 128} {
			cases = append(cases, Case{
				Name: fmt.Sprintf("%s/%d", shape, n),
				In:   dataset.MustBuild(shape, n, dataset.WithSeed(int64(n)), dataset.WithMaxValue(200)),
			})
		}
	}

	return cases
}

// PowerOfTwoCases keeps the cases whose length is 0, 1 or a power of two.
func PowerOfTwoCases() []Case {
	var out []Case
	for _, c := range Cases() {
		if n := len(c.In); n&(n-1) == 0 {
			out = append(out, c)
		}
	}
	out = append(out,
		Case{"bitonic vector", []int{3, 7, 4, 8, 6, 2, 1, 5}},
		Case{"random/64", dataset.MustBuild(dataset.Random, 64, dataset.WithSeed(64))},
	)

	return out
}

// Signed returns inputs mixing negative and positive values, for the
// comparison sorts.
func Signed() []Case {
	return []Case{
		{"negatives", []int{-3, 7, 0, -11, 5, -3, 2}},
		{"all negative", []int{-1, -5, -2, -8}},
	}
}

// CheckSorted fails t unless got is the ascending rearrangement of in.
// in is not modified.
func CheckSorted[T constraints.Ordered](t testing.TB, in, got []T) {
	t.Helper()
	want := slices.Clone(in)
	slices.Sort(want)
	if want == nil {
		want = []T{}
	}
	if got == nil {
		got = []T{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted output mismatch (-want +got):\n%s", diff)
	}
}

// CheckStable fails t unless got is sorted by key and records with equal keys
// keep increasing tags.
func CheckStable(t testing.TB, got []Record) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Key < prev.Key {
			t.Errorf("not sorted at %d: %v before %v", i, prev, cur)

			return
		}
		if cur.Key == prev.Key && cur.Tag < prev.Tag {
			t.Errorf("unstable at %d: %v before %v", i, prev, cur)

			return
		}
	}
}

// StabilityInput returns records with many duplicate keys in scrambled order.
func StabilityInput(n int) []Record {
	keys := dataset.MustBuild(dataset.FewUnique, n, dataset.WithSeed(11), dataset.WithDistinct(5), dataset.WithMaxValue(50))

	return Tagged(keys)
}
