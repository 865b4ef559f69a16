// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvsort/core"
)

// ExampleSorter shows how a kernel reports through Stats and hooks.
func ExampleSorter() {
	var st core.Stats
	data := []int{2, 1}
	s := core.NewSorter(data, core.Ascending[int], core.Resolve(
		core.WithStats(&st),
		core.WithOnSwap(func(i, j int) { fmt.Printf("swap %d<->%d\n", i, j) }),
	))

	if s.Less(1, 0) {
		s.Swap(0, 1)
	}
	s.Pass()

	fmt.Println(data)
	fmt.Println(st)
	// Output:
	// swap 0<->1
	// [1 2]
	// comparisons=1 swaps=1 writes=0 passes=1 depth=0 fallbacks=0
}
