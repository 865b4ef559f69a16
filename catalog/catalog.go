// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/distribution"
	"github.com/katalvlaran/lvsort/divide"
	"github.com/katalvlaran/lvsort/exchange"
	"github.com/katalvlaran/lvsort/heapsort"
	"github.com/katalvlaran/lvsort/hybrid"
	"github.com/katalvlaran/lvsort/network"
	"github.com/katalvlaran/lvsort/novelty"
	"github.com/katalvlaran/lvsort/treesort"
)

// Family groups algorithms by strategy.
type Family string

// Families in registry order.
const (
	Exchange     Family = "exchange"
	Divide       Family = "divide"
	Network      Family = "network"
	Heap         Family = "heap"
	Distribution Family = "distribution"
	Hybrid       Family = "hybrid"
	Tree         Family = "tree"
	Novelty      Family = "novelty"
)

// Precondition names the input domain restriction of an algorithm.
type Precondition string

// Preconditions.
const (
	None        Precondition = ""
	NonNegative Precondition = "non-negative"
	PowerOfTwo  Precondition = "power-of-two length"
)

// SortFunc sorts a copy of its input. Implementations must not modify in.
type SortFunc func(in []int, opts ...core.Option) ([]int, error)

// Algorithm describes one registered sort.
type Algorithm struct {
	Name         string
	Title        string
	Family       Family
	Stable       bool
	InPlace      bool
	Space        string
	Time         string
	Precondition Precondition

	// Quadratic marks algorithms whose typical cost is O(n²) or worse, so
	// benchmarks can cap their input size.
	Quadratic bool

	// Demo is the demonstration input shown by `sortlab run`.
	Demo []int

	sort SortFunc
}

// Sort returns a sorted copy of in. in is never modified.
func (a Algorithm) Sort(in []int, opts ...core.Option) ([]int, error) {
	return a.sort(in, opts...)
}

// pure adapts a copy-returning sort.
func pure(fn func([]int, ...core.Option) []int) SortFunc {
	return func(in []int, opts ...core.Option) ([]int, error) {
		return fn(in, opts...), nil
	}
}

// inPlace adapts a mutating sort by running it on a copy.
func inPlace(fn func([]int, ...core.Option)) SortFunc {
	return func(in []int, opts ...core.Option) ([]int, error) {
		out := core.Clone(in)
		fn(out, opts...)

		return out, nil
	}
}

// inPlaceErr adapts a mutating sort with a precondition.
func inPlaceErr(fn func([]int, ...core.Option) error) SortFunc {
	return func(in []int, opts ...core.Option) ([]int, error) {
		out := core.Clone(in)
		if err := fn(out, opts...); err != nil {
			return nil, err
		}

		return out, nil
	}
}

var (
	demoClassic = []int{64, 34, 25, 12, 22, 11, 90}
	demoNetwork = []int{3, 7, 4, 8, 6, 2, 1, 5}
	demoPi      = []int{3, 1, 4, 1, 5, 9, 2, 6}
)

// registry is in family order, then by name.
var registry = []Algorithm{
	{Name: "bubble", Title: "Bubble sort", Family: Exchange, Stable: true, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.BubbleInPlace[int])},
	{Name: "cocktail", Title: "Cocktail shaker sort", Family: Exchange, Stable: true, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.Cocktail[int])},
	{Name: "comb", Title: "Comb sort", Family: Exchange, Stable: false, InPlace: true, Space: "O(1)", Time: "O(n²/2^p)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.Comb[int])},
	{Name: "cycle", Title: "Cycle sort", Family: Exchange, Stable: false, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(func(s []int, opts ...core.Option) { exchange.Cycle(s, opts...) })},
	{Name: "gnome", Title: "Gnome sort", Family: Exchange, Stable: true, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.Gnome[int])},
	{Name: "insertion", Title: "Insertion sort", Family: Exchange, Stable: true, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.Insertion[int])},
	{Name: "odd-even", Title: "Odd-even (brick) sort", Family: Exchange, Stable: true, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.OddEven[int])},
	{Name: "selection", Title: "Selection sort", Family: Exchange, Stable: false, InPlace: true, Space: "O(1)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: inPlace(exchange.Selection[int])},
	{Name: "shell", Title: "Shell sort", Family: Exchange, Stable: false, InPlace: true, Space: "O(1)", Time: "O(n^1.5)", Quadratic: false, Demo: demoClassic, sort: inPlace(exchange.Shell[int])},

	{Name: "block", Title: "Block sort", Family: Divide, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n log n)", Demo: demoClassic, sort: pure(divide.Block[int])},
	{Name: "merge", Title: "Merge sort", Family: Divide, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n log n)", Demo: []int{38, 27, 43, 3, 9, 82, 10}, sort: pure(divide.Merge[int])},
	{Name: "quick", Title: "Quick sort (functional, three-way)", Family: Divide, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n log n)", Demo: demoClassic, sort: pure(divide.Quick[int])},
	{Name: "quick-in-place", Title: "Quick sort (Lomuto, recursive)", Family: Divide, Stable: false, InPlace: true, Space: "O(log n) stack", Time: "O(n log n)", Demo: demoClassic, sort: inPlace(divide.QuickInPlace[int])},
	{Name: "quick-iterative", Title: "Quick sort (Lomuto, explicit stack)", Family: Divide, Stable: false, InPlace: true, Space: "O(log n)", Time: "O(n log n)", Demo: demoClassic, sort: inPlace(divide.QuickIterative[int])},

	{Name: "bitonic", Title: "Bitonic sort", Family: Network, Stable: false, InPlace: true, Space: "O(log n) stack", Time: "O(n log² n)", Precondition: PowerOfTwo, Demo: demoNetwork, sort: inPlaceErr(network.Bitonic[int])},
	{Name: "odd-even-merge", Title: "Batcher odd-even merge sort", Family: Network, Stable: false, InPlace: true, Space: "O(log n) stack", Time: "O(n log² n)", Precondition: PowerOfTwo, Demo: demoNetwork, sort: inPlaceErr(network.OddEvenMerge[int])},

	{Name: "heap", Title: "Heap sort", Family: Heap, Stable: false, InPlace: true, Space: "O(1)", Time: "O(n log n)", Demo: demoClassic, sort: inPlace(heapsort.Heap[int])},

	{Name: "bead", Title: "Bead (gravity) sort", Family: Distribution, Stable: false, InPlace: false, Space: "O(n·max)", Time: "O(n·max)", Precondition: NonNegative, Demo: demoPi, sort: distribution.Bead[int]},
	{Name: "bucket", Title: "Bucket sort", Family: Distribution, Stable: true, InPlace: false, Space: "O(n+k)", Time: "O(n+k)", Demo: []int{42, 32, 33, 52, 37, 47, 51}, sort: distribution.Bucket[int]},
	{Name: "counting", Title: "Counting sort", Family: Distribution, Stable: true, InPlace: false, Space: "O(n+range)", Time: "O(n+range)", Precondition: NonNegative, Demo: []int{4, 2, 2, 8, 3, 3, 1}, sort: distribution.Counting[int]},
	{Name: "flash", Title: "Flash sort", Family: Distribution, Stable: false, InPlace: false, Space: "O(n)", Time: "O(n)", Precondition: NonNegative, Demo: demoClassic, sort: distribution.Flash[int]},
	{Name: "pigeonhole", Title: "Pigeonhole sort", Family: Distribution, Stable: true, InPlace: false, Space: "O(n+range)", Time: "O(n+range)", Precondition: NonNegative, Demo: []int{8, 3, 2, 7, 4, 6, 8}, sort: distribution.Pigeonhole[int]},
	{Name: "radix", Title: "Radix sort (LSD, base 10)", Family: Distribution, Stable: true, InPlace: false, Space: "O(n)", Time: "O(d·n)", Precondition: NonNegative, Demo: []int{170, 45, 75, 90, 802, 24, 2, 66}, sort: distribution.Radix[int]},

	{Name: "intro", Title: "Introsort", Family: Hybrid, Stable: false, InPlace: true, Space: "O(log n)", Time: "O(n log n)", Demo: demoClassic, sort: inPlace(hybrid.Intro[int])},
	{Name: "tim", Title: "Timsort (simplified)", Family: Hybrid, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n log n)", Demo: demoClassic, sort: pure(hybrid.Tim[int])},

	{Name: "tree", Title: "Tree sort", Family: Tree, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n log n)", Demo: demoClassic, sort: pure(treesort.Tree[int])},

	{Name: "sleep", Title: "Sleep sort (simulated clock)", Family: Novelty, Stable: true, InPlace: false, Space: "O(n+max)", Time: "O(n+max)", Precondition: NonNegative, Demo: demoPi, sort: novelty.Sleep[int]},
	{Name: "spaghetti", Title: "Spaghetti sort", Family: Novelty, Stable: true, InPlace: false, Space: "O(n)", Time: "O(n²)", Quadratic: true, Demo: demoClassic, sort: pure(novelty.Spaghetti[int])},
}
