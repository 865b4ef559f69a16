// SPDX-License-Identifier: MIT

package exchange_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/dataset"
	"github.com/katalvlaran/lvsort/exchange"
)

const benchN = 1000

func benchInPlace(b *testing.B, sort func([]int)) {
	src := dataset.MustBuild(dataset.Random, benchN, dataset.WithSeed(42))
	buf := make([]int, len(src))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sort(buf)
	}
}

func BenchmarkBubble(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.BubbleInPlace(s) })
}

func BenchmarkCocktail(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Cocktail(s) })
}

func BenchmarkComb(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Comb(s) })
}

func BenchmarkGnome(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Gnome(s) })
}

func BenchmarkOddEven(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.OddEven(s) })
}

func BenchmarkSelection(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Selection(s) })
}

func BenchmarkInsertion(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Insertion(s) })
}

func BenchmarkShell(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Shell(s) })
}

func BenchmarkCycle(b *testing.B) {
	benchInPlace(b, func(s []int) { exchange.Cycle(s) })
}
