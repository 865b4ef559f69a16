// SPDX-License-Identifier: MIT

package divide_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/dataset"
	"github.com/katalvlaran/lvsort/divide"
)

const benchN = 10000

func benchmarkInput() []int {
	return dataset.MustBuild(dataset.Random, benchN, dataset.WithSeed(42), dataset.WithMaxValue(1<<30))
}

func BenchmarkMerge(b *testing.B) {
	src := benchmarkInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = divide.Merge(src)
	}
}

func BenchmarkQuick(b *testing.B) {
	src := benchmarkInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = divide.Quick(src)
	}
}

func BenchmarkQuickInPlace(b *testing.B) {
	src := benchmarkInput()
	buf := make([]int, len(src))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		divide.QuickInPlace(buf)
	}
}

func BenchmarkQuickIterative(b *testing.B) {
	src := benchmarkInput()
	buf := make([]int, len(src))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		divide.QuickIterative(buf)
	}
}

func BenchmarkBlock(b *testing.B) {
	src := benchmarkInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = divide.Block(src)
	}
}
