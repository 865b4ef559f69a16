// SPDX-License-Identifier: MIT

// Command sortlab lists, demonstrates and benchmarks the algorithms of the
// lvsort suite.
//
// Usage:
//
//	sortlab list [--family F] [--contains S] [--limit N]
//	sortlab run TARGET [--values 5,3,1] [--trace]
//	sortlab bench [--sizes 1000,10000] [--shape random] [--runs 3] [--seed 42]
//	              [--max-quadratic 5000] [--jobs 1] [--json]
//
// TARGET is a 1-based index from `list`, an algorithm name ("bubble",
// "Bubble Sort") or a unique substring of a name ("iter").
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("sortlab: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
