// SPDX-License-Identifier: MIT

// Package catalog is the registry of every algorithm in the suite.
//
// Each Algorithm entry records its family, stability, whether it sorts in
// place, its extra space and average time, any input precondition, a
// demonstration input and an adapter that sorts a []int. The adapter never
// mutates its argument, whatever the underlying algorithm does, so callers
// (the sortlab CLI, property tests) can treat every entry alike.
//
// Lookup resolves a user-supplied target the way a launcher would:
//
//  1. a 1-based index into All();
//  2. an exact name, case-insensitive, with an optional "sort" suffix
//     ("Bubble", "bubble-sort" and "bubble sort" all name bubble);
//  3. a substring that matches exactly one name.
//
// A substring matching several names yields ErrAmbiguous listing the
// candidates; anything else yields ErrNotFound.
//
// The registry is built once and is read-only; All returns a fresh copy.
package catalog
