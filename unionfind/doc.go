// Package unionfind provides a fixed-size, index-addressed disjoint-set
// (union-find) structure for dynamic connectivity queries.
//
// What
//
//   - Elements are the integers 0..n-1; there are no node objects.
//   - Find returns a canonical root for an element's set.
//   - Union merges two sets and reports whether anything changed.
//   - Connected, Count, SizeOf and Len answer the usual queries.
//   - WithSkip installs a predicate that vetoes individual unions, so two
//     structures that differ in a single rule can share one implementation.
//
// Why
//
//   - Incremental connectivity: grids that open cell by cell, Kruskal's MST,
//     clustering, equivalence classes.
//   - A skip predicate keeps "the same structure minus some edges" variants
//     (for example, a percolation grid that must not connect to its bottom
//     virtual site) free of duplicated union logic.
//
// Complexity
//
//   - New:      O(n) time and memory.
//   - Find:     O(α(n)) amortized (union by size + path halving).
//   - Union:    O(α(n)) amortized.
//   - Count/Len: O(1).
//
// Errors
//
//   - ErrInvalidSize: New was called with n ≤ 0.
//
// Indices outside [0, n) are a programming error and panic with the usual
// index-out-of-range runtime error, exactly like a slice access.
package unionfind
