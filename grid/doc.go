// Package grid describes the geometry of a square n×n lattice of sites
// addressed by 1-based (row, col) pairs, plus two virtual sites that stand
// for "above the top row" and "below the bottom row".
//
// What:
//
//   - Lattice maps (row, col) ∈ [1,n]² to a row-major linear index
//     (row-1)*n + (col-1) and back.
//   - Indices n² (Top) and n²+1 (Bottom) are reserved for the virtual sites,
//     so every per-site array sized Size() = n²+2 can hold them.
//   - Neighbors yields the 4-neighborhood (up, right, down, left) of a site,
//     substituting Top for the missing "up" on row 1 and Bottom for the
//     missing "down" on row n. Missing left/right neighbors are None.
//
// Why:
//
//   - Connectivity engines (union-find, BFS) work on flat integer indices;
//     this package is the single place that knows how a square grid folds
//     into that index space.
//
// Complexity:
//
//   - Every method is O(1) time and allocation-free.
//
// Errors:
//
//   - ErrInvalidSide: New was called with a non-positive side length.
package grid
