// Package percolation is the root of a small toolkit for studying site
// percolation on square grids with union-find connectivity.
//
// What is inside?
//
//	unionfind/   — index-addressed disjoint set (union by size, path halving)
//	               with an optional skip predicate
//	grid/        — square lattice geometry: (row, col) ⇄ index, bounds,
//	               4-neighborhood with virtual top and bottom sites
//	percolation/ — the connectivity engine: Open, IsOpen, IsFull,
//	               NumberOfOpenSites, Percolates
//	stats/       — Monte Carlo threshold estimation with 95% confidence
//	               intervals
//	cmd/percolation — command-line front end (stats, interactive)
//
// Quick ASCII example (3×3, □ open, ■ blocked):
//
//	■ □ ■
//	■ □ □
//	□ □ ■
//
// The open sites form a path from row 1 to row 3, so the system percolates.
//
//	go get github.com/katalvlaran/percolation
package percolation
