// Package kdtree implements a static, balanced k-dimensional tree over a
// fixed set of points in low-dimensional Euclidean space.
//
// The tree is built once from a d×n point set and supports two read-only
// queries: k-nearest-neighbour (Knn) and radius/ball queries (Ball). Nodes
// are packed into an implicit, heap-indexed array rather than allocated as
// pointer-linked structs, so a built tree is a small handful of flat
// slices; the only per-node allocations are the bounds of each node's
// bounding rectangle.
//
// Basic usage:
//
//	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
//	tree, err := kdtree.Build(points, 1)
//	idx, dist, err := tree.Knn([]float64{0.9, 0.9}, 2)
//	hits, err := tree.Ball([]float64{0.5, 0.5}, 1.0)
//
// The element type is a generic parameter constrained to float32 or
// float64 (see Float). A tree is immutable once built and its queries may
// be called concurrently from multiple goroutines without synchronization.
//
// # Scope
//
// This package builds a static index over a known point set: there is no
// incremental insertion or deletion, no on-disk serialization, no
// approximate search, and no pluggable distance metric — only squared
// Euclidean distance, which is what makes the split-hyperplane and
// hyper-rectangle pruning in Knn and Ball correct. Callers needing any of
// that belong to a different kind of index.
package kdtree
