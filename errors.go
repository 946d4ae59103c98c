package kdtree

import "errors"

// Sentinel errors returned at the public API boundary. Internal routines
// assume their inputs have already been validated against these.
var (
	// ErrEmptyInput is returned by Build when the point set has zero points.
	ErrEmptyInput = errors.New("kdtree: point set must be non-empty")

	// ErrInvalidLeafSize is returned by Build when leafSize is not a
	// positive integer.
	ErrInvalidLeafSize = errors.New("kdtree: leaf size must be a positive integer")

	// ErrDimensionMismatch is returned by Knn and Ball when the query
	// vector's length does not match the tree's dimensionality.
	ErrDimensionMismatch = errors.New("kdtree: query dimension does not match tree dimension")

	// ErrInvalidK is returned by Knn when k is outside [1, n].
	ErrInvalidK = errors.New("kdtree: k must satisfy 1 <= k <= n")

	// ErrInvalidRadius is returned by Ball when radius is negative.
	ErrInvalidRadius = errors.New("kdtree: radius must be >= 0")
)
