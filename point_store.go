package kdtree

import "gonum.org/v1/gonum/mat"

// PointStore is the immutable d×n matrix of point coordinates a Tree is
// built over. Storage is column-major: a point's d coordinates are
// contiguous. A PointStore is never copied or mutated by a built Tree;
// the tree only ever reorders an index permutation over it.
type PointStore[T Float] struct {
	data []T
	dims int
	n    int
}

// NewPointStore wraps flat, column-major coordinate data: point p's
// coordinates occupy data[p*dims : p*dims+dims]. The slice is retained,
// not copied.
func NewPointStore[T Float](data []T, dims, n int) (*PointStore[T], error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) != dims*n {
		return nil, ErrDimensionMismatch
	}
	return &PointStore[T]{data: data, dims: dims, n: n}, nil
}

// FromRows builds a PointStore from one row per point, mirroring this
// project's existing [][]float64 data convention. Every row must have the
// same length.
func FromRows[T Float](points [][]T) (*PointStore[T], error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	dims := len(points[0])
	flat := make([]T, 0, dims*len(points))
	for _, p := range points {
		if len(p) != dims {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, p...)
	}
	return NewPointStore(flat, dims, len(points))
}

// FromDense builds a PointStore[float64] from a gonum dense matrix with
// d rows (dimensions) and n columns (points).
func FromDense(m *mat.Dense) (*PointStore[float64], error) {
	dims, n := m.Dims()
	if n == 0 {
		return nil, ErrEmptyInput
	}
	flat := make([]float64, dims*n)
	for p := 0; p < n; p++ {
		mat.Col(flat[p*dims:(p+1)*dims], p, m)
	}
	return NewPointStore(flat, dims, n)
}

// Dense converts a float64 PointStore back into a gonum dense matrix with
// dimensions as rows and points as columns.
func Dense(s *PointStore[float64]) *mat.Dense {
	m := mat.NewDense(s.dims, s.n, nil)
	for p := 0; p < s.n; p++ {
		m.SetCol(p, s.Point(p))
	}
	return m
}

// Dims returns the point dimensionality d.
func (s *PointStore[T]) Dims() int { return s.dims }

// Len returns the number of points n.
func (s *PointStore[T]) Len() int { return s.n }

// At returns the coordinate of point p along dimension dim.
func (s *PointStore[T]) At(dim, p int) T { return s.data[p*s.dims+dim] }

// Point returns the contiguous coordinate slice for point p. The
// returned slice aliases the store's backing array and must not be
// mutated.
func (s *PointStore[T]) Point(p int) []T { return s.data[p*s.dims : p*s.dims+s.dims] }
