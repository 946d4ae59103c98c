package kdtree

import "testing"

func TestHyperRectangle_Split(t *testing.T) {
	r := HyperRectangle[float64]{Mins: []float64{0, 0}, Maxes: []float64{10, 10}}
	left, right := r.Split(0, 4)

	if left.Maxes[0] != 4 || left.Mins[0] != 0 || left.Mins[1] != 0 || left.Maxes[1] != 10 {
		t.Errorf("left = %+v, want maxes[0]=4 with other bounds unchanged", left)
	}
	if right.Mins[0] != 4 || right.Maxes[0] != 10 || right.Mins[1] != 0 || right.Maxes[1] != 10 {
		t.Errorf("right = %+v, want mins[0]=4 with other bounds unchanged", right)
	}
}

func TestHyperRectangle_MinMaxSqDist_PointInside(t *testing.T) {
	r := HyperRectangle[float64]{Mins: []float64{0, 0}, Maxes: []float64{2, 2}}
	lo, hi := r.MinMaxSqDist([]float64{1, 1})
	if lo != 0 {
		t.Errorf("lo = %v, want 0 (query is inside the box)", lo)
	}
	// Farthest corner from (1,1) in [0,2]x[0,2] is at distance² = 1+1 = 2.
	if hi != 2 {
		t.Errorf("hi = %v, want 2", hi)
	}
}

func TestHyperRectangle_MinMaxSqDist_PointOutside(t *testing.T) {
	r := HyperRectangle[float64]{Mins: []float64{0, 0}, Maxes: []float64{2, 2}}
	lo, hi := r.MinMaxSqDist([]float64{5, 0})
	// Closest point in the box to (5,0) is (2,0): distance² = 9.
	if lo != 9 {
		t.Errorf("lo = %v, want 9", lo)
	}
	// Farthest corner is (0,2): distance² = 25+4 = 29.
	if hi != 29 {
		t.Errorf("hi = %v, want 29", hi)
	}
}

func TestBoundingBox(t *testing.T) {
	store, err := FromRows([][]float64{{1, 5}, {-2, 3}, {4, -1}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	idx := []int{0, 1, 2}
	box := boundingBox(store, idx)
	if box.Mins[0] != -2 || box.Maxes[0] != 4 || box.Mins[1] != -1 || box.Maxes[1] != 5 {
		t.Errorf("boundingBox = %+v, want mins=[-2 -1] maxes=[4 5]", box)
	}
}
