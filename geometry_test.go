package linezone

import (
	"testing"
)

// TestVectorCross tests the half plane side test against known points
func TestVectorCross(t *testing.T) {

	// vertical line pointing down the frame
	v := NewVector(Pt(100, 0), Pt(100, 200))

	tests := []struct {
		name  string
		point Point
		isIn  bool
	}{
		{"left of line", Pt(50, 100), true},
		{"right of line", Pt(150, 100), false},
		{"exactly on line", Pt(100, 100), false},
		{"on line extension", Pt(100, 500), false},
		{"left above segment", Pt(50, -50), true},
	}

	for _, tc := range tests {
		if got := v.IsIn(tc.point); got != tc.isIn {
			t.Errorf("%s: expected IsIn=%v, got %v", tc.name, tc.isIn, got)
		}
	}

	// reversing the orientation flips every side
	rev := NewVector(Pt(100, 200), Pt(100, 0))

	if rev.IsIn(Pt(50, 100)) {
		t.Errorf("expected reversed line to flip side of left point")
	}

	if !rev.IsIn(Pt(150, 100)) {
		t.Errorf("expected reversed line to flip side of right point")
	}
}

// TestVectorWithinBounds tests the margin expanded extent pre filter
func TestVectorWithinBounds(t *testing.T) {

	v := NewVector(Pt(100, 0), Pt(100, 200))

	tests := []struct {
		name   string
		point  Point
		margin float32
		within bool
	}{
		{"on segment", Pt(100, 100), 0, true},
		{"inside margin x", Pt(110, 100), 20, true},
		{"outside margin x", Pt(130, 100), 20, false},
		{"edge of margin x", Pt(120, 100), 20, true},
		{"inside margin y", Pt(100, 215), 20, true},
		{"outside margin y", Pt(100, 230), 20, false},
		{"far from segment", Pt(500, 500), 20, false},
	}

	for _, tc := range tests {
		if got := v.WithinBounds(tc.point, tc.margin); got != tc.within {
			t.Errorf("%s: expected within=%v, got %v", tc.name, tc.within, got)
		}
	}
}

// TestVectorIsZero tests degenerate vector detection
func TestVectorIsZero(t *testing.T) {

	if !NewVector(Pt(5, 5), Pt(5, 5)).IsZero() {
		t.Errorf("expected equal endpoints to be zero vector")
	}

	if NewVector(Pt(5, 5), Pt(5, 6)).IsZero() {
		t.Errorf("expected distinct endpoints to be non zero vector")
	}
}
