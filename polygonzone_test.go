package linezone

import "testing"

// square returns a polygon covering x 0-100, y 0-100
func square() []Point {
	return []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
}

// TestContainsPoint tests the ray casting inside test
func TestContainsPoint(t *testing.T) {

	poly := square()

	tests := []struct {
		name   string
		point  Point
		inside bool
	}{
		{"center", Pt(50, 50), true},
		{"near edge inside", Pt(99, 50), true},
		{"outside right", Pt(150, 50), false},
		{"outside above", Pt(50, -10), false},
		{"far away", Pt(500, 500), false},
	}

	for _, tc := range tests {
		if got := containsPoint(poly, tc.point); got != tc.inside {
			t.Errorf("%s: expected inside=%v, got %v", tc.name, tc.inside, got)
		}
	}
}

// TestPolygonZoneOccupancy tests per frame occupancy counting and the
// cumulative identity set
func TestPolygonZoneOccupancy(t *testing.T) {

	params := ZoneParams{Anchor: AnchorCenter}

	zone, err := NewPolygonZone(square(), params)

	if err != nil {
		t.Fatalf("error creating zone: %v", err)
	}

	// identity 1 inside, identity 2 outside, one identity-less detection
	// inside
	zone.Trigger([]Object{
		NewObject(NewBox(40, 40, 60, 60), 0, 0.9, 1),
		NewObject(NewBox(140, 40, 160, 60), 0, 0.9, 2),
		NewObject(NewBox(40, 40, 60, 60), 0, 0.9, 0),
	})

	if zone.CurrentCount() != 1 {
		t.Errorf("expected occupancy 1, got %d", zone.CurrentCount())
	}

	// identity 2 moves inside, identity 1 leaves
	zone.Trigger([]Object{
		NewObject(NewBox(140, 240, 160, 260), 0, 0.9, 1),
		NewObject(NewBox(10, 10, 30, 30), 0, 0.9, 2),
	})

	if zone.CurrentCount() != 1 {
		t.Errorf("expected occupancy 1, got %d", zone.CurrentCount())
	}

	if zone.SeenCount() != 2 {
		t.Errorf("expected 2 unique identities seen, got %d", zone.SeenCount())
	}

	zone.Reset()

	if zone.CurrentCount() != 0 || zone.SeenCount() != 0 || zone.FrameIndex() != 0 {
		t.Errorf("expected state cleared after reset")
	}
}

// TestPolygonZoneMargin tests that the margin expands the region outward
func TestPolygonZoneMargin(t *testing.T) {

	params := ZoneParams{Anchor: AnchorCenter, Margin: 10}

	zone, err := NewPolygonZone(square(), params)

	if err != nil {
		t.Fatalf("error creating zone: %v", err)
	}

	// anchor (105,50) is outside the polygon but within the 10px margin
	zone.Trigger([]Object{NewObject(NewBox(95, 40, 115, 60), 0, 0.9, 1)})

	if zone.CurrentCount() != 1 {
		t.Errorf("expected detection within margin counted, got %d",
			zone.CurrentCount())
	}

	// anchor (125,50) is outside the margin
	zone.Trigger([]Object{NewObject(NewBox(115, 40, 135, 60), 0, 0.9, 1)})

	if zone.CurrentCount() != 0 {
		t.Errorf("expected detection outside margin ignored, got %d",
			zone.CurrentCount())
	}
}

// TestPolygonZoneValidation tests that invalid construction parameters are
// rejected
func TestPolygonZoneValidation(t *testing.T) {

	if _, err := NewPolygonZone([]Point{Pt(0, 0), Pt(10, 10)},
		DefaultZoneParams()); err == nil {
		t.Errorf("expected error for polygon with fewer than 3 points")
	}

	params := DefaultZoneParams()
	params.Margin = -5

	if _, err := NewPolygonZone(square(), params); err == nil {
		t.Errorf("expected error for negative margin")
	}
}
