package linezone

import "testing"

// TestTrail tests trail history length bounding and identity handling
func TestTrail(t *testing.T) {

	trail := NewTrail(3, AnchorBottomCenter)

	// identity-less objects are ignored
	trail.Add(objAt(0, 50, 100))

	if pts := trail.Points(0); pts != nil {
		t.Errorf("expected no history for identity-less object, got %v", pts)
	}

	// history is capped at the configured size keeping the most recent
	// points
	for i := 0; i < 5; i++ {
		trail.Add(objAt(1, float32(10*i), 100))
	}

	pts := trail.Points(1)

	if len(pts) != 3 {
		t.Fatalf("expected history capped at 3 points, got %d", len(pts))
	}

	if pts[0].X != 20 || pts[2].X != 40 {
		t.Errorf("expected oldest points dropped, got first=%f last=%f",
			pts[0].X, pts[2].X)
	}

	trail.Reset()

	if pts := trail.Points(1); pts != nil {
		t.Errorf("expected history cleared after reset, got %v", pts)
	}
}
