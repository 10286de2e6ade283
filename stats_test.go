package linezone

import (
	"math"
	"testing"
)

// TestFlowStats tests crossing rate aggregation from a known crossing
// sequence
func TestFlowStats(t *testing.T) {

	start, end := testLine()
	zone, err := NewLineZone(start, end, testParams(60, 0))

	if err != nil {
		t.Fatalf("error creating zone: %v", err)
	}

	stats := NewFlowStats(30)

	// identity 1 crosses out at frame 3, in at frame 6, out at frame 9
	xPositions := []float32{90, 90, 110, 110, 110, 90, 90, 90, 110}

	for _, x := range xPositions {
		zone.Trigger([]Object{objAt(1, x, 100)})
		stats.Observe(zone)
	}

	in := stats.In()
	out := stats.Out()

	if in.Count != 1 || out.Count != 2 {
		t.Errorf("expected counts in=1 out=2, got in=%d out=%d",
			in.Count, out.Count)
	}

	// out crossings at frames 3 and 9 give a single gap of 6 frames
	if math.Abs(out.MeanGap-6) > 1e-9 {
		t.Errorf("expected out mean gap 6, got %f", out.MeanGap)
	}

	// 6 frame gaps at 30FPS is 300 crossings per minute
	if math.Abs(out.PerMinute-300) > 1e-9 {
		t.Errorf("expected out rate 300/min, got %f", out.PerMinute)
	}

	// a single crossing has no gaps so no rate
	if in.MeanGap != 0 || in.PerMinute != 0 {
		t.Errorf("expected no in rate from single crossing, got gap=%f rate=%f",
			in.MeanGap, in.PerMinute)
	}

	stats.Reset()

	if stats.In().Count != 0 || stats.Out().Count != 0 {
		t.Errorf("expected stats cleared after reset")
	}
}

// TestFlowStatsSameFrame tests multiple identities crossing on the same
// frame recording zero length gaps
func TestFlowStatsSameFrame(t *testing.T) {

	start, end := testLine()
	zone, err := NewLineZone(start, end, testParams(60, 10))

	if err != nil {
		t.Fatalf("error creating zone: %v", err)
	}

	stats := NewFlowStats(30)

	zone.Trigger([]Object{objAt(1, 90, 100), objAt(2, 90, 120)})
	stats.Observe(zone)

	// both identities cross out on the same frame
	zone.Trigger([]Object{objAt(1, 110, 100), objAt(2, 110, 120)})
	stats.Observe(zone)

	out := stats.Out()

	if out.Count != 2 {
		t.Errorf("expected 2 out crossings, got %d", out.Count)
	}

	if out.MeanGap != 0 {
		t.Errorf("expected zero mean gap for same frame crossings, got %f",
			out.MeanGap)
	}
}
