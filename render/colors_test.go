package render

import "testing"

// TestTrackColor tests the palette lookup is total over all identity
// values, including the zero and negative no-identity markers carried by
// replayed detections
func TestTrackColor(t *testing.T) {

	ids := []int64{-25, -1, 0, 1, 7, 19, 20, 1 << 40}

	for _, id := range ids {

		clr := TrackColor(id)

		if clr.A != 255 {
			t.Errorf("id %d: expected opaque palette color, got %+v", id, clr)
		}
	}

	// the same identity always maps to the same color
	if TrackColor(7) != TrackColor(7) {
		t.Errorf("expected stable color per identity")
	}

	// negative identities map into the palette, not out of it
	if TrackColor(-1) != TrackColor(-1+int64(len(trackColors))) {
		t.Errorf("expected negative identity to wrap into the palette")
	}
}
