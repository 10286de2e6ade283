package linezone

import "testing"

// TestBoxAnchor tests anchor point calculation for both policies
func TestBoxAnchor(t *testing.T) {

	box := NewBox(40, 100, 60, 140)

	center := box.Anchor(AnchorCenter)

	if center.X != 50 || center.Y != 120 {
		t.Errorf("expected center anchor (50,120), got (%f,%f)",
			center.X, center.Y)
	}

	bottom := box.Anchor(AnchorBottomCenter)

	if bottom.X != 50 || bottom.Y != 140 {
		t.Errorf("expected bottom center anchor (50,140), got (%f,%f)",
			bottom.X, bottom.Y)
	}
}

// TestAnchorPolicyFromString tests config string mapping with unknown
// values defaulting to bottom center
func TestAnchorPolicyFromString(t *testing.T) {

	tests := []struct {
		in   string
		want AnchorPolicy
	}{
		{"center", AnchorCenter},
		{"bottom_center", AnchorBottomCenter},
		{"", AnchorBottomCenter},
		{"unknown", AnchorBottomCenter},
	}

	for _, tc := range tests {
		if got := AnchorPolicyFromString(tc.in); got != tc.want {
			t.Errorf("policy %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

// TestObjectHasTrack tests identity presence detection
func TestObjectHasTrack(t *testing.T) {

	obj := NewObject(NewBox(0, 0, 10, 10), 0, 0.9, 0)

	if obj.HasTrack() {
		t.Errorf("expected object with zero track ID to have no track")
	}

	obj.TrackID = 7

	if !obj.HasTrack() {
		t.Errorf("expected object with track ID 7 to have a track")
	}
}
