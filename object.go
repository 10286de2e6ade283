package linezone

// AnchorPolicy selects the representative point of a bounding box used for
// side and position testing against a zone
type AnchorPolicy int

const (
	// AnchorBottomCenter is the horizontal midpoint of the boxes bottom
	// edge, the default for street level camera views where objects
	// contact the ground
	AnchorBottomCenter AnchorPolicy = iota
	// AnchorCenter is the centroid of the bounding box
	AnchorCenter
)

// AnchorPolicyFromString maps the configuration strings "center" and
// "bottom_center" to an AnchorPolicy.  Unknown values default to
// bottom center
func AnchorPolicyFromString(s string) AnchorPolicy {
	if s == "center" {
		return AnchorCenter
	}

	return AnchorBottomCenter
}

// Box represents a detection bounding box in left, top, right, bottom
// pixel coordinates
type Box struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// NewBox creates a new Box with the given coordinates
func NewBox(left, top, right, bottom float32) Box {
	return Box{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// Anchor returns the boxes representative point per the given policy
func (b Box) Anchor(policy AnchorPolicy) Point {

	switch policy {
	case AnchorCenter:
		return Point{
			X: (b.Left + b.Right) / 2,
			Y: (b.Top + b.Bottom) / 2,
		}

	default:
		return Point{
			X: (b.Left + b.Right) / 2,
			Y: b.Bottom,
		}
	}
}

// Object represents a tracked detection reported for a single video frame
type Object struct {
	// Box is the bounding box of the detected object
	Box Box
	// Label is the class label of the object detected
	Label int
	// Prob is the confidence/probability of the object detected
	Prob float32
	// TrackID is the persistent identity assigned to the object by the
	// tracker.  Trackers assign IDs starting from 1, a value of zero or
	// below marks a new/unconfirmed detection carrying no identity yet
	TrackID int64
}

// NewObject is a constructor function for the Object struct
func NewObject(box Box, label int, prob float32, trackID int64) Object {
	return Object{
		Box:     box,
		Label:   label,
		Prob:    prob,
		TrackID: trackID,
	}
}

// HasTrack reports whether the object carries a tracker identity
func (o Object) HasTrack() bool {
	return o.TrackID > 0
}
