package linezone

import "sync"

// Trail keeps a bounded history of anchor points per tracker identity, used
// for drawing motion trails behind tracked objects
type Trail struct {
	// size is the maximum number of most recent points to keep per identity
	size int
	// anchor is the bounding box anchor policy used for trail points
	anchor AnchorPolicy
	// history of anchor points per tracker identity
	history map[int64][]Point
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size is the maximum
// number of most recent points kept per identity and specifies the length
// of trail to maintain
func NewTrail(size int, anchor AnchorPolicy) *Trail {
	return &Trail{
		size:    size,
		anchor:  anchor,
		history: make(map[int64][]Point),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[int64][]Point)
}

// Add appends the objects anchor point to its identitys history.  Objects
// without a tracker identity are ignored
func (t *Trail) Add(obj Object) {
	t.Lock()
	defer t.Unlock()

	if !obj.HasTrack() {
		return
	}

	points := append(t.history[obj.TrackID], obj.Box.Anchor(t.anchor))

	// check if history is exceeded and drop oldest point
	if len(points) > t.size {
		points = points[1:]
	}

	t.history[obj.TrackID] = points
}

// Points gets the point history for a specific tracker identity
func (t *Trail) Points(id int64) []Point {
	t.Lock()
	defer t.Unlock()

	return t.history[id]
}
