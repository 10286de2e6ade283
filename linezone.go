package linezone

import (
	"container/heap"
	"fmt"
)

const (
	// DefaultMargin is the pixel tolerance added around the lines bounding
	// extent when pre filtering detections
	DefaultMargin = 20
	// DefaultGracePeriod is the number of frames an already counted
	// identity must be unseen before it becomes eligible to count again
	DefaultGracePeriod = 60
	// DefaultMaxIdleFrames is the number of frames an identity can go
	// unseen before its crossing record is evicted
	DefaultMaxIdleFrames = 900
)

// Direction identifies which of the two crossing directions a count
// belongs to
type Direction int

const (
	// DirectionIn is a crossing onto the "in" side of the line
	DirectionIn Direction = iota
	// DirectionOut is a crossing onto the "out" side of the line
	DirectionOut
)

// String returns the direction name used for labels and metrics
func (d Direction) String() string {
	if d == DirectionIn {
		return "in"
	}

	return "out"
}

// ZoneParams defines the tuning parameters shared by the zone counters
type ZoneParams struct {
	// Anchor is the bounding box anchor policy used for side testing
	Anchor AnchorPolicy
	// Margin is the pixel tolerance added around the zones extent
	Margin float32
	// GracePeriod is the number of frames before an already counted
	// identity may be counted again
	GracePeriod int
	// MaxIdleFrames is the number of frames an unseen identity is retained
	// before eviction.  A value of zero selects DefaultMaxIdleFrames
	MaxIdleFrames int
}

// DefaultZoneParams returns the default zone parameters matching typical
// 30FPS street camera footage
func DefaultZoneParams() ZoneParams {
	return ZoneParams{
		Anchor:        AnchorBottomCenter,
		Margin:        DefaultMargin,
		GracePeriod:   DefaultGracePeriod,
		MaxIdleFrames: DefaultMaxIdleFrames,
	}
}

// validate checks the parameters are usable
func (p ZoneParams) validate() error {

	if p.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %f", p.Margin)
	}

	if p.GracePeriod < 0 {
		return fmt.Errorf("grace period must not be negative, got %d",
			p.GracePeriod)
	}

	if p.MaxIdleFrames < 0 {
		return fmt.Errorf("max idle frames must not be negative, got %d",
			p.MaxIdleFrames)
	}

	return nil
}

// trackRecord holds the crossing state of a single tracker identity
type trackRecord struct {
	// side is the last known side of the line
	side bool
	// counted flags that the identitys most recent crossing has already
	// been tallied
	counted bool
	// lastSeen is the frame index the identity was last processed at
	lastSeen int
}

// idleEntry is a record of when an identity was last seen, queued for
// eviction checks
type idleEntry struct {
	frame int
	id    int64
}

// idleQueue is a min-heap of idleEntry ordered by frame.  Entries are
// invalidated lazily, an identity seen again simply gets a fresh entry and
// stale ones are skipped when popped
type idleQueue []idleEntry

func (q idleQueue) Len() int            { return len(q) }
func (q idleQueue) Less(i, j int) bool  { return q[i].frame < q[j].frame }
func (q idleQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *idleQueue) Push(x interface{}) { *q = append(*q, x.(idleEntry)) }

func (q *idleQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// LineZone counts tracked objects crossing an oriented line.  Each tracker
// identity is attributed at most one count per crossing episode, rapid back
// and forth flicker near the line is suppressed until the grace period has
// elapsed.  A LineZone instance owns all of its state, use one instance per
// line and call Trigger once per video frame in frame order
type LineZone struct {
	// name identifies the zone in overlays and metrics
	name string
	// vector is the oriented counting line
	vector Vector
	// anchor is the bounding box anchor policy
	anchor AnchorPolicy
	// margin is the pixel tolerance around the lines bounding extent
	margin float32
	// gracePeriod is the anti flicker window in frames
	gracePeriod int
	// maxIdle is the eviction threshold in frames
	maxIdle int
	// frameIndex is the number of Trigger calls processed
	frameIndex int
	// inCount and outCount are the running crossing totals
	inCount  int
	outCount int
	// records maps tracker identity to its crossing state
	records map[int64]*trackRecord
	// idle orders identities by last seen frame for eviction
	idle idleQueue
}

// NewLineZone creates a counter for the oriented line running from start
// to end.  It returns an error if the line is degenerate or the parameters
// are invalid
func NewLineZone(start, end Point, params ZoneParams) (*LineZone, error) {

	vector := NewVector(start, end)

	if vector.IsZero() {
		return nil, fmt.Errorf("line start and end points must differ, "+
			"both are (%f,%f)", start.X, start.Y)
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	maxIdle := params.MaxIdleFrames

	if maxIdle == 0 {
		maxIdle = DefaultMaxIdleFrames
	}

	// an identity must survive at least the grace period, otherwise a
	// counted record could be evicted while still suppressing flicker
	if maxIdle <= params.GracePeriod {
		maxIdle = params.GracePeriod + 1
	}

	return &LineZone{
		vector:      vector,
		anchor:      params.Anchor,
		margin:      params.Margin,
		gracePeriod: params.GracePeriod,
		maxIdle:     maxIdle,
		records:     make(map[int64]*trackRecord),
	}, nil
}

// Trigger processes one video frames tracked detections and updates the
// crossing totals.  It must be called exactly once per frame in frame
// order.  Detections without a tracker identity and detections whose anchor
// falls outside the lines margin expanded extent are skipped
func (z *LineZone) Trigger(objects []Object) {

	z.frameIndex++
	z.evictIdle()

	for _, obj := range objects {

		if !obj.HasTrack() {
			continue
		}

		anchor := obj.Box.Anchor(z.anchor)

		if !z.vector.WithinBounds(anchor, z.margin) {
			continue
		}

		side := z.vector.IsIn(anchor)

		rec, exists := z.records[obj.TrackID]

		if !exists {
			// first sighting, record the side but never count as a
			// crossing requires a prior observed side
			z.records[obj.TrackID] = &trackRecord{
				side:     side,
				lastSeen: z.frameIndex,
			}
			heap.Push(&z.idle, idleEntry{frame: z.frameIndex, id: obj.TrackID})
			continue
		}

		if rec.side == side {
			// no side change
			z.touch(rec, obj.TrackID)
			continue
		}

		if rec.counted {
			if z.frameIndex-rec.lastSeen > z.gracePeriod {
				// unseen longer than the grace period, treat the gap as
				// a fresh crossing episode
				rec.counted = false
			} else {
				// flicker suppression, this identity already counted a
				// crossing recently
				z.touch(rec, obj.TrackID)
				continue
			}
		}

		rec.side = side
		rec.counted = true
		z.touch(rec, obj.TrackID)

		if side {
			z.inCount++
		} else {
			z.outCount++
		}
	}
}

// touch refreshes an identitys last seen frame and queues a new eviction
// check entry
func (z *LineZone) touch(rec *trackRecord, id int64) {
	rec.lastSeen = z.frameIndex
	heap.Push(&z.idle, idleEntry{frame: z.frameIndex, id: id})
}

// evictIdle drops records for identities unseen for longer than the max
// idle window, bounding memory on long running streams
func (z *LineZone) evictIdle() {

	cutoff := z.frameIndex - z.maxIdle

	for len(z.idle) > 0 && z.idle[0].frame < cutoff {

		e := heap.Pop(&z.idle).(idleEntry)

		rec, exists := z.records[e.id]

		if !exists {
			continue
		}

		// skip stale entries for identities seen again since this entry
		// was queued
		if rec.lastSeen > e.frame {
			continue
		}

		delete(z.records, e.id)
	}
}

// Reset clears the counters, crossing records and frame index
func (z *LineZone) Reset() {
	z.frameIndex = 0
	z.inCount = 0
	z.outCount = 0
	z.records = make(map[int64]*trackRecord)
	z.idle = z.idle[:0]
}

// SetName sets the zone name used in overlays and metrics
func (z *LineZone) SetName(name string) {
	z.name = name
}

// Name returns the zone name
func (z *LineZone) Name() string {
	return z.name
}

// InCount returns the number of crossings onto the "in" side of the line
func (z *LineZone) InCount() int {
	return z.inCount
}

// OutCount returns the number of crossings onto the "out" side of the line
func (z *LineZone) OutCount() int {
	return z.outCount
}

// Start returns the lines start point
func (z *LineZone) Start() Point {
	return z.vector.Start
}

// End returns the lines end point
func (z *LineZone) End() Point {
	return z.vector.End
}

// FrameIndex returns the number of frames processed so far
func (z *LineZone) FrameIndex() int {
	return z.frameIndex
}

// TrackedCount returns the number of identities with live crossing records
func (z *LineZone) TrackedCount() int {
	return len(z.records)
}

// TrackSide reports the last known side of the line for the given tracker
// identity.  The second return value is false if the identity has no live
// record
func (z *LineZone) TrackSide(id int64) (bool, bool) {

	rec, exists := z.records[id]

	if !exists {
		return false, false
	}

	return rec.side, true
}
