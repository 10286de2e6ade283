package linezone

import (
	"fmt"

	clipper "github.com/ctessum/go.clipper"
)

// PolygonZone counts tracked objects currently inside a polygon region of
// the frame.  Unlike LineZone it has no directional state, per frame it
// reports how many identities have their anchor inside the region and
// keeps a cumulative set of identities ever seen inside.  Use one instance
// per region and call Trigger once per video frame
type PolygonZone struct {
	// name identifies the zone in overlays and metrics
	name string
	// polygon is the region as configured
	polygon []Point
	// bounds is the margin expanded polygon the inside test runs against
	bounds []Point
	// anchor is the bounding box anchor policy
	anchor AnchorPolicy
	// frameIndex is the number of Trigger calls processed
	frameIndex int
	// current is the occupancy of the most recent frame
	current int
	// seen is the set of identities ever observed inside the region
	seen map[int64]bool
}

// NewPolygonZone creates an occupancy counter for the region enclosed by
// the given polygon points.  The margin parameter expands the polygon
// outward by that many pixels.  It returns an error if fewer than three
// points are given or the parameters are invalid
func NewPolygonZone(points []Point, params ZoneParams) (*PolygonZone, error) {

	if len(points) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 points, got %d",
			len(points))
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	bounds := points

	if params.Margin > 0 {
		var err error
		bounds, err = offsetPolygon(points, float64(params.Margin))

		if err != nil {
			return nil, fmt.Errorf("error expanding polygon by margin: %w", err)
		}
	}

	return &PolygonZone{
		polygon: points,
		bounds:  bounds,
		anchor:  params.Anchor,
		seen:    make(map[int64]bool),
	}, nil
}

// offsetPolygon expands the polygon outward by the given number of pixels
func offsetPolygon(points []Point, distance float64) ([]Point, error) {

	// convert the polygon points to a Clipper Path
	var path clipper.Path

	for _, pt := range points {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(pt.X),
			Y: clipper.CInt(pt.Y),
		})
	}

	// create a ClipperOffset object and add the path
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtMiter, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(distance)

	if len(solution) == 0 || len(solution[0]) < 3 {
		return nil, fmt.Errorf("offset produced no polygon")
	}

	// convert the solution back to points
	var expanded []Point

	for _, pt := range solution[0] {
		expanded = append(expanded, Point{
			X: float32(pt.X),
			Y: float32(pt.Y),
		})
	}

	return expanded, nil
}

// containsPoint performs an even-odd ray casting test of point p against
// the polygon
func containsPoint(polygon []Point, p Point) bool {

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {

		pi := polygon[i]
		pj := polygon[j]

		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}

		j = i
	}

	return inside
}

// Trigger processes one video frames tracked detections and updates the
// regions occupancy.  Detections without a tracker identity are skipped
func (z *PolygonZone) Trigger(objects []Object) {

	z.frameIndex++
	z.current = 0

	for _, obj := range objects {

		if !obj.HasTrack() {
			continue
		}

		anchor := obj.Box.Anchor(z.anchor)

		if !containsPoint(z.bounds, anchor) {
			continue
		}

		z.current++
		z.seen[obj.TrackID] = true
	}
}

// Reset clears the occupancy state and frame index
func (z *PolygonZone) Reset() {
	z.frameIndex = 0
	z.current = 0
	z.seen = make(map[int64]bool)
}

// SetName sets the zone name used in overlays and metrics
func (z *PolygonZone) SetName(name string) {
	z.name = name
}

// Name returns the zone name
func (z *PolygonZone) Name() string {
	return z.name
}

// CurrentCount returns the occupancy observed on the most recent frame
func (z *PolygonZone) CurrentCount() int {
	return z.current
}

// SeenCount returns the cumulative number of unique identities ever
// observed inside the region
func (z *PolygonZone) SeenCount() int {
	return len(z.seen)
}

// Polygon returns the region points as configured
func (z *PolygonZone) Polygon() []Point {
	return z.polygon
}

// FrameIndex returns the number of frames processed so far
func (z *PolygonZone) FrameIndex() int {
	return z.frameIndex
}
