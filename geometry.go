package linezone

// Point represents an x,y pixel coordinate within a video frame
type Point struct {
	X, Y float32
}

// Pt is a shorthand constructor for a Point
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Vector represents an oriented line segment running from a start point to
// an end point.  The orientation determines which side of the line is
// considered "in" versus "out"
type Vector struct {
	Start Point
	End   Point
}

// NewVector creates a new Vector with the given start and end points
func NewVector(start, end Point) Vector {
	return Vector{Start: start, End: end}
}

// Cross returns the 2D cross product of the vectors direction and the
// vector running from its start point to p
func (v Vector) Cross(p Point) float32 {
	return (v.End.X-v.Start.X)*(p.Y-v.Start.Y) -
		(v.End.Y-v.Start.Y)*(p.X-v.Start.X)
}

// IsIn performs a half plane test reporting which side of the oriented line
// the point p lies on.  A point exactly on the line resolves to false so
// the test is total and deterministic
func (v Vector) IsIn(p Point) bool {
	return v.Cross(p) > 0
}

// IsZero reports whether the vector is degenerate, ie: its start and end
// points are equal.  The half plane test is undefined for such a vector
func (v Vector) IsZero() bool {
	return v.Start == v.End
}

// WithinBounds reports whether point p falls inside the segments bounding
// extent expanded by margin pixels in all directions.  The half plane test
// is defined over the infinite line, so this pre filter is needed to reject
// detections nowhere near the drawn segment
func (v Vector) WithinBounds(p Point, margin float32) bool {

	xWithin := min(v.Start.X, v.End.X)-margin <= p.X &&
		p.X <= max(v.Start.X, v.End.X)+margin

	yWithin := min(v.Start.Y, v.End.Y)-margin <= p.Y &&
		p.Y <= max(v.Start.Y, v.End.Y)+margin

	return xWithin && yWithin
}
