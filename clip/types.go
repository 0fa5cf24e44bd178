package clip

import "fmt"

// A point in 2D space. Points are plain values; clipping never mutates its
// input, it returns fresh points instead. Equality is exact floating point
// equality.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A directed line segment. Endpoint order survives clipping: P1 of the
// clipped result lies on the P1 side of the input, so callers can rely on
// direction being retained.
type LineSegment struct {
	P1 Point
	P2 Point
}

func NewLineSegment(p1, p2 Point) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

func (l LineSegment) String() string {
	return fmt.Sprintf("%v-%v", l.P1, l.P2)
}

// Window is the axis-aligned rectangle segments are clipped against. The
// bounds are inclusive: a point exactly on an edge counts as inside.
//
// XMin <= XMax and YMin <= YMax is an unchecked precondition. The clipper
// does not validate it, and its behavior with inverted bounds is undefined.
type Window struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

func NewWindow(xMin, xMax, yMin, yMax float64) Window {
	return Window{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// Contains reports whether the point lies inside the window, boundary
// included.
func (w Window) Contains(p Point) bool {
	return ComputeOutcode(p, w) == Inside
}
