package clip

import "github.com/pkg/errors"

// Each pass clears the clipped endpoint's bit for the boundary it was
// clipped against, so four passes are enough for any segment. Going past
// twice that means the bit accounting is broken.
const maxClipPasses = 8

// ClipLine clips a line segment against a rectangular window using the
// Cohen-Sutherland algorithm. It returns the clipped segment and true when
// some portion of the segment lies inside the window (boundary included),
// or a zero segment and false when the segment lies entirely outside.
//
// When both endpoints are outside the window, P1 is clipped first. The
// choice only affects intermediate states, not the result, but keeping it
// fixed makes test fixtures reproducible.
//
// Reference: https://en.wikipedia.org/wiki/Cohen%E2%80%93Sutherland_algorithm
func ClipLine(line LineSegment, window Window) (LineSegment, bool) {
	p1, p2 := line.P1, line.P2
	oc1 := ComputeOutcode(p1, window)
	oc2 := ComputeOutcode(p2, window)

	for passes := 0; ; passes++ {
		if oc1|oc2 == Inside {
			// Both endpoints inside. If nothing was clipped, this is the
			// original segment, bit for bit.
			return LineSegment{P1: p1, P2: p2}, true
		}
		if oc1&oc2 != Inside {
			// Both endpoints beyond the same boundary, so the segment cannot
			// cross the window.
			return LineSegment{}, false
		}
		if passes == maxClipPasses {
			panic(errors.Errorf("clipping %v against %+v did not terminate", line, window))
		}
		if oc1.Outside() {
			p1 = intersectBoundary(p1, p2, oc1, window)
			oc1 = ComputeOutcode(p1, window)
		} else {
			p2 = intersectBoundary(p2, p1, oc2, window)
			oc2 = ComputeOutcode(p2, window)
		}
	}
}

// intersectBoundary returns the intersection of segment (p, q) with the
// first window boundary set in p's outcode, testing top, bottom, right,
// left in that order.
//
// The divisions cannot hit a zero delta: a boundary bit is only set while p
// is strictly beyond that boundary, and q is not beyond it (the caller has
// already ruled out trivial rejection), so the coordinate span between p and
// q on that axis is nonzero. A zero-length segment never gets here at all:
// its endpoints share an outcode, which trivially accepts or rejects.
func intersectBoundary(p, q Point, oc Outcode, window Window) Point {
	dx := q.X - p.X
	dy := q.Y - p.Y
	switch {
	case oc&Top != 0:
		return Point{X: p.X + dx*(window.YMax-p.Y)/dy, Y: window.YMax}
	case oc&Bottom != 0:
		return Point{X: p.X + dx*(window.YMin-p.Y)/dy, Y: window.YMin}
	case oc&Right != 0:
		return Point{X: window.XMax, Y: p.Y + dy*(window.XMax-p.X)/dx}
	case oc&Left != 0:
		return Point{X: window.XMin, Y: p.Y + dy*(window.XMin-p.X)/dx}
	}
	return p
}
