// A 2D line segment clipping package for Go.
//
// This package takes a line segment and an axis-aligned rectangular clip
// window, and computes the portion of the segment (if any) that lies inside
// the window, using the Cohen-Sutherland algorithm.
package lineclipping

import "github.com/joshka/line-clipping/clip"

type Point = clip.Point
type LineSegment = clip.LineSegment
type Window = clip.Window

// Clip a line segment against a rectangular window.
//
// Returns the clipped segment and true when some portion of the segment lies
// inside the window (boundary included). Returns false when the segment lies
// entirely outside; that is a normal outcome, not an error. Endpoint order is
// preserved: P1 of the result lies on the P1 side of the input.
func ClipLine(line LineSegment, window Window) (LineSegment, bool) {
	return clip.ClipLine(line, window)
}
