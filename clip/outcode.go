package clip

import "strings"

// Outcode is a bitmask naming the sides of a window a point lies beyond. The
// window divides the plane into nine regions:
//
//	1001 | 1000 | 1010
//	-----|------|-----
//	0001 | 0000 | 0010
//	-----|------|-----
//	0101 | 0100 | 0110
//
// At most one X bit and one Y bit can be set at once, so two bits only show
// up for corner regions.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// ComputeOutcode determines the region in which a point lies. A point
// exactly on a window edge counts as inside on that axis, so boundary points
// come back Inside.
func ComputeOutcode(p Point, w Window) Outcode {
	var oc Outcode
	if p.X < w.XMin {
		oc |= Left
	} else if p.X > w.XMax {
		oc |= Right
	}
	if p.Y < w.YMin {
		oc |= Bottom
	} else if p.Y > w.YMax {
		oc |= Top
	}
	return oc
}

// Outside reports whether any bit is set.
func (oc Outcode) Outside() bool {
	return oc != Inside
}

func (oc Outcode) String() string {
	if oc == Inside {
		return "inside"
	}
	var b strings.Builder
	if oc&Top != 0 {
		b.WriteByte('T')
	}
	if oc&Bottom != 0 {
		b.WriteByte('B')
	}
	if oc&Left != 0 {
		b.WriteByte('L')
	}
	if oc&Right != 0 {
		b.WriteByte('R')
	}
	return b.String()
}
