package lineclipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestClipLine(t *testing.T) {
	line, ok := ClipLine(
		LineSegment{P1: Point{X: 0, Y: 0}, P2: Point{X: 10, Y: 10}},
		Window{XMin: 1, XMax: 9, YMin: 1, YMax: 9},
	)
	assert.True(t, ok)
	assert.Equal(t, LineSegment{P1: Point{X: 1, Y: 1}, P2: Point{X: 9, Y: 9}}, line)
}

func TestClipLineRejected(t *testing.T) {
	_, ok := ClipLine(
		LineSegment{P1: Point{X: -5, Y: 5}, P2: Point{X: -1, Y: 5}},
		Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10},
	)
	assert.False(t, ok)
}
