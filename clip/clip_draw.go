package clip

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/joshka/line-clipping/internal/dbg"
)

// Padding around the scene so segments straying outside the window stay visible
const drawPadding = 100

// DrawClips renders the clip window, the input segments, and their clipped
// portions, saves the result as a PNG, and prints it to the terminal (iTerm
// only). The window is filled blue, input segments are yellow, and the
// surviving portions are drawn over them in cyan with named endpoints.
//
// This is a debugging aid; it re-clips the segments itself.
func DrawClips(window Window, lines []LineSegment, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extend(Point{X: window.XMin, Y: window.YMin})
	extend(Point{X: window.XMax, Y: window.YMax})
	for _, line := range lines {
		extend(line.P1)
		extend(line.P2)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// The window
	c.DrawRectangle(window.XMin, window.YMin, window.XMax-window.XMin, window.YMax-window.YMin)
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 0)
	c.Stroke()

	// Input segments first, clipped portions over them
	c.SetLineWidth(2)
	for _, line := range lines {
		c.MoveTo(line.P1.X, line.P1.Y)
		c.LineTo(line.P2.X, line.P2.Y)
	}
	c.SetRGB(1, 1, 0)
	c.Stroke()

	c.SetLineWidth(3)
	for _, line := range lines {
		clipped, ok := ClipLine(line, window)
		if !ok {
			continue
		}
		c.MoveTo(clipped.P1.X, clipped.P1.Y)
		c.LineTo(clipped.P2.X, clipped.P2.Y)
		c.SetRGB(0, 1, 1)
		c.Stroke()
		c.SetRGB(1, 1, 1)
		labelPoint(c, clipped.P1)
		labelPoint(c, clipped.P2)
	}

	// Save to temp file
	c.SavePNG("/tmp/clip.png")
	// Print to terminal
	imgcat.CatFile("/tmp/clip.png", os.Stdout)
}

// Label a point with its readable name. Text has to be drawn back at
// identity, since the scene transform is flipped and scaled.
func labelPoint(c *gg.Context, p Point) {
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.DrawStringAnchored(dbg.Name(p), x, y-6, 0.5, 0)
	c.Pop()
}
