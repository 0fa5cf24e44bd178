package clip

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into a clip window and input segments.
// This is not a full (or even correct) svg parser. It takes the single rect
// element as the window and every line element as a segment. If anything
// goes wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (Window, []LineSegment) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// The window is the one and only rect
	rects := rootEl.FindAll("rect")
	if len(rects) != 1 {
		log.Fatalf("Fixture %q must have exactly one rect, found %d", name, len(rects))
	}
	x := attrFloat(name, rects[0], "x")
	y := attrFloat(name, rects[0], "y")
	w := attrFloat(name, rects[0], "width")
	h := attrFloat(name, rects[0], "height")
	window := NewWindow(x, x+w, y, y+h)

	lineEls := rootEl.FindAll("line")
	if len(lineEls) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}
	lines := make([]LineSegment, 0, len(lineEls))
	for _, el := range lineEls {
		lines = append(lines, LineSegment{
			P1: Point{X: attrFloat(name, el, "x1"), Y: attrFloat(name, el, "y1")},
			P2: Point{X: attrFloat(name, el, "x2"), Y: attrFloat(name, el, "y2")},
		})
	}
	return window, lines
}

func attrFloat(fixtureName string, el *svgparser.Element, attr string) float64 {
	raw, ok := el.Attributes[attr]
	if !ok {
		log.Fatalf("Fixture %q: element missing attribute %q", fixtureName, attr)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Fixture %q: invalid %s value %q: %v", fixtureName, attr, raw, err)
	}
	return v
}
