package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/joshka/line-clipping/clip"
)

// Demo of line clipping. The first line on stdin holds the clip window as
// "xmin xmax ymin ymax"; every following non-empty line holds a segment as
// "x1 y1 x2 y2". Each segment is clipped against the window and printed,
// then the whole scene is rendered to the terminal (iTerm only).
func main() {
	window, lines, err := readScene(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, line := range lines {
		clipped, ok := clip.ClipLine(line, window)
		if !ok {
			fmt.Printf("%v -> %v\n", line, aurora.Red("rejected"))
			continue
		}
		fmt.Printf("%v -> %v\n", line, aurora.Green(clipped.String()))
	}

	clip.DrawClips(window, lines, 20)
}

func readScene(in *os.File) (clip.Window, []clip.LineSegment, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return clip.Window{}, nil, errors.New("no window line on stdin")
	}
	window, err := parseWindow(scanner.Text())
	if err != nil {
		return clip.Window{}, nil, err
	}

	lines := []clip.LineSegment{}
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}
		line, err := parseSegment(text)
		if err != nil {
			return clip.Window{}, nil, err
		}
		lines = append(lines, line)
	}
	return window, lines, nil
}

func parseWindow(text string) (clip.Window, error) {
	vals, err := parseFloats(text, 4)
	if err != nil {
		return clip.Window{}, errors.Wrapf(err, "bad window %q", text)
	}
	return clip.NewWindow(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseSegment(text string) (clip.LineSegment, error) {
	vals, err := parseFloats(text, 4)
	if err != nil {
		return clip.LineSegment{}, errors.Wrapf(err, "bad segment %q", text)
	}
	p1 := clip.NewPoint(vals[0], vals[1])
	p2 := clip.NewPoint(vals[2], vals[3])
	return clip.NewLineSegment(p1, p2), nil
}

func parseFloats(text string, n int) ([]float64, error) {
	parts := strings.Fields(text)
	if len(parts) != n {
		return nil, errors.Errorf("want %d numbers, got %d", n, len(parts))
	}
	vals := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad number %q", part)
		}
		vals[i] = v
	}
	return vals, nil
}
