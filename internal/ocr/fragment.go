// Package ocr defines the recognized-text model consumed by the scan
// pipeline and the engine interface that produces it.
package ocr

import (
	"math"
	"strings"
)

// Fragment represents a single recognized span of text with its position
// and recognition confidence. Fragments are immutable inputs to the
// pipeline; they are produced by an Engine (or any external OCR source)
// and never modified after construction.
type Fragment struct {
	// Text is the recognized text content as reported by the engine
	Text string

	// Box is the position and size of the fragment in image space
	Box Box

	// Confidence is the recognition confidence in [0, 1]
	Confidence float64

	// Line is the line index within the source page, when known
	Line int

	// Paragraph is the paragraph index within the source page, when known
	Paragraph int

	// Language is the recognition language code, when known (e.g. "eng")
	Language string
}

// NormalizedText returns the fragment text trimmed with internal
// whitespace collapsed to single spaces. All pattern matching in the
// pipeline operates on this form.
func (f Fragment) NormalizedText() string {
	return strings.Join(strings.Fields(f.Text), " ")
}

// Box represents a rectangular bounding box in image space.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point is a coordinate in image space.
type Point struct {
	X float64
	Y float64
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Area returns the area of the box.
func (b Box) Area() float64 {
	return b.Width * b.Height
}

// Contains reports whether the point lies inside the box (edges inclusive).
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Intersects reports whether the two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.Width && o.X < b.X+b.Width &&
		b.Y < o.Y+o.Height && o.Y < b.Y+b.Height
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	x0 := math.Min(b.X, o.X)
	y0 := math.Min(b.Y, o.Y)
	x1 := math.Max(b.X+b.Width, o.X+o.Width)
	y1 := math.Max(b.Y+b.Height, o.Y+o.Height)
	return Box{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Distance returns the Euclidean distance between the centers of the
// two boxes.
func (b Box) Distance(o Box) float64 {
	bc, oc := b.Center(), o.Center()
	dx := bc.X - oc.X
	dy := bc.Y - oc.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// JoinText concatenates the raw text of all fragments in order,
// separated by newlines. Used for the raw-text payload of unclear scan
// results.
func JoinText(fragments []Fragment) string {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}
	return strings.Join(texts, "\n")
}

// MeanConfidence returns the arithmetic mean of all fragment
// confidences, or 0 for an empty set.
func MeanConfidence(fragments []Fragment) float64 {
	if len(fragments) == 0 {
		return 0
	}
	var sum float64
	for _, f := range fragments {
		sum += f.Confidence
	}
	return sum / float64(len(fragments))
}
