// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Rect is an axis-aligned rectangle in page coordinates. The origin is the
// top-left corner of the page with y increasing downward, matching the
// placement convention of the document backend. All values are PDF points.
type Rect struct {
	// X, Y locate the top-left corner of the rectangle.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// W, H are the rectangle's extent along each axis.
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// PaperSize is a named sheet format in PDF points.
type PaperSize struct {
	Name   string  `json:"name" yaml:"name"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// A4Landscape is the output sheet format: A4 with width and height swapped.
// The integral point values are deliberate; the imposition grid divides
// them exactly. Per prd001-impose R2.1.
var A4Landscape = PaperSize{Name: "A4 landscape", Width: 842, Height: 595}

// SaveOptions controls output document serialization.
type SaveOptions struct {
	// Optimize requests a size-optimized rewrite: unused objects garbage
	// collected, streams compressed, document structure cleaned.
	Optimize bool `json:"optimize" yaml:"optimize"`
}
