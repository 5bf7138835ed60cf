// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Rotation is the clockwise rotation applied to a source page when it is
// placed into a panel. Only the two values used by the PocketMod assembly
// are valid. Per prd001-impose R1.3.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate180 Rotation = 180
)

// Valid reports whether r is one of the supported rotations.
func (r Rotation) Valid() bool {
	return r == Rotate0 || r == Rotate180
}

// String returns the rotation in degrees, e.g. "180°".
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r))
}

// GridPos addresses one cell of the 2-row × 4-column output grid.
// Row 0 is the top row; column 0 is the leftmost cell.
type GridPos struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Panel maps one source page onto one output grid cell.
// Per prd001-impose R1.1: the descriptor is immutable compile-time data.
type Panel struct {
	// Source is the zero-based index of the source page placed in this panel.
	Source int `json:"source_page" yaml:"source_page"`

	// Rotation is applied to the source page content inside the cell.
	Rotation Rotation `json:"rotation" yaml:"rotation"`

	// Pos is the grid cell the page lands in.
	Pos GridPos `json:"grid_pos" yaml:"grid_pos"`
}

// Layout is a named imposition table: exactly eight panels covering all
// eight source pages and all eight grid cells exactly once (R1.2).
type Layout struct {
	Name   string   `json:"name" yaml:"name"`
	Panels [8]Panel `json:"panels" yaml:"panels"`
}

// The two PocketMod assemblies differ only in which long edge of the sheet
// the fold ends up on; sources map to the same cells in both, with every
// rotation flipped 0↔180 per row between them (R1.4).
var (
	// LayoutBottom is the default assembly: the top row carries pages
	// 5, 6, 7 and the front cover (page 0), all upside down; the bottom
	// row carries pages 4, 3, 2, 1 upright.
	LayoutBottom = Layout{
		Name: "bottom",
		Panels: [8]Panel{
			{Source: 5, Rotation: Rotate180, Pos: GridPos{Row: 0, Col: 0}},
			{Source: 6, Rotation: Rotate180, Pos: GridPos{Row: 0, Col: 1}},
			{Source: 7, Rotation: Rotate180, Pos: GridPos{Row: 0, Col: 2}},
			{Source: 0, Rotation: Rotate180, Pos: GridPos{Row: 0, Col: 3}},
			{Source: 4, Rotation: Rotate0, Pos: GridPos{Row: 1, Col: 0}},
			{Source: 3, Rotation: Rotate0, Pos: GridPos{Row: 1, Col: 1}},
			{Source: 2, Rotation: Rotate0, Pos: GridPos{Row: 1, Col: 2}},
			{Source: 1, Rotation: Rotate0, Pos: GridPos{Row: 1, Col: 3}},
		},
	}

	// LayoutTop is the mirrored assembly: same cell mapping, rotations
	// swapped per row.
	LayoutTop = Layout{
		Name: "top",
		Panels: [8]Panel{
			{Source: 5, Rotation: Rotate0, Pos: GridPos{Row: 0, Col: 0}},
			{Source: 6, Rotation: Rotate0, Pos: GridPos{Row: 0, Col: 1}},
			{Source: 7, Rotation: Rotate0, Pos: GridPos{Row: 0, Col: 2}},
			{Source: 0, Rotation: Rotate0, Pos: GridPos{Row: 0, Col: 3}},
			{Source: 4, Rotation: Rotate180, Pos: GridPos{Row: 1, Col: 0}},
			{Source: 3, Rotation: Rotate180, Pos: GridPos{Row: 1, Col: 1}},
			{Source: 2, Rotation: Rotate180, Pos: GridPos{Row: 1, Col: 2}},
			{Source: 1, Rotation: Rotate180, Pos: GridPos{Row: 1, Col: 3}},
		},
	}
)

// LayoutByName returns the layout table for name ("bottom" or "top").
// The second return value is false for unrecognized names.
func LayoutByName(name string) (Layout, bool) {
	switch name {
	case LayoutBottom.Name:
		return LayoutBottom, true
	case LayoutTop.Name:
		return LayoutTop, true
	}
	return Layout{}, false
}

// LayoutNames returns the recognized layout names in presentation order.
func LayoutNames() []string {
	return []string{LayoutBottom.Name, LayoutTop.Name}
}
