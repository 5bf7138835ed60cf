// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package impose arranges the eight pages of a source PDF onto one
// landscape sheet so the printed result cuts and folds into a PocketMod
// booklet.
// Implements: prd001-impose (R1-R4);
//
//	docs/ARCHITECTURE § Imposition.
package impose

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pocketmod/pkg/types"
)

// RequiredPages is the page count a source document must have: one page
// per panel of the folded booklet.
const RequiredPages = 8

// Grid dimensions of the output sheet (R2.2).
const (
	gridRows = 2
	gridCols = 4
)

// SourceDocument is a read-only handle on an opened input PDF. Source
// documents are file-backed; Path returns the file they were opened from.
type SourceDocument interface {
	Path() string
	PageCount() int
	Close() error
}

// Page is one page of an output document under composition.
type Page interface {
	Width() float64
	Height() float64

	// Embed places page pageIndex of src into target, rotated by rot.
	// Source content stays vector data, clipped to its own page box and
	// scaled to fit both axes of target; aspect ratio is not preserved
	// when the source page and the cell have different shapes (R3.4).
	Embed(target types.Rect, src SourceDocument, pageIndex int, rot types.Rotation) error
}

// OutputDocument is a document under composition.
type OutputDocument interface {
	NewPage(width, height float64) (Page, error)
	Save(path string, opts types.SaveOptions) error
	Close() error
}

// Library is the narrow slice of a PDF library the conversion needs.
// The production implementation lives in internal/pdfdoc; tests substitute
// fakes.
type Library interface {
	Open(path string) (SourceDocument, error)
	New() OutputDocument
}

// TargetRect returns the grid cell at pos on a pageW × pageH sheet divided
// into gridCols columns and gridRows rows. The eight cells tile the sheet
// exactly (R2.3). Pure function; the caller guarantees pos is in range.
func TargetRect(pageW, pageH float64, pos types.GridPos) types.Rect {
	cellW := pageW / gridCols
	cellH := pageH / gridRows
	return types.Rect{
		X: float64(pos.Col) * cellW,
		Y: float64(pos.Row) * cellH,
		W: cellW,
		H: cellH,
	}
}

// OutputPath derives the output file path from the input path and layout
// name. A trailing ".pdf" is replaced; any other input gets the suffix
// appended, so the result never equals inputPath (R3.6).
func OutputPath(inputPath, layout string) string {
	return strings.TrimSuffix(inputPath, ".pdf") + "_pocketmod-" + layout + ".pdf"
}

// Convert builds a PocketMod sheet from the 8-page PDF at inputPath using
// the named layout and writes it next to the input. Progress and failure
// messages for the user go to w; the returned error is one of the typed
// failure kinds. On success Convert returns the path of the written file.
//
// Validation order is fixed: openable source, then page count, then layout
// name (R3.1-R3.3). Both documents are released on every exit path.
func Convert(lib Library, inputPath, layout string, w io.Writer) (string, error) {
	src, err := lib.Open(inputPath)
	if err != nil {
		fmt.Fprintf(w, "Error: Could not open input file '%s'.\n", inputPath)
		fmt.Fprintf(w, "Detail: %v\n", err)
		return "", &OpenError{Path: inputPath, Err: err}
	}
	defer src.Close()

	if n := src.PageCount(); n != RequiredPages {
		fmt.Fprintf(w, "Error: Input file must have exactly %d pages. The provided file has %d pages.\n", RequiredPages, n)
		return "", &PageCountError{Path: inputPath, Count: n}
	}

	table, ok := types.LayoutByName(layout)
	if !ok {
		fmt.Fprintf(w, "Error: Invalid layout option '%s'. Please use '%s' or '%s'.\n",
			layout, types.LayoutBottom.Name, types.LayoutTop.Name)
		return "", &InvalidLayoutError{Name: layout}
	}

	fmt.Fprintln(w, "Input file validated. Creating PocketMod PDF...")

	out := lib.New()
	defer out.Close()

	outPath := OutputPath(inputPath, layout)

	page, err := out.NewPage(types.A4Landscape.Width, types.A4Landscape.Height)
	if err != nil {
		fmt.Fprintf(w, "Error: Could not save output file to '%s'.\n", outPath)
		fmt.Fprintf(w, "Detail: %v\n", err)
		return "", &SaveError{Path: outPath, Err: err}
	}

	for _, panel := range table.Panels {
		target := TargetRect(page.Width(), page.Height(), panel.Pos)
		if err := page.Embed(target, src, panel.Source, panel.Rotation); err != nil {
			// Embedding reads the source page; failures here are
			// source-side (corrupt or unsupported page streams).
			fmt.Fprintf(w, "Error: Could not open input file '%s'.\n", inputPath)
			fmt.Fprintf(w, "Detail: %v\n", err)
			return "", &OpenError{Path: inputPath, Err: err}
		}
	}

	if err := out.Save(outPath, types.SaveOptions{Optimize: true}); err != nil {
		fmt.Fprintf(w, "Error: Could not save output file to '%s'.\n", outPath)
		fmt.Fprintf(w, "Detail: %v\n", err)
		return "", &SaveError{Path: outPath, Err: err}
	}

	fmt.Fprintf(w, "Success! PocketMod file saved to: %s\n", outPath)
	return outPath, nil
}
