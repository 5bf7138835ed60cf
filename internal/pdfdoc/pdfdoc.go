// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc implements the imposition document backend on gofpdf and
// gofpdi (composition, vector page transclusion) and pdfcpu (validation,
// size-optimized serialization).
// Implements: prd001-impose R5;
//
//	docs/ARCHITECTURE § Document Backend.
package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pocketmod/internal/impose"
	"github.com/pdiddy/pocketmod/pkg/types"
)

// Library is the production impose.Library: sources are opened with pdfcpu,
// output documents composed with gofpdf.
type Library struct{}

// New returns the gofpdf/pdfcpu-backed library.
func New() *Library { return &Library{} }

// Open verifies that path parses as a PDF and returns a file-backed handle
// on it. The page count is read once here; page content is re-read from
// disk by the importer at embed time.
func (l *Library) Open(path string) (impose.SourceDocument, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page count: %w", err)
	}
	return &Source{path: path, pages: n}, nil
}

// New creates an empty output document measured in PDF points.
func (l *Library) New() impose.OutputDocument {
	f := gofpdf.New("P", "pt", "A4", "")
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	return &Output{f: f, imp: gofpdi.NewImporter()}
}

// Source is a file-backed source document.
type Source struct {
	path  string
	pages int
}

// Path returns the file the document was opened from.
func (s *Source) Path() string { return s.path }

// PageCount returns the number of pages counted at Open time.
func (s *Source) PageCount() int { return s.pages }

// Close releases nothing: sources are re-opened from disk by the importer
// at embed time. The method keeps the ownership contract uniform.
func (s *Source) Close() error { return nil }

// Output is a document under composition, backed by a gofpdf document and
// a gofpdi importer. The importer caches parsed source files, so embedding
// eight pages of one source parses it once.
type Output struct {
	f   *gofpdf.Fpdf
	imp *gofpdi.Importer
}

// NewPage appends a page with the exact point dimensions given and returns
// a handle on it.
func (o *Output) NewPage(width, height float64) (impose.Page, error) {
	// Orientation "P" takes the size literally; "L" would swap the axes.
	o.f.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
	if o.f.Err() {
		return nil, o.f.Error()
	}
	return &page{out: o, w: width, h: height}, nil
}

// Save serializes the document to path. The composed bytes go to a temp
// file in the destination directory first; with opts.Optimize the final
// write is pdfcpu's size-optimized rewrite (garbage collection, stream
// compression, structural cleanup), otherwise the temp file is renamed
// into place. Either way no partial file is left at path on failure.
func (o *Output) Save(path string, opts types.SaveOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pocketmod-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := o.f.Output(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if !opts.Optimize {
		if err := os.Rename(tmpPath, path); err != nil {
			return fmt.Errorf("placing output: %w", err)
		}
		return nil
	}

	if err := api.OptimizeFile(tmpPath, path, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("optimizing output: %w", err)
	}
	return nil
}

// Close finalizes the underlying document. Harmless after Save, which
// finalizes it as a side effect of writing.
func (o *Output) Close() error {
	o.f.Close()
	return nil
}

// page is one page of an Output.
type page struct {
	out  *Output
	w, h float64
}

func (p *page) Width() float64  { return p.w }
func (p *page) Height() float64 { return p.h }

// Embed places page pageIndex of src into target. The source page is
// imported as a form XObject template (vector content, clipped to its
// media box) and drawn scaled to target's extent on both axes. Rotation
// 180 spins the placement about the cell center.
func (p *page) Embed(target types.Rect, src impose.SourceDocument, pageIndex int, rot types.Rotation) (err error) {
	if !rot.Valid() {
		return fmt.Errorf("unsupported rotation %d", int(rot))
	}

	// gofpdi panics on files it cannot parse (encrypted or truncated
	// sources included); surface that as an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing page %d of %s: %v", pageIndex+1, src.Path(), r)
		}
	}()

	// The importer numbers pages from 1.
	tpl := p.out.imp.ImportPage(p.out.f, src.Path(), pageIndex+1, "/MediaBox")

	if rot == types.Rotate180 {
		cx, cy := target.Center()
		p.out.f.TransformBegin()
		p.out.f.TransformRotate(180, cx, cy)
		p.out.imp.UseImportedTemplate(p.out.f, tpl, target.X, target.Y, target.W, target.H)
		p.out.f.TransformEnd()
	} else {
		p.out.imp.UseImportedTemplate(p.out.f, tpl, target.X, target.Y, target.W, target.H)
	}

	if p.out.f.Err() {
		return p.out.f.Error()
	}
	return nil
}
