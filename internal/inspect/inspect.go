// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reports whether a PDF is ready for PocketMod conversion.
// Implements: prd001-impose R6;
//
//	docs/ARCHITECTURE § Inspection.
package inspect

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pocketmod/internal/impose"
)

// PageSize is the extent of one page in PDF points.
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Report describes a candidate input file.
type Report struct {
	// Path is the inspected file.
	Path string `json:"path" yaml:"path"`

	// PageCount is the number of pages in the document.
	PageCount int `json:"page_count" yaml:"page_count"`

	// Pages holds the media box extent of each page in order.
	Pages []PageSize `json:"pages" yaml:"pages"`

	// UniformSize is true when every page has the same extent. Mixed
	// sizes still convert; each page is stretched to its cell.
	UniformSize bool `json:"uniform_size" yaml:"uniform_size"`

	// Conforming is false when strict validation found problems;
	// ValidationError then holds the finding. Non-conforming files often
	// still convert, the conversion reads in relaxed mode.
	Conforming      bool   `json:"conforming" yaml:"conforming"`
	ValidationError string `json:"validation_error,omitempty" yaml:"validation_error,omitempty"`

	// Ready is true when the file has exactly the page count the
	// conversion requires.
	Ready bool `json:"ready" yaml:"ready"`
}

// File inspects the PDF at path. It fails only when the file cannot be
// read as a PDF at all; validation findings are recorded in the report
// instead.
func File(path string) (*Report, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	r := &Report{
		Path:        path,
		PageCount:   len(dims),
		Pages:       make([]PageSize, len(dims)),
		UniformSize: true,
		Conforming:  true,
		Ready:       len(dims) == impose.RequiredPages,
	}
	for i, d := range dims {
		r.Pages[i] = PageSize{Width: d.Width, Height: d.Height}
		if i > 0 && r.Pages[i] != r.Pages[0] {
			r.UniformSize = false
		}
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationStrict
	if err := api.ValidateFile(path, conf); err != nil {
		r.Conforming = false
		r.ValidationError = err.Error()
	}
	return r, nil
}
