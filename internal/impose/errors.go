// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package impose

import (
	"errors"
	"fmt"

	"github.com/pdiddy/pocketmod/pkg/types"
)

// The four failure kinds below are all terminal: each aborts the run, is
// reported to the user as a summary line plus detail, and maps to exit
// status 1. Per prd001-impose R4.1.

// OpenError reports a source file that is missing, unreadable, or not
// parseable as a PDF. It also covers source-side failures surfaced while a
// page is being embedded.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

func (e *OpenError) convertError() {}

// PageCountError reports a source document whose page count is not exactly
// RequiredPages.
type PageCountError struct {
	Path  string
	Count int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("%s has %d pages, want %d", e.Path, e.Count, RequiredPages)
}

func (e *PageCountError) convertError() {}

// InvalidLayoutError reports a layout name outside the recognized set.
type InvalidLayoutError struct {
	Name string
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid layout %q: valid layouts are %q and %q",
		e.Name, types.LayoutBottom.Name, types.LayoutTop.Name)
}

func (e *InvalidLayoutError) convertError() {}

// SaveError reports a failure composing or writing the output document.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

func (e *SaveError) convertError() {}

// convertError is the marker shared by the terminal conversion failures.
type convertError interface {
	error
	convertError()
}

// IsConvertError reports whether err is one of the conversion failure
// kinds, i.e. a failure Convert has already explained on its message
// stream.
func IsConvertError(err error) bool {
	var ce convertError
	return errors.As(err, &ce)
}
