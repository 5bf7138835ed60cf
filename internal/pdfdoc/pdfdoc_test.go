// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pocketmod/internal/impose"
	"github.com/pdiddy/pocketmod/pkg/types"
)

// newTestPDF writes a portrait A4 document with the given number of pages,
// each carrying its page number as text, and returns its path.
func newTestPDF(t *testing.T, dir string, pages int) string {
	t.Helper()

	f := gofpdf.New("P", "pt", "A4", "")
	f.SetFont("Helvetica", "", 48)
	for i := 1; i <= pages; i++ {
		f.AddPage()
		f.Text(250, 400, fmt.Sprintf("Page %d", i))
	}

	path := filepath.Join(dir, "input.pdf")
	require.NoError(t, f.OutputFileAndClose(path))
	return path
}

// stubSource satisfies impose.SourceDocument for backend-level tests.
type stubSource struct{ path string }

func (s *stubSource) Path() string   { return s.path }
func (s *stubSource) PageCount() int { return 1 }
func (s *stubSource) Close() error   { return nil }

func TestLibraryOpen(t *testing.T) {
	path := newTestPDF(t, t.TempDir(), 8)

	src, err := New().Open(path)
	require.NoError(t, err)

	assert.Equal(t, path, src.Path())
	assert.Equal(t, 8, src.PageCount())
	assert.NoError(t, src.Close())
}

func TestLibraryOpenMissing(t *testing.T) {
	_, err := New().Open(filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
}

func TestLibraryOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := New().Open(path)
	require.Error(t, err)
}

// Full conversion through the real backend: one landscape A4 page out,
// valid PDF, no stray files.
func TestConvertRoundTrip(t *testing.T) {
	for _, layout := range types.LayoutNames() {
		t.Run(layout, func(t *testing.T) {
			dir := t.TempDir()
			input := newTestPDF(t, dir, 8)

			var buf bytes.Buffer
			outPath, err := impose.Convert(New(), input, layout, &buf)
			require.NoError(t, err, "convert output:\n%s", buf.String())

			assert.Equal(t, filepath.Join(dir, "input_pocketmod-"+layout+".pdf"), outPath)
			require.FileExists(t, outPath)

			dims, err := api.PageDimsFile(outPath)
			require.NoError(t, err)
			require.Len(t, dims, 1)
			assert.InDelta(t, types.A4Landscape.Width, dims[0].Width, 0.01)
			assert.InDelta(t, types.A4Landscape.Height, dims[0].Height, 0.01)

			require.NoError(t, api.ValidateFile(outPath, nil))

			// Only the input and the output remain; the temp file used
			// during save is gone.
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 2)
		})
	}
}

func TestConvertRejectsWrongPageCount(t *testing.T) {
	for _, pages := range []int{7, 9} {
		t.Run(fmt.Sprintf("%d_pages", pages), func(t *testing.T) {
			dir := t.TempDir()
			input := newTestPDF(t, dir, pages)

			var buf bytes.Buffer
			_, err := impose.Convert(New(), input, "bottom", &buf)
			require.Error(t, err)

			var pce *impose.PageCountError
			require.ErrorAs(t, err, &pce)
			assert.Equal(t, pages, pce.Count)

			assert.NoFileExists(t, impose.OutputPath(input, "bottom"))
		})
	}
}

// Converting the same input twice succeeds both times and lands on the
// same path with near-identical size (document IDs and dates vary).
func TestConvertRepeatable(t *testing.T) {
	dir := t.TempDir()
	input := newTestPDF(t, dir, 8)

	var buf bytes.Buffer
	first, err := impose.Convert(New(), input, "bottom", &buf)
	require.NoError(t, err)
	firstInfo, err := os.Stat(first)
	require.NoError(t, err)

	second, err := impose.Convert(New(), input, "bottom", &buf)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	secondInfo, err := os.Stat(second)
	require.NoError(t, err)
	assert.InDelta(t, float64(firstInfo.Size()), float64(secondInfo.Size()), 64)
}

func TestSaveWithoutOptimize(t *testing.T) {
	dir := t.TempDir()
	input := newTestPDF(t, dir, 8)

	lib := New()
	src, err := lib.Open(input)
	require.NoError(t, err)
	defer src.Close()

	out := lib.New()
	defer out.Close()

	page, err := out.NewPage(types.A4Landscape.Width, types.A4Landscape.Height)
	require.NoError(t, err)

	cell := impose.TargetRect(types.A4Landscape.Width, types.A4Landscape.Height, types.GridPos{Row: 0, Col: 0})
	require.NoError(t, page.Embed(cell, src, 0, types.Rotate180))

	dest := filepath.Join(dir, "raw.pdf")
	require.NoError(t, out.Save(dest, types.SaveOptions{}))
	require.FileExists(t, dest)

	n, err := api.PageCountFile(dest)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	input := newTestPDF(t, dir, 8)

	lib := New()
	src, err := lib.Open(input)
	require.NoError(t, err)
	defer src.Close()

	out := lib.New()
	defer out.Close()

	page, err := out.NewPage(types.A4Landscape.Width, types.A4Landscape.Height)
	require.NoError(t, err)
	require.NoError(t, page.Embed(types.Rect{W: 200, H: 200}, src, 0, types.Rotate0))

	err = out.Save(filepath.Join(dir, "no", "such", "dir", "out.pdf"), types.SaveOptions{Optimize: true})
	require.Error(t, err)
}

// A file that passes no PDF parser panics deep inside the importer; Embed
// reports it as an error instead.
func TestEmbedBadSource(t *testing.T) {
	junk := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(junk, []byte("%PDF-1.4 truncated"), 0o644))

	out := New().New()
	defer out.Close()

	page, err := out.NewPage(types.A4Landscape.Width, types.A4Landscape.Height)
	require.NoError(t, err)

	err = page.Embed(types.Rect{W: 100, H: 100}, &stubSource{path: junk}, 0, types.Rotate0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "junk.pdf")
}

func TestEmbedRejectsUnsupportedRotation(t *testing.T) {
	out := New().New()
	defer out.Close()

	page, err := out.NewPage(types.A4Landscape.Width, types.A4Landscape.Height)
	require.NoError(t, err)

	// Rotation is checked before the source is ever touched.
	err = page.Embed(types.Rect{W: 100, H: 100}, &stubSource{path: "unused.pdf"}, 0, types.Rotation(90))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rotation")
}
