// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPDF writes a document with one page per entry of sizes and
// returns its path.
func newTestPDF(t *testing.T, dir string, sizes ...gofpdf.SizeType) string {
	t.Helper()

	f := gofpdf.New("P", "pt", "A4", "")
	for _, s := range sizes {
		f.AddPageFormat("P", s)
	}

	path := filepath.Join(dir, "input.pdf")
	require.NoError(t, f.OutputFileAndClose(path))
	return path
}

func a4Pages(n int) []gofpdf.SizeType {
	sizes := make([]gofpdf.SizeType, n)
	for i := range sizes {
		sizes[i] = gofpdf.SizeType{Wd: 595.28, Ht: 841.89}
	}
	return sizes
}

func TestFileReady(t *testing.T) {
	path := newTestPDF(t, t.TempDir(), a4Pages(8)...)

	r, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, path, r.Path)
	assert.Equal(t, 8, r.PageCount)
	require.Len(t, r.Pages, 8)
	assert.True(t, r.UniformSize)
	assert.True(t, r.Ready)
	assert.InDelta(t, 595.28, r.Pages[0].Width, 0.01)
	assert.InDelta(t, 841.89, r.Pages[0].Height, 0.01)
}

func TestFileWrongCount(t *testing.T) {
	path := newTestPDF(t, t.TempDir(), a4Pages(3)...)

	r, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, 3, r.PageCount)
	assert.False(t, r.Ready)
}

func TestFileMixedSizes(t *testing.T) {
	sizes := append(a4Pages(7), gofpdf.SizeType{Wd: 200, Ht: 200})
	path := newTestPDF(t, t.TempDir(), sizes...)

	r, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, 8, r.PageCount)
	assert.False(t, r.UniformSize)
	assert.True(t, r.Ready, "mixed sizes still convert")
}

func TestFileUnreadable(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(junk, []byte("no pdf here"), 0o644))

	_, err = File(junk)
	require.Error(t, err)
}
