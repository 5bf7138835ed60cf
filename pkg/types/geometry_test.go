// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 70.0, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 60.0, cx)
	assert.Equal(t, 45.0, cy)
}

func TestA4Landscape(t *testing.T) {
	// Width and height swapped relative to portrait A4. The integral
	// values divide into the 4×2 grid without remainder.
	assert.Equal(t, 842.0, A4Landscape.Width)
	assert.Equal(t, 595.0, A4Landscape.Height)
	assert.Greater(t, A4Landscape.Width, A4Landscape.Height)
}
