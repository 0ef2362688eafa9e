package render_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoinehirtz/Math-of-Intelligence/lattice"
	"github.com/antoinehirtz/Math-of-Intelligence/render"
	"github.com/antoinehirtz/Math-of-Intelligence/som"
)

// paint overwrites the cell at (x,y) with target via Nudge.
func paint(t *testing.T, l *lattice.Lattice, x, y int, target []float64) {
	t.Helper()
	cur, err := l.At(x, y, nil)
	require.NoError(t, err)
	delta := make([]float64, len(target))
	for i := range target {
		delta[i] = target[i] - cur[i]
	}
	require.NoError(t, l.Nudge(x, y, delta))
}

//----------------------------------------------------------------------------//
// RGBImage Tests
//----------------------------------------------------------------------------//

// TestRGBImage paints known colors and checks geometry and pixel values,
// including scale-block fill and component clamping.
func TestRGBImage(t *testing.T) {
	l, err := lattice.New(2, 2, 3, lattice.WithSeed(1))
	require.NoError(t, err)
	paint(t, l, 0, 0, []float64{255, 0, 0})
	paint(t, l, 1, 0, []float64{0, 255, 0})
	paint(t, l, 0, 1, []float64{0, 0, 255})
	paint(t, l, 1, 1, []float64{300, -10, 127.4}) // clamps to (255, 0, 127)

	img, err := render.RGBImage(l, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())

	check := func(px, py int, r, g, b uint8) {
		cr, cg, cb, _ := img.At(px, py).RGBA()
		assert.Equal(t, uint32(r)*0x101, cr, "R at (%d,%d)", px, py)
		assert.Equal(t, uint32(g)*0x101, cg, "G at (%d,%d)", px, py)
		assert.Equal(t, uint32(b)*0x101, cb, "B at (%d,%d)", px, py)
	}
	check(0, 0, 255, 0, 0)
	check(2, 2, 255, 0, 0) // same block as (0,0)
	check(3, 0, 0, 255, 0)
	check(0, 3, 0, 0, 255)
	check(5, 5, 255, 0, 127)
}

// TestRGBImage_Errors covers nil model, bad scale, and wrong dimensionality.
func TestRGBImage_Errors(t *testing.T) {
	_, err := render.RGBImage(nil, 1)
	assert.ErrorIs(t, err, render.ErrNilLattice)

	l, err := lattice.New(2, 2, 3, lattice.WithSeed(1))
	require.NoError(t, err)
	_, err = render.RGBImage(l, 0)
	assert.ErrorIs(t, err, render.ErrBadScale)

	l4, err := lattice.New(2, 2, 4, lattice.WithSeed(1))
	require.NoError(t, err)
	_, err = render.RGBImage(l4, 1)
	assert.ErrorIs(t, err, render.ErrUnsupportedDim)
}

//----------------------------------------------------------------------------//
// GrayTiles Tests
//----------------------------------------------------------------------------//

// TestGrayTiles reshapes a Dim=4 cell into a 2×2 patch and verifies the
// row-major patch layout within the tiled image.
func TestGrayTiles(t *testing.T) {
	l, err := lattice.New(2, 1, 4, lattice.WithSeed(1))
	require.NoError(t, err)
	paint(t, l, 0, 0, []float64{10, 20, 30, 40})
	paint(t, l, 1, 0, []float64{50, 60, 70, 80})

	img, err := render.GrayTiles(l, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	gray := img.(*image.Gray)
	// Cell (0,0): vector index i maps to patch pixel (i%2, i/2).
	assert.Equal(t, uint8(10), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(20), gray.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(30), gray.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(40), gray.GrayAt(1, 1).Y)
	// Cell (1,0) tiles to the right.
	assert.Equal(t, uint8(50), gray.GrayAt(2, 0).Y)
	assert.Equal(t, uint8(80), gray.GrayAt(3, 1).Y)
}

// TestGrayTiles_Errors covers bad patch geometry and mismatched Dim.
func TestGrayTiles_Errors(t *testing.T) {
	l, err := lattice.New(2, 2, 4, lattice.WithSeed(1))
	require.NoError(t, err)

	_, err = render.GrayTiles(nil, 2, 2)
	assert.ErrorIs(t, err, render.ErrNilLattice)
	_, err = render.GrayTiles(l, 0, 2)
	assert.ErrorIs(t, err, render.ErrBadPatch)
	_, err = render.GrayTiles(l, 3, 2)
	assert.ErrorIs(t, err, render.ErrUnsupportedDim)
}

//----------------------------------------------------------------------------//
// File Output Tests
//----------------------------------------------------------------------------//

// TestSavePNG round-trips an image through the encoder.
func TestSavePNG(t *testing.T) {
	l, err := lattice.New(3, 3, 3, lattice.WithSeed(5))
	require.NoError(t, err)
	img, err := render.RGBImage(l, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, render.SavePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

// TestScheduleCurves writes a non-empty plot file.
func TestScheduleCurves(t *testing.T) {
	s, err := som.NewSchedule(5, 100)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curves.png")
	require.NoError(t, render.ScheduleCurves(s, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
