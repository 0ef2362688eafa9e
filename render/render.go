package render

import (
	"errors"
	"image"
	"image/color"
)

// Sentinel errors for render operations.
var (
	// ErrNilLattice indicates a nil model.
	ErrNilLattice = errors.New("render: lattice must be non-nil")
	// ErrUnsupportedDim indicates a cell dimensionality the renderer cannot map.
	ErrUnsupportedDim = errors.New("render: unsupported cell dimensionality")
	// ErrBadPatch indicates patch dimensions with pw or ph ≤ 0.
	ErrBadPatch = errors.New("render: patch dimensions must be positive")
	// ErrBadScale indicates a block scale ≤ 0.
	ErrBadScale = errors.New("render: scale must be positive")
)

// Model is the read-only lattice surface rendering needs. *lattice.Lattice
// satisfies it.
type Model interface {
	Dims() (width, height, dim int)
	View(x, y int) ([]float64, error)
}

// clamp8 rounds v to the nearest integer and clamps it to [0, 255].
func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// RGBImage paints each cell of a Dim=3 lattice as a scale×scale block of
// its (R, G, B) reference vector, producing a (W·scale)×(H·scale) image.
// Returns ErrNilLattice, ErrUnsupportedDim when Dim≠3, ErrBadScale when
// scale ≤ 0.
// Complexity: O(W×H×scale²).
func RGBImage(m Model, scale int) (image.Image, error) {
	if m == nil {
		return nil, ErrNilLattice
	}
	if scale <= 0 {
		return nil, ErrBadScale
	}
	w, h, dim := m.Dims()
	if dim != 3 {
		return nil, ErrUnsupportedDim
	}

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := m.View(x, y)
			if err != nil {
				return nil, err
			}
			c := color.RGBA{R: clamp8(v[0]), G: clamp8(v[1]), B: clamp8(v[2]), A: 255}
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetRGBA(x*scale+px, y*scale+py, c)
				}
			}
		}
	}

	return img, nil
}

// GrayTiles reshapes each cell's vector row-major into a pw×ph grayscale
// patch and tiles the patches row-major over (x, y), producing a
// (W·pw)×(H·ph) image. The cell dimensionality must equal pw·ph.
// Returns ErrNilLattice, ErrBadPatch, or ErrUnsupportedDim.
// Complexity: O(W×H×D).
func GrayTiles(m Model, pw, ph int) (image.Image, error) {
	if m == nil {
		return nil, ErrNilLattice
	}
	if pw <= 0 || ph <= 0 {
		return nil, ErrBadPatch
	}
	w, h, dim := m.Dims()
	if dim != pw*ph {
		return nil, ErrUnsupportedDim
	}

	img := image.NewGray(image.Rect(0, 0, w*pw, h*ph))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := m.View(x, y)
			if err != nil {
				return nil, err
			}
			for i, comp := range v {
				px, py := i%pw, i/pw
				img.SetGray(x*pw+px, y*ph+py, color.Gray{Y: clamp8(comp)})
			}
		}
	}

	return img, nil
}
