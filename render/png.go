package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img as PNG at path, creating or truncating the file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}

	return f.Close()
}
