package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/katalvlaran/qseg"
	"github.com/katalvlaran/qseg/mask"
)

var (
	// ErrEmptyImage indicates an image with no pixels.
	ErrEmptyImage = fmt.Errorf("imageio: empty image: %w", qseg.ErrShape)
	// ErrWidth indicates a negative resize width.
	ErrWidth = fmt.Errorf("imageio: resize width must be non-negative: %w", qseg.ErrDomain)
)

// Gray converts img to a grid of intensities in [0,1], row-major. When
// width > 0 the image is first resized to that width, keeping its aspect
// ratio.
// Complexity: O(H×W).
func Gray(img image.Image, width int) ([][]float64, error) {
	if width < 0 {
		return nil, ErrWidth
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if width > 0 && width != img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	g := imaging.Grayscale(img)
	b := g.Bounds()
	out := make([][]float64, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		out[y] = make([]float64, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			// Grayscale leaves R=G=B; Pix is 4 bytes per pixel.
			out[y][x] = float64(g.Pix[y*g.Stride+x*4]) / 255
		}
	}

	return out, nil
}

// LoadGray opens the image at path and converts it with Gray.
func LoadGray(path string, width int) ([][]float64, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("LoadGray %s: %w", path, err)
	}

	return Gray(img, width)
}

// SaveMask writes m as a black/white image; the format follows the file
// extension.
func SaveMask(path string, m [][]int) error {
	img, err := mask.ToImage(m)
	if err != nil {
		return err
	}
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("SaveMask %s: %w", path, err)
	}

	return nil
}
