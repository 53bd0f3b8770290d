package mask

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Decode reshapes x into a height×width mask with
// mask[k/width][k%width] = x[k].
// Returns ErrDimensions for negative or overflowing dimensions, else
// ErrLength.
// Complexity: O(height×width).
func Decode(x []int, height, width int) ([][]int, error) {
	if height < 0 || width < 0 {
		return nil, ErrDimensions
	}
	if width != 0 && height > math.MaxInt/width {
		return nil, fmt.Errorf("Decode(%d×%d): cell count overflows int: %w", height, width, ErrDimensions)
	}
	if len(x) != height*width {
		return nil, fmt.Errorf("Decode(%d×%d): got %d bits: %w", height, width, len(x), ErrLength)
	}
	m := make([][]int, height)
	for r := range m {
		m[r] = make([]int, width)
		copy(m[r], x[r*width:(r+1)*width])
	}

	return m, nil
}

// Flatten concatenates the rows of m in row-major order.
// Returns ErrRagged if rows differ in length.
func Flatten(m [][]int) ([]int, error) {
	if len(m) == 0 {
		return []int{}, nil
	}
	w := len(m[0])
	out := make([]int, 0, len(m)*w)
	for _, row := range m {
		if len(row) != w {
			return nil, ErrRagged
		}
		out = append(out, row...)
	}

	return out, nil
}

// ToImage renders a mask as an 8-bit grayscale image: label 0 is black,
// any other label is white.
func ToImage(m [][]int) (*image.Gray, error) {
	if _, err := Flatten(m); err != nil {
		return nil, err
	}
	h := len(m)
	w := 0
	if h > 0 {
		w = len(m[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if m[r][c] != 0 {
				img.SetGray(c, r, color.Gray{Y: 255})
			}
		}
	}

	return img, nil
}
