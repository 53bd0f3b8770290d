package imageio_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qseg"
	"github.com/katalvlaran/qseg/imageio"
)

func grayImage(rows [][]uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, v := range row {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestGray(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 255, 51},
		{255, 0, 102},
	})
	got, err := imageio.Gray(img, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1, 0.2},
		{1, 0, 0.4},
	}, got)
}

func TestGray_Resize(t *testing.T) {
	img := grayImage([][]uint8{
		{10, 10, 10, 10},
		{10, 10, 10, 10},
	})
	got, err := imageio.Gray(img, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0], 2)
	require.InDelta(t, 10.0/255, got[0][0], 1.0/255)
}

func TestGray_Errors(t *testing.T) {
	_, err := imageio.Gray(image.NewGray(image.Rect(0, 0, 0, 0)), 0)
	require.ErrorIs(t, err, qseg.ErrShape)

	_, err = imageio.Gray(grayImage([][]uint8{{1}}), -1)
	require.ErrorIs(t, err, imageio.ErrWidth)
	require.ErrorIs(t, err, qseg.ErrDomain)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	m := [][]int{
		{0, 1, 1},
		{0, 0, 1},
	}
	require.NoError(t, imageio.SaveMask(path, m))

	got, err := imageio.LoadGray(path, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1, 1},
		{0, 0, 1},
	}, got)
}

func TestLoadGray_Missing(t *testing.T) {
	_, err := imageio.LoadGray(filepath.Join(t.TempDir(), "absent.png"), 0)
	require.Error(t, err)
}

func TestSaveMask_Errors(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, imageio.SaveMask(filepath.Join(dir, "a.png"), [][]int{{0, 1}, {0}}), qseg.ErrShape)
	require.ErrorIs(t, imageio.SaveMask(filepath.Join(dir, "b.png"), nil), imageio.ErrEmptyImage)
	require.Error(t, imageio.SaveMask(filepath.Join(dir, "c.unknown"), [][]int{{1}}))
}
