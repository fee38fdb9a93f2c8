package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileGridOverlay(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 0, 0, 255})
	red := color.RGBA{255, 0, 0, 255}

	result, err := TileGridOverlay(img, 4, 4, red, false)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Bounds().Dx())
	assert.Equal(t, 100, result.Bounds().Dy())

	// Internal boundaries at 25, 50, 75
	for _, x := range []int{25, 50, 75} {
		r, g, b := rgb8(result.At(x, 10))
		assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b}, "vertical line at x=%d", x)
	}
	r, g, b := rgb8(result.At(10, 50))
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b}, "horizontal line at y=50")

	// Cell interior and outer edge untouched
	r, g, b = rgb8(result.At(12, 12))
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
	r, g, b = rgb8(result.At(0, 12))
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestTileGridOverlay_DoesNotModifySource(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{0, 0, 0, 255})

	_, err := TileGridOverlay(img, 2, 2, color.White, true)
	require.NoError(t, err)

	r, g, b := rgb8(img.At(10, 5))
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestTileGridOverlay_Labels(t *testing.T) {
	img := createInMemoryImage(60, 60, color.RGBA{128, 128, 128, 255})

	result, err := TileGridOverlay(img, 2, 2, color.White, true)
	require.NoError(t, err)

	// The label background box starts one pixel before the label origin.
	r, g, b := rgb8(result.At(31, 31))
	assert.NotEqual(t, [3]uint8{128, 128, 128}, [3]uint8{r, g, b}, "label box expected in cell (1,1)")
}

func TestTileGridOverlay_InvalidGrid(t *testing.T) {
	img := createInMemoryImage(10, 10, color.Black)

	_, err := TileGridOverlay(img, 0, 2, color.White, false)
	assert.Error(t, err)
	_, err = TileGridOverlay(img, 2, -1, color.White, false)
	assert.Error(t, err)
}
