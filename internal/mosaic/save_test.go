package mosaic

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildForSave(t *testing.T) *Result {
	t.Helper()
	dir := t.TempDir()
	writeSolid(t, dir, "a.png", red)
	writeSolid(t, dir, "b.png", green)

	result, err := Build(dir, Options{Grid: 2, Tile: TileSize{30, 20}, Rand: NewSeededRand(3), Logger: quietLogger()})
	require.NoError(t, err)
	return result
}

func TestSave_PNGRoundTrip(t *testing.T) {
	result := buildForSave(t)
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, Save(result.Canvas, path))

	reloaded, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, result.Canvas.Bounds().Size(), reloaded.Bounds().Size())

	// Lossless: every pixel survives.
	b := reloaded.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r1, g1, b1, _ := result.Canvas.At(x, y).RGBA()
			r2, g2, b2, _ := reloaded.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Fatalf("pixel (%d,%d) differs after PNG round trip", x, y)
			}
		}
	}
}

func TestSave_LossyAndOtherFormatsKeepDimensions(t *testing.T) {
	result := buildForSave(t)
	dir := t.TempDir()

	for _, name := range []string{"out.jpg", "out.JPEG", "out.bmp", "out.gif", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(result.Canvas, path, WithJPEGQuality(80)))

			reloaded, err := imaging.Open(path)
			require.NoError(t, err)
			assert.Equal(t, 60, reloaded.Bounds().Dx())
			assert.Equal(t, 40, reloaded.Bounds().Dy())
		})
	}
}

func TestSave_Errors(t *testing.T) {
	result := buildForSave(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		opts []SaveOption
	}{
		{"unknown extension", filepath.Join(dir, "out.xyz"), nil},
		{"no extension", filepath.Join(dir, "out"), nil},
		{"missing directory", filepath.Join(dir, "missing", "out.png"), nil},
		{"bad quality", filepath.Join(dir, "out.jpg"), []SaveOption{WithJPEGQuality(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(result.Canvas, tt.path, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSave)

			var saveErr *SaveError
			require.True(t, errors.As(err, &saveErr))
			assert.Equal(t, tt.path, saveErr.Path)
		})
	}

	// The canvas is still usable after failed saves.
	assert.NoError(t, Save(result.Canvas, filepath.Join(dir, "retry.png")))
}

func TestSave_DefaultOutput(t *testing.T) {
	result := buildForSave(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, Save(result.Canvas, ""))
	_, err = os.Stat(DefaultOutput)
	assert.NoError(t, err)
}

func TestPreview(t *testing.T) {
	big := solidImage(1000, 500, red)

	preview := Preview(big, 200, 200)
	assert.Equal(t, 200, preview.Bounds().Dx())
	assert.Equal(t, 100, preview.Bounds().Dy())
	assert.Equal(t, 1000, big.Bounds().Dx(), "source must not change")

	small := solidImage(50, 40, red)
	assert.Same(t, small, Preview(small, 200, 200))

	unbounded := Preview(big, 0, 250)
	assert.Equal(t, 500, unbounded.Bounds().Dx())
	assert.Equal(t, 250, unbounded.Bounds().Dy())
}
