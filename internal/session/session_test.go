package session

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

func writePNG(t *testing.T, dir, name string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func imageDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, dir, "a.png", color.RGBA{255, 0, 0, 255})
	writePNG(t, dir, "b.png", color.RGBA{0, 0, 255, 255})
	return dir
}

func options(grid int) mosaic.Options {
	return mosaic.Options{
		Grid:   grid,
		Tile:   mosaic.TileSize{Width: 20, Height: 10},
		Rand:   mosaic.NewSeededRand(5),
		Logger: log.New(io.Discard, "", 0),
	}
}

func TestSession_GenerateAndSave(t *testing.T) {
	s := New()
	dir := imageDir(t)

	result, err := s.Generate(dir, options(3))
	require.NoError(t, err)
	assert.Same(t, result, s.Last())
	assert.Equal(t, dir, s.Folder())
	assert.False(t, s.Busy())

	out := filepath.Join(t.TempDir(), "mosaic.png")
	written, err := s.Save(out)
	require.NoError(t, err)
	assert.Equal(t, out, written)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSession_NothingBuilt(t *testing.T) {
	s := New()

	_, err := s.Save(filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, ErrNothingBuilt)

	_, err = s.Preview(100, 100, false)
	assert.ErrorIs(t, err, ErrNothingBuilt)

	_, err = s.Cell(0, 0)
	assert.ErrorIs(t, err, ErrNothingBuilt)
}

func TestSession_FailedBuildKeepsPrevious(t *testing.T) {
	s := New()
	first, err := s.Generate(imageDir(t), options(2))
	require.NoError(t, err)

	_, err = s.Generate(filepath.Join(t.TempDir(), "missing"), options(2))
	assert.ErrorIs(t, err, mosaic.ErrDirectoryNotFound)
	assert.Same(t, first, s.Last())

	_, err = s.Generate(imageDir(t), options(0))
	assert.ErrorIs(t, err, mosaic.ErrInvalidParameter)
	assert.Same(t, first, s.Last())
}

func TestSession_FailedSaveKeepsCanvas(t *testing.T) {
	s := New()
	_, err := s.Generate(imageDir(t), options(2))
	require.NoError(t, err)

	_, err = s.Save(filepath.Join(t.TempDir(), "out.unknown"))
	assert.ErrorIs(t, err, mosaic.ErrSave)
	require.NotNil(t, s.Last())

	_, err = s.Save(filepath.Join(t.TempDir(), "out.jpg"), mosaic.WithJPEGQuality(70))
	assert.NoError(t, err)
}

func TestSession_GenerateIsNotReentrant(t *testing.T) {
	s := New()
	dir := imageDir(t)

	var nestedErr error
	calls := 0
	opts := options(2)
	opts.OnCell = func(mosaic.CellResult) {
		calls++
		if calls == 1 {
			assert.True(t, s.Busy())
			_, nestedErr = s.Generate(dir, options(2))
		}
	}

	_, err := s.Generate(dir, opts)
	require.NoError(t, err)
	assert.ErrorIs(t, nestedErr, ErrBusy)
	assert.False(t, s.Busy())
}

func TestSession_Preview(t *testing.T) {
	s := New()
	_, err := s.Generate(imageDir(t), options(4)) // canvas 80x40
	require.NoError(t, err)

	preview, err := s.Preview(40, 40, false)
	require.NoError(t, err)
	assert.Equal(t, 40, preview.Bounds().Dx())
	assert.Equal(t, 20, preview.Bounds().Dy())

	withGrid, err := s.Preview(40, 40, true)
	require.NoError(t, err)
	assert.Equal(t, preview.Bounds().Size(), withGrid.Bounds().Size())

	full, err := s.Preview(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 80, full.Bounds().Dx())
}

func TestSession_Cell(t *testing.T) {
	s := New()
	_, err := s.Generate(imageDir(t), options(2))
	require.NoError(t, err)

	cell, err := s.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, cell.Bounds().Dx())
	assert.Equal(t, 10, cell.Bounds().Dy())

	_, err = s.Cell(2, 0)
	assert.Error(t, err)
}
