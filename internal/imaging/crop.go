package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CellRect returns the pixel rectangle covered by cell (row, col) of a grid
// whose tiles are tileWidth×tileHeight pixels.
func CellRect(row, col, tileWidth, tileHeight int) image.Rectangle {
	x := col * tileWidth
	y := row * tileHeight
	return image.Rect(x, y, x+tileWidth, y+tileHeight)
}

// ExtractCell copies cell (row, col) out of a mosaic canvas.
//
// The cell must lie entirely inside the canvas bounds.
func ExtractCell(canvas image.Image, row, col, tileWidth, tileHeight int) (*image.NRGBA, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", tileWidth, tileHeight)
	}
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("cell (%d,%d) outside canvas", row, col)
	}

	bounds := canvas.Bounds()
	r := CellRect(row, col, tileWidth, tileHeight).Add(bounds.Min)
	if !r.In(bounds) {
		return nil, fmt.Errorf("cell (%d,%d) outside canvas bounds (%d,%d)-(%d,%d)",
			row, col, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(canvas, r), nil
}
