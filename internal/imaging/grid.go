package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// TileGridOverlay draws the boundaries between mosaic cells on a copy of img.
//
// The image is divided into cols×rows equal cells, which also works on a
// scaled-down preview where a cell is no longer a whole number of pixels.
// Lines are drawn at every internal boundary; the outer edge is left alone.
// When showLabels is true each cell gets a small "row,col" label in its
// top-left corner.
func TileGridOverlay(img image.Image, cols, rows int, lineColor color.Color, showLabels bool) (*image.RGBA, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", cols, rows)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	// Draw vertical lines
	for c := 1; c < cols; c++ {
		x := c * width / cols
		for y := 0; y < height; y++ {
			result.Set(x, y, lineColor)
		}
	}

	// Draw horizontal lines
	for r := 1; r < rows; r++ {
		y := r * height / rows
		for x := 0; x < width; x++ {
			result.Set(x, y, lineColor)
		}
	}

	if showLabels {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				label := fmt.Sprintf("%d,%d", r, c)
				drawLabel(result, c*width/cols+2, r*height/rows+2, label, labelColor, bgColor)
			}
		}
	}

	return result, nil
}

// drawLabel draws a simple text label at the given position
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	// Simple 3x5 pixel font for digits and comma
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Background box, clipped to the image
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if (image.Point{px, py}).In(bounds) {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := cx+col, y+row
				if (image.Point{px, py}).In(bounds) {
					img.Set(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}
