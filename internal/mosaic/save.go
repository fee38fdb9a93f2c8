package mosaic

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = "mosaique.png"

// DefaultJPEGQuality is used for .jpg/.jpeg outputs unless overridden.
const DefaultJPEGQuality = 95

type saveConfig struct {
	jpegQuality int
}

// SaveOption tunes how Save encodes the canvas.
type SaveOption func(*saveConfig)

// WithJPEGQuality sets the JPEG quality (1-100). Other formats ignore it.
func WithJPEGQuality(quality int) SaveOption {
	return func(c *saveConfig) {
		c.jpegQuality = quality
	}
}

// Save encodes img to path, picking the format from the file extension.
//
// An empty path writes DefaultOutput. Supported extensions are those of
// the imaging library: png, jpg, jpeg, bmp, gif, tif and tiff, in any case.
// Every failure is returned as a *SaveError; img is never modified, so the
// caller can retry with another path.
func Save(img image.Image, path string, opts ...SaveOption) error {
	if path == "" {
		path = DefaultOutput
	}

	cfg := saveConfig{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.jpegQuality < 1 || cfg.jpegQuality > 100 {
		return &SaveError{Path: path, Err: fmt.Errorf("jpeg quality must be between 1 and 100, got %d", cfg.jpegQuality)}
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(cfg.jpegQuality)); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// Preview scales img down to fit within maxWidth×maxHeight, keeping its
// aspect ratio. Images that already fit are returned as they are.
// A non-positive bound leaves that dimension unconstrained.
func Preview(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 {
		maxWidth = b.Dx()
	}
	if maxHeight <= 0 {
		maxHeight = b.Dy()
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}
