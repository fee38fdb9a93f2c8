package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// ErrEmptyImage is returned when a file decodes to an image with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Open decodes the image stored at path.
//
// The file handle is closed before Open returns. JPEG sources are rotated
// according to their EXIF orientation so that tiles come out upright.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// ResizeTile stretches img to exactly width×height pixels using the Lanczos
// filter. The aspect ratio of the source is not preserved.
func ResizeTile(img image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", width, height)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// LoadTile decodes the file at path and resizes it to width×height.
func LoadTile(path string, width, height int) (*image.NRGBA, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return ResizeTile(img, width, height)
}

// TileCache holds resized tiles keyed by their source path.
//
// A cache is bound to one tile size. Failures are cached too, so a corrupt
// file that appears several times in a pool is only read once and fails the
// same way every time.
//
// # Example Usage
//
//	cache := imaging.NewTileCache(200, 200)
//	tile, err := cache.Tile("/photos/a.jpg")
//	if err != nil {
//	    log.Printf("skipping: %v", err)
//	}
type TileCache struct {
	width  int
	height int
	tiles  map[string]cachedTile
}

type cachedTile struct {
	img *image.NRGBA
	err error
}

// NewTileCache creates an empty cache producing width×height tiles.
func NewTileCache(width, height int) *TileCache {
	return &TileCache{
		width:  width,
		height: height,
		tiles:  make(map[string]cachedTile),
	}
}

// Tile returns the resized tile for path, loading it on first use.
//
// The returned image is shared between callers and must not be modified.
func (c *TileCache) Tile(path string) (*image.NRGBA, error) {
	if t, ok := c.tiles[path]; ok {
		return t.img, t.err
	}

	img, err := LoadTile(path, c.width, c.height)
	c.tiles[path] = cachedTile{img: img, err: err}
	return img, err
}

// Len reports how many paths have been loaded, successfully or not.
func (c *TileCache) Len() int {
	return len(c.tiles)
}

// ImageInfo contains metadata about a source image file.
type ImageInfo struct {
	// Path is the file that was inspected.
	Path string `json:"path"`

	// Width is the image width in pixels, after EXIF orientation.
	Width int `json:"width"`

	// Height is the image height in pixels, after EXIF orientation.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "bmp", "gif", "tiff", or "unknown". Extensions match case-insensitively.
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo decodes the image at path and describes it.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func LoadImageInfo(path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Path:          path,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        FormatName(path),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// FormatName maps a file name to the format its extension denotes.
func FormatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "unknown"
}
