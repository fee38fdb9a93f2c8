package mosaic

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/ironsheep/image-mosaic/internal/imaging"
)

// Limits on the canvas a build may allocate. Larger requests are rejected
// with ErrInvalidParameter before any memory is allocated.
const (
	// MaxGrid bounds the grid dimension, so a mosaic has at most
	// MaxGrid*MaxGrid cells.
	MaxGrid = 1000

	// MaxCanvasSide bounds the width and the height of the canvas in pixels.
	MaxCanvasSide = 1 << 15

	// MaxCanvasPixels bounds width*height of the canvas (512 MiB as RGBA).
	MaxCanvasPixels = 1 << 27
)

// DefaultTileSize is used when Options.Tile is left zero.
var DefaultTileSize = TileSize{Width: 200, Height: 200}

// TileSize is the pixel size shared by every cell of a mosaic.
type TileSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (t TileSize) String() string {
	return fmt.Sprintf("%dx%d", t.Width, t.Height)
}

// CellStatus is the outcome of filling one cell.
type CellStatus int

const (
	// Filled means the cell shows its resized source image.
	Filled CellStatus = iota
	// Skipped means the source could not be used and the cell kept the
	// background colour.
	Skipped
)

func (s CellStatus) String() string {
	if s == Skipped {
		return "skipped"
	}
	return "filled"
}

// MarshalText renders the status as "filled" or "skipped".
func (s CellStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *CellStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "filled":
		*s = Filled
	case "skipped":
		*s = Skipped
	default:
		return fmt.Errorf("unknown cell status %q", text)
	}
	return nil
}

// CellResult records what happened to one grid cell.
type CellResult struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Path   string     `json:"path"`
	Status CellStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
	Err    error      `json:"-"`
}

// Options configures a build.
type Options struct {
	// Grid is the number of rows and of columns.
	Grid int

	// Tile is the size every source image is stretched to. The zero value
	// selects DefaultTileSize.
	Tile TileSize

	// Background fills the canvas before pasting and shows through skipped
	// cells. It is made opaque. Nil means black.
	Background color.Color

	// Rand orders the pool. Nil means a freshly seeded generator.
	Rand Shuffler

	// Logger receives progress and per-image failures. Nil means
	// log.Default().
	Logger *log.Logger

	// OnCell, when set, is called after every cell in fill order.
	OnCell func(CellResult)
}

// Validate checks the grid and tile dimensions.
func (o Options) Validate() error {
	if o.Grid <= 0 {
		return fmt.Errorf("%w: grid size must be a positive integer, got %d", ErrInvalidParameter, o.Grid)
	}
	if o.Grid > MaxGrid {
		return fmt.Errorf("%w: grid size must be at most %d, got %d", ErrInvalidParameter, MaxGrid, o.Grid)
	}
	tile := o.tileSize()
	if tile.Width <= 0 || tile.Height <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %s", ErrInvalidParameter, tile)
	}
	// Divide instead of multiplying so that huge tiles cannot overflow.
	if tile.Width > MaxCanvasSide/o.Grid || tile.Height > MaxCanvasSide/o.Grid {
		return fmt.Errorf("%w: a %dx%d grid of %s tiles exceeds the %d pixel canvas side limit",
			ErrInvalidParameter, o.Grid, o.Grid, tile, MaxCanvasSide)
	}
	width, height := o.Grid*tile.Width, o.Grid*tile.Height
	if width*height > MaxCanvasPixels {
		return fmt.Errorf("%w: a %dx%d canvas exceeds the %d pixel limit",
			ErrInvalidParameter, width, height, MaxCanvasPixels)
	}
	return nil
}

func (o Options) tileSize() TileSize {
	if o.Tile == (TileSize{}) {
		return DefaultTileSize
	}
	return o.Tile
}

// Result is a finished mosaic together with its per-cell report.
type Result struct {
	// Canvas is the composed image, Grid*Tile.Width by Grid*Tile.Height,
	// fully opaque.
	Canvas *image.RGBA

	Grid int
	Tile TileSize

	// Cells holds one entry per cell in row-major order.
	Cells []CellResult

	// PoolSize is the number of recognised images found in the folder.
	PoolSize int

	// Padded reports whether the pool had to be repeated to fill the grid.
	Padded bool
}

// Filled counts the cells showing a source image.
func (r *Result) Filled() int {
	return len(r.Cells) - r.Skipped()
}

// Skipped counts the cells left at the background colour.
func (r *Result) Skipped() int {
	n := 0
	for _, c := range r.Cells {
		if c.Status == Skipped {
			n++
		}
	}
	return n
}

// SkippedCells returns the cells that could not be filled.
func (r *Result) SkippedCells() []CellResult {
	var out []CellResult
	for _, c := range r.Cells {
		if c.Status == Skipped {
			out = append(out, c)
		}
	}
	return out
}

// Build assembles an opts.Grid × opts.Grid mosaic from the images in folder.
//
// The returned error is always one of ErrInvalidParameter,
// ErrDirectoryNotFound or ErrNoImagesFound (wrapped); failures of single
// images are reported in Result.Cells instead.
func Build(folder string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tile := opts.tileSize()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = newRand()
	}

	pool, err := CollectImages(folder)
	if err != nil {
		return nil, err
	}

	required := opts.Grid * opts.Grid
	selected, padded := pool.Shuffle(rng).Select(required)
	if padded {
		logger.Printf("only %d images for a %dx%d grid, repeating images", len(pool), opts.Grid, opts.Grid)
	}

	canvas := newCanvas(opts.Grid*tile.Width, opts.Grid*tile.Height, opts.Background)
	logger.Printf("building %dx%d mosaic (%s tiles) from %s", opts.Grid, opts.Grid, tile, folder)

	// Tiles are only worth keeping when the same path comes up again.
	loadTile := func(path string) (*image.NRGBA, error) {
		return imaging.LoadTile(path, tile.Width, tile.Height)
	}
	var cache *imaging.TileCache
	if padded {
		cache = imaging.NewTileCache(tile.Width, tile.Height)
		loadTile = cache.Tile
	}

	result := &Result{
		Canvas:   canvas,
		Grid:     opts.Grid,
		Tile:     tile,
		Cells:    make([]CellResult, 0, required),
		PoolSize: len(pool),
		Padded:   padded,
	}

	next := 0
	for i := 0; i < opts.Grid; i++ {
		for j := 0; j < opts.Grid; j++ {
			path := selected[next]
			next++

			cell := CellResult{Row: i, Col: j, Path: path, Status: Filled}
			src, err := loadTile(path)
			if err != nil {
				cell.Status = Skipped
				cell.Err = &DecodeError{Path: path, Err: err}
				cell.Reason = err.Error()
				logger.Print(cell.Err)
			} else {
				dst := imaging.CellRect(i, j, tile.Width, tile.Height)
				draw.Draw(canvas, dst, src, src.Bounds().Min, draw.Over)
			}

			result.Cells = append(result.Cells, cell)
			if opts.OnCell != nil {
				opts.OnCell(cell)
			}
		}
	}

	if cache != nil {
		logger.Printf("decoded %d distinct images for %d cells", cache.Len(), required)
	}
	return result, nil
}

// newCanvas allocates a width×height canvas filled with an opaque bg.
func newCanvas(width, height int, bg color.Color) *image.RGBA {
	fill := color.NRGBA{A: 255}
	if bg != nil {
		fill = color.NRGBAModel.Convert(bg).(color.NRGBA)
		fill.A = 255
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return canvas
}
