// Package session keeps the state an interactive front-end needs between
// actions: the last parameters used and the last mosaic built.
//
// A Session is passed explicitly to every action handler instead of living
// in package-level variables. Generation is non-reentrant: while one build
// runs, a second Generate call fails with ErrBusy instead of starting.
package session

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

var (
	// ErrBusy is returned when a build is requested while another one runs.
	ErrBusy = errors.New("a mosaic is already being generated")

	// ErrNothingBuilt is returned by actions that need a finished mosaic.
	ErrNothingBuilt = errors.New("no mosaic has been generated yet")
)

// GridLineColor is the colour of tile boundaries drawn on previews.
var GridLineColor color.Color = color.RGBA{255, 255, 255, 160}

// Session holds the last built mosaic of one interactive user.
type Session struct {
	mu       sync.Mutex
	building bool
	folder   string
	last     *mosaic.Result
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Generate builds a mosaic from folder and, on success, makes it the
// session's current result. A failed build keeps the previous result.
func (s *Session) Generate(folder string, opts mosaic.Options) (*mosaic.Result, error) {
	s.mu.Lock()
	if s.building {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.building = true
	s.mu.Unlock()

	result, err := mosaic.Build(folder, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.building = false
	if err != nil {
		return nil, err
	}
	s.folder = folder
	s.last = result
	return result, nil
}

// Busy reports whether a build is in progress.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.building
}

// Last returns the most recent successful result, or nil.
func (s *Session) Last() *mosaic.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Folder returns the source folder of the most recent successful result.
func (s *Session) Folder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folder
}

// Save writes the current mosaic to path and returns the path actually
// written (mosaic.DefaultOutput when path is empty). A failed save leaves
// the mosaic in place for another attempt.
func (s *Session) Save(path string, opts ...mosaic.SaveOption) (string, error) {
	last := s.Last()
	if last == nil {
		return "", ErrNothingBuilt
	}
	if path == "" {
		path = mosaic.DefaultOutput
	}
	if err := mosaic.Save(last.Canvas, path, opts...); err != nil {
		return "", err
	}
	return path, nil
}

// Preview returns the current mosaic scaled to fit maxWidth×maxHeight,
// optionally with tile boundaries drawn on it.
func (s *Session) Preview(maxWidth, maxHeight int, showGrid bool) (image.Image, error) {
	last := s.Last()
	if last == nil {
		return nil, ErrNothingBuilt
	}

	preview := mosaic.Preview(last.Canvas, maxWidth, maxHeight)
	if !showGrid {
		return preview, nil
	}
	overlay, err := imaging.TileGridOverlay(preview, last.Grid, last.Grid, GridLineColor, false)
	if err != nil {
		return nil, fmt.Errorf("failed to draw grid: %w", err)
	}
	return overlay, nil
}

// Cell returns one tile of the current mosaic at full resolution.
func (s *Session) Cell(row, col int) (image.Image, error) {
	last := s.Last()
	if last == nil {
		return nil, ErrNothingBuilt
	}
	cell, err := imaging.ExtractCell(last.Canvas, row, col, last.Tile.Width, last.Tile.Height)
	if err != nil {
		return nil, err
	}
	return cell, nil
}
