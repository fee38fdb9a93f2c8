package mosaic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a non-positive grid or tile dimension.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDirectoryNotFound reports a source folder that does not exist, is
	// not a directory, or cannot be listed.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNoImagesFound reports a source folder without any recognised image.
	ErrNoImagesFound = errors.New("no images found")

	// ErrSave is matched by every *SaveError.
	ErrSave = errors.New("failed to save mosaic")
)

// DecodeError describes a source image that could not be turned into a tile.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to process image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SaveError describes a canvas that could not be written to Path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save mosaic to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSave) hold for any *SaveError.
func (e *SaveError) Is(target error) bool {
	return target == ErrSave
}
