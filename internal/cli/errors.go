package cli

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// ExitCode is the process exit status reported for a failure class.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unclassified failure.
	ExitGeneralError ExitCode = 1

	// ExitDirectoryNotFound indicates the source folder is missing or unreadable.
	ExitDirectoryNotFound ExitCode = 2

	// ExitNoImagesFound indicates the source folder has no recognised image.
	ExitNoImagesFound ExitCode = 3

	// ExitInvalidParameter indicates a bad grid size, tile size, colour or preset.
	ExitInvalidParameter ExitCode = 4

	// ExitSaveFailed indicates the mosaic could not be written.
	ExitSaveFailed ExitCode = 5
)

// ExitError carries the exit code a command failure should produce.
type ExitError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError creates an ExitError that wraps err.
func WrapExitError(code ExitCode, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// AsExitError classifies err. ExitErrors pass through; mosaic errors map to
// their dedicated codes; anything else is a general error.
func AsExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case errors.Is(err, mosaic.ErrDirectoryNotFound):
		return WrapExitError(ExitDirectoryNotFound, "source folder not found", err)
	case errors.Is(err, mosaic.ErrNoImagesFound):
		return WrapExitError(ExitNoImagesFound, "no images to build from", err)
	case errors.Is(err, mosaic.ErrInvalidParameter):
		return WrapExitError(ExitInvalidParameter, "invalid parameter", err)
	case errors.Is(err, mosaic.ErrSave):
		return WrapExitError(ExitSaveFailed, "could not save mosaic", err)
	}
	return &ExitError{Code: ExitGeneralError, Message: err.Error()}
}
