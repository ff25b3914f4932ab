package imaging

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidKernel is returned when a blur kernel size is not a pair of
	// odd positive integers.
	ErrInvalidKernel = errors.New("kernel size must be odd and positive")

	// ErrSizeMismatch is returned when grid cells do not share dimensions.
	ErrSizeMismatch = errors.New("grid cells must have identical dimensions")
)

// NotFoundError reports that an input path does not name an existing file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find image: %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// DecodeError reports that a file exists but could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not load image: %s", e.Path)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
