// Package sink delivers a finished composite to its destination.
//
// Two variants exist: FileSink encodes the image to disk, and DisplaySink
// shows it in a preview window and blocks until a key is pressed. The
// window needs OpenCV, so it is only compiled with the gocv build tag;
// other builds get a DisplaySink that returns ErrDisplayUnavailable.
package sink

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/image-binarize/internal/config"
)

// ErrDisplayUnavailable is returned by DisplaySink in builds without gocv.
var ErrDisplayUnavailable = errors.New("preview window unavailable: rebuild with -tags gocv or use --save")

// Sink receives the composite produced by one run.
type Sink interface {
	Emit(img *image.Gray) error
}

// FileSink writes the composite as a PNG and reports the path on Out.
type FileSink struct {
	Path string
	Out  io.Writer
}

// Emit encodes img to s.Path, replacing any existing file.
func (s *FileSink) Emit(img *image.Gray) error {
	if err := imaging.Save(img, s.Path); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if s.Out != nil {
		fmt.Fprintf(s.Out, "Result saved to: %s\n", s.Path)
	}
	return nil
}

// New picks the file sink when save is true and the display sink otherwise.
func New(save bool, cfg config.Config, out io.Writer) Sink {
	if save {
		return &FileSink{Path: cfg.OutputPath, Out: out}
	}
	return &DisplaySink{Title: cfg.WindowTitle}
}
