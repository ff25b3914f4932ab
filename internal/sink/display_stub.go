//go:build !gocv

package sink

import "image"

// DisplaySink stands in for the OpenCV window in builds without gocv.
type DisplaySink struct {
	Title string
}

// Emit always returns ErrDisplayUnavailable.
func (s *DisplaySink) Emit(img *image.Gray) error {
	return ErrDisplayUnavailable
}
