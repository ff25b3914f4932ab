//go:build gocv

package sink

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DisplaySink shows the composite in an OpenCV window.
type DisplaySink struct {
	Title string
}

// Emit opens the window, waits for any key press, then closes it.
// There is no timeout.
func (s *DisplaySink) Emit(img *image.Gray) error {
	mat, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		return fmt.Errorf("failed to convert result for display: %w", err)
	}
	defer mat.Close()

	window := gocv.NewWindow(s.Title)
	defer window.Close()

	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}
