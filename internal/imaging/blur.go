package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
)

// DefaultKernel is the 7x7 smoothing neighborhood; config.Default uses it as
// the blur size.
var DefaultKernel = image.Point{X: 7, Y: 7}

// smallGaussianTaps holds the fixed taps used when sigma is derived from an
// odd kernel size of at most 7. All taps are dyadic, so each set sums to
// exactly 1 and flat regions keep their exact value.
var smallGaussianTaps = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// GaussianBlur smooths a grayscale image with a ksize.X by ksize.Y Gaussian.
//
// Parameters:
//   - src: Grayscale source image.
//   - ksize: Kernel width and height. Both must be odd and positive.
//   - sigma: Standard deviation in pixels. Zero or less derives it from the
//     kernel size in each direction.
//
// Returns:
//   - *image.Gray: The blurred image, same dimensions as src, anchored at (0,0).
//   - error: ErrInvalidKernel if ksize is not odd and positive.
//
// # Algorithm
//
// The source is padded by mirroring around the edge pixel (dcb|abcd|cba, the
// edge itself is not repeated), then convolved once with the outer product
// of the horizontal and vertical taps through bild's convolution. Each output
// is rounded to the nearest integer, halves rounding up. When sigma is
// derived, sizes 1, 3, 5, and 7 use fixed binomial taps. Larger sizes use
//
//	sigma = 0.3*((k-1)*0.5 - 1) + 0.8
func GaussianBlur(src *image.Gray, ksize image.Point, sigma float64) (*image.Gray, error) {
	if !validKernel(ksize.X) || !validKernel(ksize.Y) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidKernel, ksize.X, ksize.Y)
	}

	tx := gaussianTaps(ksize.X, sigma)
	ty := gaussianTaps(ksize.Y, sigma)
	kernel := convolution.NewKernel(ksize.X, ksize.Y)
	for y, wy := range ty {
		for x, wx := range tx {
			kernel.Matrix[y*ksize.X+x] = wx * wy
		}
	}

	rx, ry := ksize.X/2, ksize.Y/2
	padded := reflectPad(src, rx, ry)

	// bild truncates each sum to a byte; the bias turns that into rounding.
	opts := &convolution.Options{Bias: 0.5, Wrap: false, KeepAlpha: true}
	pass := convolution.Convolve(padded, kernel, opts)

	w, h := src.Rect.Dx(), src.Rect.Dy()
	offset := ry*pass.Stride + rx*4
	return firstChannel(pass.Pix[offset:], pass.Stride, image.Rect(0, 0, w, h)), nil
}

func validKernel(n int) bool {
	return n > 0 && n%2 == 1
}

// reflectPad returns src grown by rx columns and ry rows on each side,
// filled by mirroring around the edge pixel.
func reflectPad(src *image.Gray, rx, ry int) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w+2*rx, h+2*ry))
	for y := 0; y < h+2*ry; y++ {
		row := src.Pix[reflectIndex(y-ry, h)*src.Stride:]
		dst := out.Pix[y*out.Stride : y*out.Stride+w+2*rx]
		for x := range dst {
			dst[x] = row[reflectIndex(x-rx, w)]
		}
	}
	return out
}

// reflectIndex maps i into [0, n) by mirroring without repeating the edge.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2*n - 2
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// gaussianTaps returns n normalized 1-D Gaussian weights.
func gaussianTaps(n int, sigma float64) []float64 {
	if sigma <= 0 {
		if taps, ok := smallGaussianTaps[n]; ok {
			return taps
		}
		sigma = 0.3*(float64(n-1)*0.5-1) + 0.8
	}

	taps := make([]float64, n)
	center := float64(n-1) / 2
	scale := -0.5 / (sigma * sigma)
	var sum float64
	for i := range taps {
		d := float64(i) - center
		taps[i] = math.Exp(scale * d * d)
		sum += taps[i]
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}
