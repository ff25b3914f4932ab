package imaging

import (
	"fmt"
	"image"
)

// MaxValue is the intensity written for pixels in the selected class.
const MaxValue = 255

// Threshold classifies each pixel of src against threshold.
//
// Pixels with intensity >= threshold become MaxValue and all others become 0.
// When inverse is true the two output levels are swapped, so the inverse
// result is the exact pixelwise complement of the direct one.
//
// Thresholds outside [0, 255] are not rejected: a threshold above 255 puts
// every pixel in the lower class and a negative one puts every pixel in the
// upper class.
func Threshold(src *image.Gray, threshold int, inverse bool) *image.Gray {
	above, below := uint8(MaxValue), uint8(0)
	if inverse {
		above, below = below, above
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range row {
			if int(v) >= threshold {
				dst[x] = above
			} else {
				dst[x] = below
			}
		}
	}
	return out
}

// Mask keeps the pixels of src where mask is nonzero and zeroes the rest.
//
// Returns ErrSizeMismatch if src and mask differ in dimensions.
func Mask(src, mask *image.Gray) (*image.Gray, error) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if mask.Rect.Dx() != w || mask.Rect.Dy() != h {
		return nil, fmt.Errorf("%w: source %dx%d, mask %dx%d",
			ErrSizeMismatch, w, h, mask.Rect.Dx(), mask.Rect.Dy())
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		keep := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range row {
			if keep[x] != 0 {
				dst[x] = v
			}
		}
	}
	return out, nil
}
