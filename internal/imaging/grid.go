package imaging

import (
	"fmt"
	"image"
	"image/draw"
)

// Grid2x2 arranges four equally sized grayscale images into one image twice
// as wide and twice as tall.
//
// Layout:
//
//	+-------------+-------------+
//	| topLeft     | topRight    |
//	+-------------+-------------+
//	| bottomLeft  | bottomRight |
//	+-------------+-------------+
//
// Returns ErrSizeMismatch if any cell differs in size from topLeft.
func Grid2x2(topLeft, topRight, bottomLeft, bottomRight *image.Gray) (*image.Gray, error) {
	cells := []*image.Gray{topLeft, topRight, bottomLeft, bottomRight}

	w, h := topLeft.Rect.Dx(), topLeft.Rect.Dy()
	for i, c := range cells[1:] {
		if c.Rect.Dx() != w || c.Rect.Dy() != h {
			return nil, fmt.Errorf("%w: cell %d is %dx%d, want %dx%d",
				ErrSizeMismatch, i+1, c.Rect.Dx(), c.Rect.Dy(), w, h)
		}
	}

	result := image.NewGray(image.Rect(0, 0, 2*w, 2*h))
	offsets := []image.Point{{0, 0}, {w, 0}, {0, h}, {w, h}}
	for i, c := range cells {
		dst := image.Rectangle{Min: offsets[i], Max: offsets[i].Add(image.Pt(w, h))}
		draw.Draw(result, dst, c, c.Rect.Min, draw.Src)
	}

	return result, nil
}
