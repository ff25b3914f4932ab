package imaging

import (
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads and decodes the image stored at path.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, BMP, TIFF, and WebP.
//
// Returns:
//   - image.Image: The decoded image. EXIF orientation is applied to JPEGs so
//     the pixels match what an image viewer shows.
//   - error: *NotFoundError if path is missing or is not a regular file,
//     *DecodeError if the file cannot be opened or decoded.
//
// The file is opened once and closed before returning. Nothing is cached.
func Load(path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return img, nil
}

// ToGray returns a single-channel view of img.
//
// An *image.Gray anchored at (0,0) is returned unchanged. Any other image,
// including a Gray sub-image, is converted with luma weights
// (0.299 R + 0.587 G + 0.114 B, rounded) into a new image anchored at (0,0).
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		if g.Rect.Min == (image.Point{}) {
			return g
		}
	}

	nrgba := imaging.Grayscale(img)
	return firstChannel(nrgba.Pix, nrgba.Stride, nrgba.Rect)
}

// firstChannel copies the R byte of each 4-byte pixel into a Gray image.
// Used for images whose channels already hold equal values.
func firstChannel(pix []uint8, stride int, rect image.Rectangle) *image.Gray {
	w, h := rect.Dx(), rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := pix[y*stride : y*stride+w*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return out
}
