// Package imaging provides the pixel operations behind the binarizer.
//
// This package implements loading, grayscale conversion, Gaussian smoothing,
// binary thresholding, masking, and grid assembly. Every operation after
// loading works on *image.Gray values whose bounds start at (0,0), so the
// outputs of one step can be fed directly into the next.
//
// # Pixel Model
//
// Grayscale images hold one byte per pixel:
//   - 0 is black, 255 is white
//   - Binary images only contain 0 and 255
//   - Color sources are reduced with the luma weights 0.299 R + 0.587 G + 0.114 B
//
// # Thresholds
//
// A pixel whose intensity is greater than or equal to the threshold belongs to
// the upper class. Thresholds outside [0, 255] are accepted; they classify
// every pixel into the same class.
//
// # Error Handling
//
// Load returns typed errors so callers can tell the two input failures apart:
//   - *NotFoundError when the path does not name a regular file
//   - *DecodeError when the file cannot be read or decoded as an image
//
// Blur and grid assembly return ErrInvalidKernel and ErrSizeMismatch for
// inputs outside their contract.
//
// # Thread Safety
//
// All functions are stateless and allocate fresh output images. They can be
// called concurrently on different inputs.
package imaging
