// Package binarize runs the fixed load, blur, threshold, and composite
// pipeline over one image file.
//
// The transformation is a pure function of the input file and Options; the
// only side effect is handing the composite to a sink.Sink.
package binarize

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-binarize/internal/config"
	"github.com/ironsheep/image-binarize/internal/imaging"
	"github.com/ironsheep/image-binarize/internal/logger"
	"github.com/ironsheep/image-binarize/internal/sink"
	"github.com/rs/zerolog"
)

// Options controls one run.
type Options struct {
	// Threshold is the cutoff; pixels >= Threshold are the upper class.
	Threshold int

	// BlurSize is the Gaussian kernel width and height, both odd.
	BlurSize image.Point
}

// DefaultOptions returns the threshold and kernel from cfg.
func DefaultOptions(cfg config.Config) Options {
	return Options{Threshold: cfg.Threshold, BlurSize: cfg.BlurSize}
}

// Result holds every intermediate view produced by Transform.
// All images are single-channel and anchored at (0,0).
type Result struct {
	Gray          *image.Gray
	Blurred       *image.Gray
	Binary        *image.Gray
	BinaryInverse *image.Gray
	Masked        *image.Gray

	// Composite is [Blurred, Binary] over [BinaryInverse, Masked].
	Composite *image.Gray
}

// Processor runs the pipeline and logs each stage.
type Processor struct {
	log zerolog.Logger
}

// NewProcessor returns a Processor logging through log.
func NewProcessor(log zerolog.Logger) *Processor {
	return &Processor{log: logger.Component(log, "binarize")}
}

// Process loads path, transforms it, and emits the composite to out.
//
// Errors from loading (*imaging.NotFoundError, *imaging.DecodeError) are
// returned unchanged. Sink errors are wrapped.
func (p *Processor) Process(path string, opts Options, out sink.Sink) (*Result, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	p.log.Debug().Str("path", path).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("image loaded")

	res, err := p.Transform(img, opts)
	if err != nil {
		return nil, err
	}

	if err := out.Emit(res.Composite); err != nil {
		return nil, fmt.Errorf("failed to emit result: %w", err)
	}
	return res, nil
}

// Transform runs the pixel pipeline on an already decoded image.
func (p *Processor) Transform(img image.Image, opts Options) (*Result, error) {
	gray := imaging.ToGray(img)
	_, wasGray := img.(*image.Gray)
	p.log.Debug().Bool("converted", !wasGray).Msg("grayscale ready")

	blurred, err := imaging.GaussianBlur(gray, opts.BlurSize, 0)
	if err != nil {
		return nil, err
	}
	p.log.Debug().Int("kernel_w", opts.BlurSize.X).Int("kernel_h", opts.BlurSize.Y).Msg("blur applied")

	binary := imaging.Threshold(blurred, opts.Threshold, false)
	inverse := imaging.Threshold(blurred, opts.Threshold, true)
	p.log.Debug().Int("threshold", opts.Threshold).Msg("thresholds computed")

	masked, err := imaging.Mask(gray, inverse)
	if err != nil {
		return nil, err
	}

	composite, err := imaging.Grid2x2(blurred, binary, inverse, masked)
	if err != nil {
		return nil, err
	}
	p.log.Debug().
		Int("width", composite.Rect.Dx()).
		Int("height", composite.Rect.Dy()).
		Msg("composite assembled")

	return &Result{
		Gray:          gray,
		Blurred:       blurred,
		Binary:        binary,
		BinaryInverse: inverse,
		Masked:        masked,
		Composite:     composite,
	}, nil
}
